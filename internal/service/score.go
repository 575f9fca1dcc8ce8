package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
)

type ScoreService interface {
	Record(ctx context.Context, winner string)
	Summary() string
	Snapshot() entity.Scoreboard
}

type scoreService struct {
	logger *slog.Logger

	scoreboardRepo repository.ScoreboardRepository
	scoreboard     *entity.Scoreboard
}

func NewScoreService(logger *slog.Logger, scoreboardRepo repository.ScoreboardRepository, sessionID string) ScoreService {
	return &scoreService{
		logger:         logger.With("component", "score"),
		scoreboardRepo: scoreboardRepo,
		scoreboard:     entity.NewScoreboard(sessionID),
	}
}

// Record counts a decided match and persists the tally. Storage trouble is
// logged and swallowed: it must never interrupt play.
func (that *scoreService) Record(ctx context.Context, winner string) {
	that.scoreboard.Apply(winner)

	if err := that.scoreboardRepo.Save(ctx, that.scoreboard); err != nil {
		that.logger.Error("failed to save scoreboard", "error", err)
	}
}

func (that *scoreService) Summary() string {
	return fmt.Sprintf("Score so far: %d won, %d lost, %d drawn.",
		that.scoreboard.Wins, that.scoreboard.Losses, that.scoreboard.Draws)
}

func (that *scoreService) Snapshot() entity.Scoreboard {
	return *that.scoreboard
}
