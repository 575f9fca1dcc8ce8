package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// memoryScoreboard keeps tallies for the lifetime of the process. It is the
// default backend when no storage is configured.
type memoryScoreboard struct {
	mu          sync.RWMutex
	scoreboards map[string]entity.Scoreboard
}

func NewMemoryScoreboardRepository() ScoreboardRepository {
	return &memoryScoreboard{
		scoreboards: make(map[string]entity.Scoreboard),
	}
}

func (that *memoryScoreboard) Save(_ context.Context, scoreboard *entity.Scoreboard) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scoreboards[scoreboard.SessionID] = *scoreboard

	return nil
}

func (that *memoryScoreboard) GetBySessionID(_ context.Context, sessionID string) (*entity.Scoreboard, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	scoreboard, ok := that.scoreboards[sessionID]
	if !ok {
		return nil, apperror.ErrScoreboardNotFound
	}

	return &scoreboard, nil
}
