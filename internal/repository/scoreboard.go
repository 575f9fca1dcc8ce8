package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type ScoreboardRepository interface {
	Save(ctx context.Context, scoreboard *entity.Scoreboard) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error)
}

type redisScoreboard struct {
	client *redis.Client
}

func NewRedisScoreboardRepository(client *redis.Client) ScoreboardRepository {
	return &redisScoreboard{
		client: client,
	}
}

func (that *redisScoreboard) Save(ctx context.Context, scoreboard *entity.Scoreboard) error {
	scoreboardJSON, err := json.Marshal(scoreboard)
	if err != nil {
		return fmt.Errorf("failed to marshal scoreboard: %w", err)
	}

	scoreboardKey := "scoreboard:" + scoreboard.SessionID
	if err = that.client.Set(ctx, scoreboardKey, scoreboardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set scoreboard: %w", err)
	}

	return nil
}

func (that *redisScoreboard) GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error) {
	scoreboardKey := "scoreboard:" + sessionID

	response, err := that.client.Get(ctx, scoreboardKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrScoreboardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard by session ID: %w", err)
	}

	var scoreboard entity.Scoreboard
	if err = json.Unmarshal([]byte(response), &scoreboard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoreboard: %w", err)
	}

	return &scoreboard, nil
}
