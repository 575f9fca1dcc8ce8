package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqliteScoreboard struct {
	conn *sql.DB
}

func NewSQLiteScoreboardRepository(conn *sql.DB) ScoreboardRepository {
	return &sqliteScoreboard{
		conn: conn,
	}
}

func (that *sqliteScoreboard) Save(ctx context.Context, scoreboard *entity.Scoreboard) error {
	query := `INSERT INTO scoreboards (session_id, wins, losses, draws) VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, draws = excluded.draws`

	_, err := that.conn.ExecContext(ctx, query, scoreboard.SessionID, scoreboard.Wins, scoreboard.Losses, scoreboard.Draws)
	if err != nil {
		return fmt.Errorf("can't save scoreboard: %w", err)
	}

	return nil
}

func (that *sqliteScoreboard) GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error) {
	query := `SELECT session_id, wins, losses, draws FROM scoreboards WHERE session_id = ?`

	var scoreboard entity.Scoreboard

	err := that.conn.QueryRowContext(ctx, query, sessionID).
		Scan(&scoreboard.SessionID, &scoreboard.Wins, &scoreboard.Losses, &scoreboard.Draws)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrScoreboardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find scoreboard: %w", err)
	}

	return &scoreboard, nil
}
