package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// PlayerInput produces the raw decisions of the human side. Reads block
// until a line is available; the session owns parsing and validation.
type PlayerInput interface {
	ReadMove() (string, error)
	ReadRematch() (string, error)
}

// Presenter renders the board and messages. Both calls are fire-and-forget.
type Presenter interface {
	ShowBoard(cells [9]string)
	ShowMessage(text string)
}

type BotService interface {
	ChooseCell(board *entity.Board) (int, error)
}

type ScoreService interface {
	Record(ctx context.Context, winner string)
	Summary() string
}

// Session owns one board and the side to move. It runs the inner match loop
// (alternating moves until a win or a full board) and the outer loop that
// offers a rematch after every decided match.
type Session struct {
	logger *slog.Logger

	board   *entity.Board
	turn    entity.Side
	running bool

	input     PlayerInput
	presenter Presenter
	bot       BotService
	score     ScoreService
}

func NewSession(logger *slog.Logger, input PlayerInput, presenter Presenter, bot BotService, score ScoreService) *Session {
	return &Session{
		logger:    logger.With("component", "session"),
		board:     entity.NewBoard(),
		turn:      entity.SidePlayer,
		running:   true,
		input:     input,
		presenter: presenter,
		bot:       bot,
		score:     score,
	}
}

// Run plays matches until the player declines a rematch or ctx is canceled.
func (that *Session) Run(ctx context.Context) error {
	that.presenter.ShowMessage("Welcome to Tic-Tac-Toe!")

	for that.running {
		winner, err := that.playMatch(ctx)
		if err != nil {
			return err
		}

		that.finishMatch(ctx, winner)

		if that.running {
			that.reset()
		}
	}

	return nil
}

// playMatch alternates moves, starting with the side left in that.turn,
// until a line completes or the board fills up. It returns the winning mark,
// or MarkTie for a full board with no winner.
func (that *Session) playMatch(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("match interrupted: %w", err)
		}

		that.presenter.ShowBoard(that.board.Cells())

		position, err := that.acquireMove(ctx)
		if err != nil {
			return "", err
		}

		// both bot picks and validated player moves are legal by now
		if err = that.board.Place(position, that.turn.Mark()); err != nil {
			return "", fmt.Errorf("failed to place move: %w", err)
		}

		if winner := that.board.Winner(); winner != entity.EmptyCell {
			return winner, nil
		}

		if that.board.IsFull() {
			return entity.MarkTie, nil
		}

		that.turn = that.turn.Next()
	}
}

func (that *Session) acquireMove(ctx context.Context) (int, error) {
	if that.turn == entity.SideBot {
		cell, err := that.bot.ChooseCell(that.board)
		if err != nil {
			return 0, fmt.Errorf("bot has no move: %w", err)
		}

		that.presenter.ShowMessage(fmt.Sprintf("The bot takes position %d.", cell))

		return cell, nil
	}

	return that.readPlayerMove(ctx)
}

// readPlayerMove re-prompts until the player supplies a legal move. Bad
// input of any kind, including a failed read, is reported and retried.
func (that *Session) readPlayerMove(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("match interrupted: %w", err)
		}

		that.presenter.ShowMessage("Your move (1-9):")

		line, err := that.input.ReadMove()
		if err != nil {
			that.logger.Debug("failed to read move", "error", err)
			that.presenter.ShowMessage("Could not read your move, please try again.")

			continue
		}

		position, err := parseMove(line)

		switch {
		case errors.Is(err, apperror.ErrParseFailure):
			that.presenter.ShowMessage("That is not a number, please enter 1-9.")
		case errors.Is(err, apperror.ErrInvalidMove):
			that.presenter.ShowMessage("That position is not on the board, please enter 1-9.")
		case !that.board.IsLegal(position):
			that.presenter.ShowMessage("That cell is already taken, pick another one.")
		default:
			return position, nil
		}
	}
}

func parseMove(line string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParseFailure, line)
	}

	if position < 1 || position > 9 {
		return 0, fmt.Errorf("%w: position %d", apperror.ErrInvalidMove, position)
	}

	return position, nil
}

// finishMatch presents the final board and the result from the player's
// point of view, records the tally and asks about a rematch.
func (that *Session) finishMatch(ctx context.Context, winner string) {
	that.presenter.ShowBoard(that.board.Cells())

	switch winner {
	case entity.SidePlayer.Mark():
		that.presenter.ShowMessage("You won!")
	case entity.SideBot.Mark():
		that.presenter.ShowMessage("You lost!")
	default:
		that.presenter.ShowMessage("It's a draw, nobody won this one.")
	}

	that.score.Record(ctx, winner)
	that.presenter.ShowMessage(that.score.Summary())

	if !that.askRematch() {
		that.running = false
	}
}

func (that *Session) askRematch() bool {
	that.presenter.ShowMessage("Play again? (y/n)")

	answer, err := that.input.ReadRematch()
	if err != nil {
		// a dead input stream counts as "no"
		that.logger.Debug("failed to read rematch answer", "error", err)
		return false
	}

	return isAffirmative(answer)
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// reset replaces the board wholesale and hands the first move back to the
// player, ready for the next match.
func (that *Session) reset() {
	that.board = entity.NewBoard()
	that.turn = entity.SidePlayer
}
