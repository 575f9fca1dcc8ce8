package game

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInput feeds pre-recorded lines; running out of move lines means
// the scenario script is wrong, so it panics instead of looping forever.
type scriptedInput struct {
	moves     []string
	rematch   []string
	moveReads int
}

func (that *scriptedInput) ReadMove() (string, error) {
	if len(that.moves) == 0 {
		panic("scripted input exhausted: session asked for more moves than the scenario provides")
	}

	that.moveReads++
	line := that.moves[0]
	that.moves = that.moves[1:]

	return line, nil
}

func (that *scriptedInput) ReadRematch() (string, error) {
	if len(that.rematch) == 0 {
		return "", io.ErrUnexpectedEOF
	}

	line := that.rematch[0]
	that.rematch = that.rematch[1:]

	return line, nil
}

type scriptedBot struct {
	cells []int
	calls int
}

func (that *scriptedBot) ChooseCell(_ *entity.Board) (int, error) {
	if len(that.cells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	that.calls++
	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}

type recordingPresenter struct {
	boards   [][9]string
	messages []string
}

func (that *recordingPresenter) ShowBoard(cells [9]string) {
	that.boards = append(that.boards, cells)
}

func (that *recordingPresenter) ShowMessage(text string) {
	that.messages = append(that.messages, text)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(input *scriptedInput, bot *scriptedBot) (*Session, *recordingPresenter, service.ScoreService) {
	presenter := &recordingPresenter{}
	score := service.NewScoreService(discardLogger(), repository.NewMemoryScoreboardRepository(), "test-session")
	session := NewSession(discardLogger(), input, presenter, bot, score)

	return session, presenter, score
}

func TestSession_PlayerWins(t *testing.T) {
	// Given: a script where the player completes the top row first
	input := &scriptedInput{moves: []string{"1", "2", "3"}, rematch: []string{"n"}}
	bot := &scriptedBot{cells: []int{4, 5}}
	session, presenter, score := newTestSession(input, bot)

	// When: running the session
	err := session.Run(context.Background())

	// Then: the player wins, the tally counts it, and the session ends
	require.NoError(t, err)
	assert.Contains(t, presenter.messages, "You won!")
	assert.NotContains(t, presenter.messages, "You lost!")
	assert.Equal(t, 1, score.Snapshot().Wins)
	assert.Equal(t, 2, bot.calls)
}

func TestSession_BotWins(t *testing.T) {
	// Given: a script where the bot completes the middle row first
	input := &scriptedInput{moves: []string{"1", "2", "9"}, rematch: []string{"n"}}
	bot := &scriptedBot{cells: []int{4, 5, 6}}
	session, presenter, score := newTestSession(input, bot)

	// When: running the session
	err := session.Run(context.Background())

	// Then: the bot wins and the tally counts a loss
	require.NoError(t, err)
	assert.Contains(t, presenter.messages, "You lost!")
	assert.Equal(t, 1, score.Snapshot().Losses)
}

func TestSession_Draw(t *testing.T) {
	// Given: a script that fills the board with no complete line
	input := &scriptedInput{moves: []string{"1", "3", "4", "8", "9"}, rematch: []string{"n"}}
	bot := &scriptedBot{cells: []int{2, 5, 6, 7}}
	session, presenter, score := newTestSession(input, bot)

	// When: running the session
	err := session.Run(context.Background())

	// Then: the full board is reported as a draw, not left undefined
	require.NoError(t, err)
	assert.Contains(t, presenter.messages, "It's a draw, nobody won this one.")
	assert.Equal(t, 1, score.Snapshot().Draws)

	// And: turns alternated strictly for all nine moves
	assert.Equal(t, 5, input.moveReads)
	assert.Equal(t, 4, bot.calls)
}

func TestSession_PlayerRetriesOnBadInput(t *testing.T) {
	// Given: junk move lines ahead of every valid player move
	input := &scriptedInput{
		moves:   []string{"abc", "0", "42", "", "1", "5", "2", "3"},
		rematch: []string{"n"},
	}
	bot := &scriptedBot{cells: []int{5, 9}}
	session, presenter, score := newTestSession(input, bot)

	// When: running the session; "5" is rejected because the bot already
	// took that cell on its first move
	err := session.Run(context.Background())

	// Then: each kind of bad input got its own message and play went on
	require.NoError(t, err)
	assert.Contains(t, presenter.messages, "That is not a number, please enter 1-9.")
	assert.Contains(t, presenter.messages, "That position is not on the board, please enter 1-9.")
	assert.Contains(t, presenter.messages, "That cell is already taken, pick another one.")
	assert.Contains(t, presenter.messages, "You won!")
	assert.Equal(t, 1, score.Snapshot().Wins)
}

func TestSession_Rematch(t *testing.T) {
	// Given: two scripted matches separated by an affirmative answer
	input := &scriptedInput{
		moves:   []string{"1", "2", "3", "1", "2", "3"},
		rematch: []string{"y", "n"},
	}
	bot := &scriptedBot{cells: []int{4, 5, 4, 5}}
	session, presenter, score := newTestSession(input, bot)

	// When: running the session
	err := session.Run(context.Background())

	// Then: both matches were decided and tallied
	require.NoError(t, err)
	assert.Equal(t, 2, score.Snapshot().Wins)

	// And: the second match started from a fresh board with the player
	// to move, so position 1 was free to take again. The first match
	// showed six boards: one before each of its five moves plus the
	// final board.
	firstBoardOfRematch := presenter.boards[6]
	assert.Equal(t, [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, firstBoardOfRematch)
}

func TestSession_RematchReadErrorEndsSession(t *testing.T) {
	// Given: a decided match and no rematch line left to read
	input := &scriptedInput{moves: []string{"1", "2", "3"}, rematch: nil}
	bot := &scriptedBot{cells: []int{4, 5}}
	session, _, _ := newTestSession(input, bot)

	// When: running the session
	err := session.Run(context.Background())

	// Then: the failed read counts as "no" and the session ends cleanly
	require.NoError(t, err)
}

func TestSession_CanceledContextStopsMatch(t *testing.T) {
	// Given: a canceled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := &scriptedInput{moves: []string{"1"}, rematch: []string{"n"}}
	bot := &scriptedBot{}
	session, _, _ := newTestSession(input, bot)

	// When: running the session
	err := session.Run(ctx)

	// Then: the match loop reports the interruption
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsAffirmative(t *testing.T) {
	affirmative := []string{"y", "Y", "yes", "YES", " yes \n"}
	for _, answer := range affirmative {
		assert.True(t, isAffirmative(answer), "answer %q", answer)
	}

	negative := []string{"n", "", "maybe", "yess", "no"}
	for _, answer := range negative {
		assert.False(t, isAffirmative(answer), "answer %q", answer)
	}
}
