package apperror

import "errors"

var (
	ErrInvalidMove        = errors.New("move is outside the board")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrParseFailure       = errors.New("move is not a number")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrScoreboardNotFound = errors.New("scoreboard not found")
)
