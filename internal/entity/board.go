package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"

	// MarkTie marks a finished match nobody won.
	MarkTie = "-"

	EmptyCell = ""
)

const boardSize = 9

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid, addressed by 1-based positions 1..9.
// A cell, once taken, is never overwritten; the session replaces the whole
// board on a rematch instead of clearing cells one by one.
type Board struct {
	cells [boardSize]string
}

func NewBoard() *Board {
	return &Board{}
}

// Location maps a 1-based position to its (row, col) pair.
func Location(position int) (int, int) {
	return (position - 1) / 3, (position - 1) % 3
}

// IsLegal reports whether position addresses an empty cell on the board.
func (that *Board) IsLegal(position int) bool {
	if position < 1 || position > boardSize {
		return false
	}

	return that.cells[position-1] == EmptyCell
}

// Place writes mark into the cell addressed by position.
// On failure the board is left untouched.
func (that *Board) Place(position int, mark string) error {
	if position < 1 || position > boardSize {
		return fmt.Errorf("%w: position %d", apperror.ErrInvalidMove, position)
	}

	if that.cells[position-1] != EmptyCell {
		return fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	that.cells[position-1] = mark

	return nil
}

// Winner returns the mark occupying a complete line, or EmptyCell if no
// line is complete yet. Play stops on the first completed line, so at most
// one mark can ever own a line.
func (that *Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// LegalPositions returns every position that still addresses an empty cell.
func (that *Board) LegalPositions() []int {
	positions := make([]int, 0, boardSize)

	for i, cell := range that.cells {
		if cell == EmptyCell {
			positions = append(positions, i+1)
		}
	}

	return positions
}

// Cells returns the display symbol for every cell: the mark if the cell is
// taken, otherwise its 1-based position label.
func (that *Board) Cells() [boardSize]string {
	var symbols [boardSize]string

	for i, cell := range that.cells {
		if cell == EmptyCell {
			symbols[i] = strconv.Itoa(i + 1)
		} else {
			symbols[i] = cell
		}
	}

	return symbols
}
