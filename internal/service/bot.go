package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type BotService interface {
	ChooseCell(board *entity.Board) (int, error)
}

// botService is a deliberately weak opponent: it draws uniformly from the
// currently legal positions, with no lookahead, blocking or win-seeking.
type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

func (that *botService) ChooseCell(board *entity.Board) (int, error) {
	availableCells := board.LegalPositions()

	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}
