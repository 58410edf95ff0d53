package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var (
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// Strategy - how the bot picks its moves. A closed set of variants; the
// selection logic dispatches on the tag.
type Strategy uint8

const (
	// StrategyRandom - a uniformly random empty cell.
	StrategyRandom Strategy = iota
	// StrategySmart - center, then corners, then random.
	StrategySmart
	// StrategyBest - center, then own win, then block, then StrategySmart.
	StrategyBest
)

// corners in preference order.
var corners = [4]entity.Move{
	{Row: 0, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 2, Col: 2},
}

var center = entity.Move{Row: 1, Col: 1}

// ParseStrategy - maps a config spelling to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "random":
		return StrategyRandom, nil
	case "smart":
		return StrategySmart, nil
	case "best":
		return StrategyBest, nil
	default:
		return StrategyRandom, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (that Strategy) String() string {
	switch that {
	case StrategySmart:
		return "smart"
	case StrategyBest:
		return "best"
	default:
		return "random"
	}
}

type BotService interface {
	SelectMove(board entity.Board) (entity.Move, error)
}

type botService struct {
	strategy Strategy
}

func NewBotService(strategy Strategy) BotService {
	return &botService{strategy: strategy}
}

// SelectMove - picks the automaton's next move on the given board.
// A full board is a caller bug and fails with ErrNoAvailableMoves instead
// of inventing a move.
func (that *botService) SelectMove(board entity.Board) (entity.Move, error) {
	if board.IsFull() {
		return entity.Move{}, ErrNoAvailableMoves
	}

	switch that.strategy {
	case StrategySmart:
		return smartMove(board), nil
	case StrategyBest:
		return bestMove(board), nil
	default:
		return randomMove(board), nil
	}
}

func randomMove(board entity.Board) entity.Move {
	cells := board.EmptyCells()

	return cells[rand.Intn(len(cells))] //nolint: gosec // it's ok
}

// smartMove - center first, then corners in order, then anything.
func smartMove(board entity.Board) entity.Move {
	if board.IsLegalMove(center) {
		return center
	}

	for _, corner := range corners {
		if board.IsLegalMove(corner) {
			return corner
		}
	}

	return randomMove(board)
}

// bestMove - the strongest of the fixed strategies. Rules fire in order:
// take the center, complete an own line, block the human's line, fall back
// to smartMove. One ply deep only; it never looks ahead past the immediate
// threat, so a fork can still beat it.
func bestMove(board entity.Board) entity.Move {
	if board.IsLegalMove(center) {
		return center
	}

	if move, ok := tictactoe.FindWinningMove(board, entity.Automaton); ok {
		return move
	}

	if move, ok := tictactoe.FindWinningMove(board, entity.Human); ok {
		return move
	}

	return smartMove(board)
}
