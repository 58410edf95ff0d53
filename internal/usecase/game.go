package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// GameSession - a single game between the human and the automaton. It owns
// the board, enforces turn order, and asks the bot for the automaton's
// moves. The outcome is never stored; it is read off the board on demand.
type GameSession struct {
	logger *slog.Logger
	bot    service.BotService

	id    string
	board entity.Board
	turn  entity.Cell
}

// NewGameSession - starts a fresh game. firstTurn must be one of the two
// players; the wiring layer resolves the configured policy before calling.
func NewGameSession(logger *slog.Logger, bot service.BotService, firstTurn entity.Cell) *GameSession {
	if !firstTurn.IsPlayer() {
		panic(fmt.Sprintf("usecase: first turn must be a player, got %q", firstTurn))
	}

	id := uuid.NewString()

	return &GameSession{
		logger: logger.With("component", "game", "game_id", id),
		bot:    bot,

		id:   id,
		turn: firstTurn,
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// Board - a snapshot of the current position.
func (that *GameSession) Board() entity.Board {
	return that.board
}

// Turn - whose move it is. Meaningless once the game is over.
func (that *GameSession) Turn() entity.Cell {
	return that.turn
}

// Outcome - evaluates the current position.
func (that *GameSession) Outcome() entity.Outcome {
	return tictactoe.Evaluate(that.board)
}

// HumanMove - plays the human's move. Rejects moves once the game is over,
// out of turn, out of range, or onto an occupied cell; the caller re-prompts
// on the latter two.
func (that *GameSession) HumanMove(move entity.Move) error {
	if that.Outcome().IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that.turn != entity.Human {
		return apperror.ErrNotYourTurn
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: row %d, col %d", entity.ErrInvalidCell, move.Row, move.Col)
	}

	if !that.board.IsLegalMove(move) {
		return apperror.ErrCellOccupied
	}

	that.board = that.board.Apply(move, entity.Human)
	that.turn = entity.Automaton

	that.logger.Debug("human moved", "row", move.Row, "col", move.Col)

	return nil
}

// AutomatonMove - asks the bot for a move and plays it, returning the cell
// it chose.
func (that *GameSession) AutomatonMove() (entity.Move, error) {
	if that.Outcome().IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if that.turn != entity.Automaton {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.bot.SelectMove(that.board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	that.board = that.board.Apply(move, entity.Automaton)
	that.turn = entity.Human

	that.logger.Debug("automaton moved", "row", move.Row, "col", move.Col)

	return move, nil
}
