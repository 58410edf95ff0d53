package entity

import (
	"errors"
	"fmt"
)

// Size - the board is a fixed 3x3 grid.
const Size = 3

var ErrInvalidCell = errors.New("invalid cell coordinates")

// Move - a board coordinate: row 0-2 top to bottom, column 0-2 left to right.
type Move struct {
	Row int
	Col int
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board - the full game position. A plain value type: assignment copies it,
// so every snapshot handed out is independent of the live game.
type Board [Size][Size]Cell

// IsLegalMove - reports whether the move targets an empty cell on the board.
func (that Board) IsLegalMove(move Move) bool {
	return move.InBounds() && that[move.Row][move.Col] == Empty
}

// Apply - returns a copy of the board with the move played by owner.
// Legality is the caller's contract; violating it is a programming error
// and panics rather than corrupting the position.
func (that Board) Apply(move Move, owner Cell) Board {
	if !owner.IsPlayer() {
		panic(fmt.Sprintf("entity: apply with non-player owner %q", owner))
	}

	if !that.IsLegalMove(move) {
		panic(fmt.Sprintf("entity: apply of illegal move row=%d col=%d", move.Row, move.Col))
	}

	that[move.Row][move.Col] = owner

	return that
}

// EmptyCells - lists the open cells in row-major order.
func (that Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}
