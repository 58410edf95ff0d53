package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// FindWinningMove - finds the cell that completes a line for player, if one
// exists. The same call answers "can I win" and, asked about the opponent,
// "where must I block". Scans Lines in order and returns the first hit, so
// results are deterministic when several threats exist.
func FindWinningMove(board entity.Board, player entity.Cell) (entity.Move, bool) {
	for _, line := range Lines {
		owned := 0
		empty := 0

		var open entity.Move

		for _, cell := range line {
			switch board[cell.Row][cell.Col] {
			case player:
				owned++
			case entity.Empty:
				empty++
				open = cell
			}
		}

		if owned == 2 && empty == 1 {
			return open, true
		}
	}

	return entity.Move{}, false
}
