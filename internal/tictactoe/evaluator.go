package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Lines - every way to win: three rows top to bottom, three columns left to
// right, the main diagonal, the anti-diagonal. Evaluation and threat
// scanning both walk this table in order.
var Lines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluate - reads the outcome off a board position: a win for whoever owns
// a full line, a draw once the board fills up, in progress otherwise.
func Evaluate(board entity.Board) entity.Outcome {
	if hasWinningLine(board, entity.Human) {
		return entity.HumanWon
	}

	if hasWinningLine(board, entity.Automaton) {
		return entity.AutomatonWon
	}

	if board.IsFull() {
		return entity.Draw
	}

	return entity.InProgress
}

func hasWinningLine(board entity.Board, player entity.Cell) bool {
	for _, line := range Lines {
		a, b, c := line[0], line[1], line[2]
		if board[a.Row][a.Col] == player && board[b.Row][b.Col] == player && board[c.Row][c.Col] == player {
			return true
		}
	}

	return false
}
