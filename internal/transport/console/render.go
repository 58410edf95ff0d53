package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	headerLine = "    A   B   C"
	gridLine   = "  +---+---+---+"

	humanColor     = "2" // ANSI green
	automatonColor = "1" // ANSI red
)

// Renderer - draws the board and result banners. Colors degrade to plain
// ASCII when the output is not a terminal.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// DrawBoard - draws the grid with column letters and row numbers, x for the
// human and o for the automaton.
func (that *Renderer) DrawBoard(board entity.Board) {
	fmt.Fprintln(that.out, headerLine)
	fmt.Fprintln(that.out, gridLine)

	for row := 0; row < entity.Size; row++ {
		fmt.Fprintf(that.out, "%d ", row)

		for col := 0; col < entity.Size; col++ {
			fmt.Fprintf(that.out, "| %s ", that.mark(board[row][col]))
		}

		fmt.Fprintln(that.out, "|")
		fmt.Fprintln(that.out, gridLine)
	}
}

// DrawFinalBoard - the game-over block: final position plus result banner.
func (that *Renderer) DrawFinalBoard(board entity.Board, outcome entity.Outcome) {
	fmt.Fprintln(that.out, "Game over! Here's what the final board looked like:")
	fmt.Fprintln(that.out)
	that.DrawBoard(board)
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.resultBanner(outcome))
	fmt.Fprintln(that.out)
}

func (that *Renderer) mark(cell entity.Cell) string {
	switch cell {
	case entity.Human:
		return that.out.String("x").Foreground(that.out.Color(humanColor)).String()
	case entity.Automaton:
		return that.out.String("o").Foreground(that.out.Color(automatonColor)).String()
	default:
		return " "
	}
}

func (that *Renderer) resultBanner(outcome entity.Outcome) string {
	switch outcome {
	case entity.HumanWon:
		return that.out.String("^.^ Congratulations! ^.^ You win! ^.^").Foreground(that.out.Color(humanColor)).Bold().String()
	case entity.AutomatonWon:
		return that.out.String("~.~ Sorry! ~.~ You lose! ~.~").Foreground(that.out.Color(automatonColor)).Bold().String()
	case entity.Draw:
		return that.out.String("O.o Whoa, that was close! O.o You tied! O.o").Bold().String()
	default:
		return "Hmm... something really went wrong here. Please let my programmer know."
	}
}
