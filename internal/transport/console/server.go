package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type gameSession interface {
	Board() entity.Board
	Turn() entity.Cell
	Outcome() entity.Outcome
	HumanMove(move entity.Move) error
	AutomatonMove() (entity.Move, error)
}

// Console - the interactive terminal transport. It owns the turn loop:
// draw the board, let the current player move, repeat until the game is
// over, then show the result.
type Console struct {
	logger   *slog.Logger
	renderer *Renderer
	in       io.Reader
	out      io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		renderer: NewRenderer(out, opts...),
		in:       in,
		out:      out,
	}
}

// Run - plays one game on the terminal. Returns nil when the game ends or
// the context is canceled mid-prompt; a closed input stream is an error.
func (that *Console) Run(ctx context.Context, session gameSession) error {
	lines := make(chan string)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	for !session.Outcome().IsTerminal() {
		that.renderer.DrawBoard(session.Board())

		var err error
		if session.Turn() == entity.Human {
			err = that.humanTurn(ctx, session, lines)
		} else {
			_, err = session.AutomatonMove()
		}

		if errors.Is(err, context.Canceled) {
			that.logger.Info("game interrupted")
			return nil
		}

		if err != nil {
			return err
		}
	}

	outcome := session.Outcome()
	that.renderer.DrawFinalBoard(session.Board(), outcome)
	that.logger.Info("game finished", "outcome", outcome.String())

	return nil
}

// humanTurn - prompts for a move and keeps re-prompting until the input
// names an empty cell on the board.
func (that *Console) humanTurn(ctx context.Context, session gameSession, lines <-chan string) error {
	fmt.Fprintln(that.out, "Your turn. Where would you like to move next?")
	fmt.Fprintln(that.out, "Type your move as two characters separated by a space (ex: A 1)")

	for {
		var (
			line string
			ok   bool
		)

		select {
		case line, ok = <-lines:
			if !ok {
				return fmt.Errorf("failed to read player move: %w", ErrInputClosed)
			}
		case <-ctx.Done():
			return ctx.Err()
		}

		move, err := ParseMove(line)
		if err != nil {
			that.writeParseErrors(err)
			continue
		}

		err = session.HumanMove(move)
		if errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintln(that.out, "! That cell is not empty. Please try a different cell")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

func (that *Console) writeParseErrors(err error) {
	if errors.Is(err, ErrInvalidColumn) {
		fmt.Fprintln(that.out, "! Invalid column value entered. Your choices are: [A, B, C]")
	}

	if errors.Is(err, ErrInvalidRow) {
		fmt.Fprintln(that.out, "! Invalid row value entered. Your choices are: [0, 1, 2]")
	}
}
