package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Run(t *testing.T) {
	t.Run("Plays a scripted game to a draw", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a human whose first line is garbage, who later tries an
		// occupied cell, and who otherwise plays a known drawing script
		input := strings.NewReader("D 5\nA 0\nB 0\nC 0\nA 2\nC 1\nB 2\n")

		var out bytes.Buffer

		bot := service.NewBotService(service.StrategyBest)
		session := usecase.NewGameSession(st.Logger, bot, entity.Human)
		consoleServer := New(st.Logger, input, &out, termenv.WithProfile(termenv.Ascii))

		// When: the game runs to completion
		err := consoleServer.Run(ctx, session)
		require.NoError(t, err)

		// Then: the game is a draw and every misstep was called out
		assert.Equal(t, entity.Draw, session.Outcome())

		output := out.String()
		assert.Contains(t, output, "Your turn. Where would you like to move next?")
		assert.Contains(t, output, "Type your move as two characters separated by a space (ex: A 1)")
		assert.Contains(t, output, "! Invalid column value entered. Your choices are: [A, B, C]")
		assert.Contains(t, output, "! Invalid row value entered. Your choices are: [0, 1, 2]")
		assert.Contains(t, output, "! That cell is not empty. Please try a different cell")
		assert.Contains(t, output, "Game over! Here's what the final board looked like:")
		assert.Contains(t, output, "O.o Whoa, that was close! O.o You tied! O.o")

		// the board is drawn before each of the nine moves and once more
		// with the final position
		assert.Equal(t, 10, strings.Count(output, headerLine))
	})

	t.Run("Draws the board again after a silent automaton move", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the automaton opens and the human resigns the stream after
		// one answer
		input := strings.NewReader("A 0\n")

		var out bytes.Buffer

		bot := service.NewBotService(service.StrategyBest)
		session := usecase.NewGameSession(st.Logger, bot, entity.Automaton)
		consoleServer := New(st.Logger, input, &out, termenv.WithProfile(termenv.Ascii))

		// When: the input runs dry mid-game
		err := consoleServer.Run(ctx, session)

		// Then: the closed stream surfaces as an error, after the board was
		// drawn for the opening automaton move and both human prompts
		require.ErrorIs(t, err, ErrInputClosed)
		assert.GreaterOrEqual(t, strings.Count(out.String(), headerLine), 3)
	})

	t.Run("Returns cleanly when the context is canceled at the prompt", func(t *testing.T) {
		ctx, st := suite.New(t)

		cctx, cancel := context.WithCancel(ctx)

		// Given: an input stream that never delivers a line
		pr, pw := io.Pipe()
		t.Cleanup(func() {
			_ = pw.Close()
		})

		var out bytes.Buffer

		bot := service.NewBotService(service.StrategyBest)
		session := usecase.NewGameSession(st.Logger, bot, entity.Human)
		consoleServer := New(st.Logger, pr, &out, termenv.WithProfile(termenv.Ascii))

		errCh := make(chan error, 1)
		go func() {
			errCh <- consoleServer.Run(cctx, session)
		}()

		// When: the application shuts down
		cancel()

		// Then: the loop exits without an error
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("console did not stop after cancellation")
		}
	})
}
