package application

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFirstTurn(t *testing.T) {
	t.Run("Maps the fixed policies to their player", func(t *testing.T) {
		turn, err := resolveFirstTurn("human")
		require.NoError(t, err)
		assert.Equal(t, entity.Human, turn)

		turn, err = resolveFirstTurn("automaton")
		require.NoError(t, err)
		assert.Equal(t, entity.Automaton, turn)
	})

	t.Run("Random always lands on a player", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			turn, err := resolveFirstTurn("random")
			require.NoError(t, err)
			assert.True(t, turn.IsPlayer())
		}
	})

	t.Run("Rejects unknown policies", func(t *testing.T) {
		_, err := resolveFirstTurn("loser-first")
		assert.ErrorIs(t, err, ErrUnknownFirstTurn)
	})
}
