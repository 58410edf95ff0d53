package console

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Parses a column letter and a row number", func(t *testing.T) {
		move, err := ParseMove("A 1")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
	})

	t.Run("Accepts lowercase columns", func(t *testing.T) {
		move, err := ParseMove("b 2")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 1}, move)
	})

	t.Run("Accepts the compact form", func(t *testing.T) {
		move, err := ParseMove("c0")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Ignores surrounding whitespace", func(t *testing.T) {
		move, err := ParseMove("  C   2  ")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Ignores trailing tokens", func(t *testing.T) {
		move, err := ParseMove("A 1 please")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
	})

	t.Run("Rejects an unknown column", func(t *testing.T) {
		_, err := ParseMove("d 1")

		assert.ErrorIs(t, err, ErrInvalidColumn)
		assert.NotErrorIs(t, err, ErrInvalidRow)
	})

	t.Run("Rejects a row outside the board", func(t *testing.T) {
		_, err := ParseMove("a 9")

		assert.ErrorIs(t, err, ErrInvalidRow)
		assert.NotErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("Rejects a row that is not a number", func(t *testing.T) {
		_, err := ParseMove("a x")

		assert.ErrorIs(t, err, ErrInvalidRow)
	})

	t.Run("Reports both errors when both values are bad", func(t *testing.T) {
		_, err := ParseMove("z 9")

		assert.ErrorIs(t, err, ErrInvalidColumn)
		assert.ErrorIs(t, err, ErrInvalidRow)
	})

	t.Run("Rejects empty input", func(t *testing.T) {
		_, err := ParseMove("")

		assert.ErrorIs(t, err, ErrInvalidColumn)
		assert.ErrorIs(t, err, ErrInvalidRow)
	})

	t.Run("Rejects a lone column letter", func(t *testing.T) {
		_, err := ParseMove("a")

		assert.ErrorIs(t, err, ErrInvalidRow)
		assert.NotErrorIs(t, err, ErrInvalidColumn)
	})
}
