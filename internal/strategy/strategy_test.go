package strategy

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputerKind(t *testing.T) {
	assert.Equal(t, KindMinimax, ComputerKind(true))
	assert.Equal(t, KindHeuristic, ComputerKind(false))
}

func TestNew(t *testing.T) {
	_, st := suite.New(t)
	deps := Deps{Logger: st.Logger, Rand: st.Rand, Source: &scriptedSource{}}

	t.Run("Builds every kind", func(t *testing.T) {
		human, err := New(KindHuman, deps)
		require.NoError(t, err)
		assert.IsType(t, &Human{}, human)

		heuristic, err := New(KindHeuristic, deps)
		require.NoError(t, err)
		assert.IsType(t, &Heuristic{}, heuristic)

		minimax, err := New(KindMinimax, deps)
		require.NoError(t, err)
		assert.IsType(t, &Minimax{}, minimax)
	})

	t.Run("Human needs a move source", func(t *testing.T) {
		_, err := New(KindHuman, Deps{Logger: st.Logger})

		require.ErrorIs(t, err, ErrMissingMoveSource)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := New(Kind("random"), deps)

		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("Defaults logger and randomness", func(t *testing.T) {
		heuristic, err := New(KindHeuristic, Deps{})

		require.NoError(t, err)
		assert.NotNil(t, heuristic)
	})
}

func TestNewRand(t *testing.T) {
	// Given: two sources with the same seed
	first, second := NewRand(7), NewRand(7)

	// Then: they produce the same sequence
	for range 10 {
		assert.Equal(t, first.IntN(9), second.IntN(9))
	}

	// Then: seed 0 falls back to the process-wide source
	assert.IsType(t, globalRand{}, NewRand(0))
}
