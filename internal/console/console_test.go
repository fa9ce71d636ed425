package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinOr(t *testing.T) {
	tests := []struct {
		items []int
		want  string
	}{
		{items: nil, want: ""},
		{items: []int{1}, want: "1"},
		{items: []int{1, 2}, want: "1 or 2"},
		{items: []int{1, 2, 3}, want: "1, 2, or 3"},
		{items: []int{2, 4, 6, 8}, want: "2, 4, 6, or 8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinOr(tt.items, ", ", "or"))
		})
	}
}

func TestConsole_NextMove(t *testing.T) {
	t.Run("Reads a square", func(t *testing.T) {
		// Given: the user types 7
		var out bytes.Buffer
		c := New(strings.NewReader(" 7 \n"), &out)

		// When: a move is requested
		square, err := c.NextMove(context.Background(), []int{3, 7})

		// Then: 7 is returned after a prompt listing the choices
		require.NoError(t, err)
		assert.Equal(t, 7, square)
		assert.Equal(t, "Choose a square (3 or 7):\n", out.String())
	})

	t.Run("Non-numeric input becomes an invalid square", func(t *testing.T) {
		c := New(strings.NewReader("five\n"), io.Discard)

		square, err := c.NextMove(context.Background(), []int{5})

		require.NoError(t, err)
		assert.Zero(t, square)
	})

	t.Run("End of input", func(t *testing.T) {
		c := New(strings.NewReader(""), io.Discard)

		_, err := c.NextMove(context.Background(), []int{5})

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Done context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := New(strings.NewReader("5\n"), io.Discard)

		_, err := c.NextMove(ctx, []int{5})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_Confirm(t *testing.T) {
	// Given: the user answers with garbage, then Y
	var out bytes.Buffer
	c := New(strings.NewReader("maybe\nY\n"), &out)

	// When: a question is asked
	ok, err := c.Confirm(context.Background(), "Would you like to play next round?")

	// Then: the question is repeated once and the answer is yes
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t,
		"Would you like to play next round? (y/n)\n"+
			"Sorry, must be y or n\n"+
			"Would you like to play next round? (y/n)\n",
		out.String())

	ok, err = New(strings.NewReader("n\n"), io.Discard).Confirm(context.Background(), "Again?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsole_Messages(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Rejected(context.Background(), 0, nil)
	c.Thinking("HAL")
	c.Moved("HAL", "O", 5)
	c.Result(entity.Outcome{State: entity.StateWon, Winner: "X"}, "HAL", "X")
	c.Result(entity.Outcome{State: entity.StateWon, Winner: "O"}, "HAL", "X")
	c.Result(entity.Outcome{State: entity.StateTied}, "HAL", "X")
	c.Scores("Ada", 1, "HAL", 2)
	c.GrandWinner("Ada", true)
	c.GrandWinner("HAL", false)
	c.Goodbye()

	// non-terminal writers get no color codes
	assert.Equal(t, strings.Join([]string{
		"Sorry, that's not a valid choice.",
		"HAL is thinking...",
		"HAL[O] took square 5",
		"You won!",
		"HAL won!",
		"It's a tie!",
		"Score:  Ada[1] | HAL[2]",
		"You are the Grand Winner!",
		"The Grand Winner Is HAL!",
		"Thanks for playing Tic Tac Toe! Goodbye!",
		"",
	}, "\n"), out.String())
}
