package strategy

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markX entity.Marker = "X"
	markO entity.Marker = "O"
)

func TestHeuristic_ChooseMove(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		mark   entity.Marker
		want   []int
	}{
		{
			name:   "Wins before blocking",
			layout: "XX-OO----",
			mark:   markX,
			want:   []int{3},
		},
		{
			name:   "Blocks the top row",
			layout: "OO--X----",
			mark:   markX,
			want:   []int{3},
		},
		{
			name:   "Blocks the top row with the center free",
			layout: "OO-X-----",
			mark:   markX,
			want:   []int{3},
		},
		{
			name:   "Blocks the top row late in the round",
			layout: "OO-XXO-XO",
			mark:   markX,
			want:   []int{3},
		},
		{
			name:   "Blocks only one of two threats",
			layout: "OO-OX--X-",
			mark:   markX,
			want:   []int{3, 7},
		},
		{
			name:   "Takes the center",
			layout: "X--------",
			mark:   markO,
			want:   []int{5},
		},
		{
			name:   "Takes the center on an empty board",
			layout: "---------",
			mark:   markX,
			want:   []int{5},
		},
		{
			name:   "Otherwise any unmarked square",
			layout: "----X----",
			mark:   markO,
			want:   []int{1, 2, 3, 4, 6, 7, 8, 9},
		},
		{
			name:   "Last square left",
			layout: "XOXXOOOX-",
			mark:   markX,
			want:   []int{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, st := suite.New(t)
			heuristic := NewHeuristic(st.Logger, st.Rand)

			for range 20 {
				// Given: the board layout
				board := entity.MustParseBoard(tt.layout)

				// When: the heuristic chooses a move
				square, err := heuristic.ChooseMove(ctx, board, tt.mark)

				// Then: the move is one of the expected squares and the board is untouched
				require.NoError(t, err)
				assert.Contains(t, tt.want, square)
				assert.Equal(t, tt.layout, board.String())
			}
		})
	}
}

func TestHeuristic_ChooseMove_FullBoard(t *testing.T) {
	ctx, st := suite.New(t)
	heuristic := NewHeuristic(st.Logger, st.Rand)

	// Given: a full board
	board := entity.MustParseBoard("XOXXOOOXX")

	// When: a move is requested
	_, err := heuristic.ChooseMove(ctx, board, markX)

	// Then: ErrNoMovesAvailable is returned
	require.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
}

func TestHeuristic_ChooseMove_LosesToFork(t *testing.T) {
	ctx, st := suite.New(t)
	heuristic := NewHeuristic(st.Logger, st.Rand)

	// Given: O threatens both the top row and the left column
	board := entity.MustParseBoard("OO-OX--X-")

	// When: X blocks and O answers with its remaining threat
	square, err := heuristic.ChooseMove(ctx, board, markX)
	require.NoError(t, err)
	require.NoError(t, board.Place(square, markX))

	remaining := board.FindImmediateWinSquares()[markO]
	require.Len(t, remaining, 1)
	require.NoError(t, board.Place(remaining[0], markO))

	// Then: O wins
	assert.True(t, board.Outcome().IsWonBy(markO))
}
