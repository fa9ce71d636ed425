package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	winScore  = 100
	tieScore  = 0
	lossScore = -100
)

// Stand-ins for the opponent while it has no mark on the board yet.
const (
	placeholderOpponent    entity.Marker = "?"
	placeholderOpponentAlt entity.Marker = "!"
)

// Minimax plays perfectly by scoring every continuation to the end of the
// round. Scores are not discounted by depth, so a slower forced win is worth
// as much as an immediate one.
type Minimax struct {
	logger *slog.Logger
	rnd    Rand
}

func NewMinimax(logger *slog.Logger, rnd Rand) *Minimax {
	return &Minimax{
		logger: logger.With("component", "minimax"),
		rnd:    rnd,
	}
}

// ChooseMove takes the center when it is free, which is always among the
// optimal moves on a 3x3 board, and searches otherwise.
func (that *Minimax) ChooseMove(_ context.Context, board *entity.Board, mark entity.Marker) (int, error) {
	if _, err := availableMoves(board); err != nil {
		return 0, err
	}

	if board.CenterAvailable() {
		that.logger.Debug("move chosen", "reason", "center", "square", entity.CenterSquare)
		return entity.CenterSquare, nil
	}

	moves, score, nodes := BestMoves(board, mark)
	square := pick(that.rnd, moves)

	that.logger.Debug("move chosen",
		"reason", "search",
		"square", square,
		"score", score,
		"candidates", moves,
		"nodes", nodes,
	)

	return square, nil
}

// BestMoves runs the full search for mark and returns every move tied for
// the top score, in ascending order, with that score and the number of
// positions visited. The board is left as it was found.
func BestMoves(board *entity.Board, mark entity.Marker) ([]int, int, int) {
	s := &search{
		board:  board,
		mine:   mark,
		theirs: opponentFor(board, mark),
	}

	best := math.MinInt
	var moves []int

	for _, location := range board.UnmarkedSquares() {
		score := s.evaluate(location, true)

		switch {
		case score > best:
			best = score
			moves = []int{location}
		case score == best:
			moves = append(moves, location)
		}
	}

	return moves, best, s.nodes
}

func opponentFor(board *entity.Board, mark entity.Marker) entity.Marker {
	if opponent, ok := board.OpponentOf(mark); ok {
		return opponent
	}

	if mark == placeholderOpponent {
		return placeholderOpponentAlt
	}

	return placeholderOpponent
}

type search struct {
	board  *entity.Board
	mine   entity.Marker
	theirs entity.Marker
	nodes  int
}

// evaluate plays location for the side to move, scores the resulting
// position and takes the move back.
func (that *search) evaluate(location int, myTurn bool) int {
	mark := that.theirs
	if myTurn {
		mark = that.mine
	}

	if err := that.board.Place(location, mark); err != nil {
		panic(fmt.Errorf("search placed on an unavailable square: %w", err))
	}
	defer that.board.ResetSquare(location)

	that.nodes++

	if winner, ok := that.board.WinningMarker(); ok {
		if winner == that.mine {
			return winScore
		}
		return lossScore
	}

	if that.board.IsFull() {
		return tieScore
	}

	// the opponent replies after my move, so take its best (lowest) score
	if myTurn {
		value := math.MaxInt
		for _, next := range that.board.UnmarkedSquares() {
			value = min(value, that.evaluate(next, false))
		}
		return value
	}

	value := math.MinInt
	for _, next := range that.board.UnmarkedSquares() {
		value = max(value, that.evaluate(next, true))
	}
	return value
}
