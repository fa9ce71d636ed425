package strategy

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Heuristic looks one ply ahead: win, else block, else center, else anything.
//
// When the opponent has two open lines it blocks only one of them, so it
// can be beaten by a fork.
type Heuristic struct {
	logger *slog.Logger
	rnd    Rand
}

func NewHeuristic(logger *slog.Logger, rnd Rand) *Heuristic {
	return &Heuristic{
		logger: logger.With("component", "heuristic"),
		rnd:    rnd,
	}
}

func (that *Heuristic) ChooseMove(_ context.Context, board *entity.Board, mark entity.Marker) (int, error) {
	unmarked, err := availableMoves(board)
	if err != nil {
		return 0, err
	}

	wins := board.FindImmediateWinSquares()

	if squares, ok := wins[mark]; ok {
		return that.choose("win", pick(that.rnd, squares)), nil
	}

	if len(wins) > 0 {
		threats := slices.Sorted(maps.Keys(wins))
		opponent := pick(that.rnd, threats)
		return that.choose("block", pick(that.rnd, wins[opponent])), nil
	}

	if board.CenterAvailable() {
		return that.choose("center", entity.CenterSquare), nil
	}

	return that.choose("random", pick(that.rnd, unmarked)), nil
}

func (that *Heuristic) choose(reason string, square int) int {
	that.logger.Debug("move chosen", "reason", reason, "square", square)

	return square
}
