package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrUnknownKind       = errors.New("unknown strategy kind")
	ErrMissingMoveSource = errors.New("human strategy needs a move source")
)

// Strategy picks the square a side plays next. It may read and temporarily
// mark the board, but the board must hold only real moves when it returns;
// applying the chosen square is up to the caller.
type Strategy interface {
	ChooseMove(ctx context.Context, board *entity.Board, mark entity.Marker) (int, error)
}

type Kind string

const (
	KindHuman     Kind = "human"
	KindHeuristic Kind = "heuristic"
	KindMinimax   Kind = "minimax"
)

// ComputerKind maps the unbeatable setting to a computer strategy.
func ComputerKind(unbeatable bool) Kind {
	if unbeatable {
		return KindMinimax
	}

	return KindHeuristic
}

type Deps struct {
	Logger *slog.Logger
	Rand   Rand
	Source MoveSource
}

func New(kind Kind, deps Deps) (Strategy, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rnd := deps.Rand
	if rnd == nil {
		rnd = NewRand(0)
	}

	switch kind {
	case KindHuman:
		if deps.Source == nil {
			return nil, ErrMissingMoveSource
		}
		return NewHuman(logger, deps.Source), nil
	case KindHeuristic:
		return NewHeuristic(logger, rnd), nil
	case KindMinimax:
		return NewMinimax(logger, rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func availableMoves(board *entity.Board) ([]int, error) {
	unmarked := board.UnmarkedSquares()
	if len(unmarked) == 0 {
		return nil, fmt.Errorf("%w: board %s is full", apperror.ErrNoMovesAvailable, board)
	}

	return unmarked, nil
}
