package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveSource supplies a human's choices, e.g. from a terminal.
type MoveSource interface {
	// NextMove asks for a square among available.
	NextMove(ctx context.Context, available []int) (int, error)
	// Rejected reports that square was not an acceptable choice.
	Rejected(ctx context.Context, square int, available []int)
}

// Human forwards the decision to a MoveSource and asks again until the
// answer is an unmarked square.
type Human struct {
	logger *slog.Logger
	source MoveSource
}

func NewHuman(logger *slog.Logger, source MoveSource) *Human {
	return &Human{
		logger: logger.With("component", "human"),
		source: source,
	}
}

func (that *Human) ChooseMove(ctx context.Context, board *entity.Board, _ entity.Marker) (int, error) {
	available, err := availableMoves(board)
	if err != nil {
		return 0, err
	}

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("waiting for move: %w", ctxErr)
		}

		square, err := that.source.NextMove(ctx, available)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		if slices.Contains(available, square) {
			return square, nil
		}

		that.logger.Debug("move rejected", "square", square)
		that.source.Rejected(ctx, square, available)
	}
}
