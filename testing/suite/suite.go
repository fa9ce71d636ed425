package suite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"
)

const (
	maxWaitDuration = 120 * time.Second

	defaultSeed = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Rand is seeded so that strategy tie-breaks repeat from run to run.
	Rand *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithSeed(t, defaultSeed)
}

func NewWithSeed(t *testing.T, seed uint64) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelWarn
	if testing.Verbose() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed, seed)), //nolint: gosec // it's ok
	}
}
