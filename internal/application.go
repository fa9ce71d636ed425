package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// RunApp - plays games on the console until the user stops.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(in, out)

	match, err := NewMatch(logger, conf, term)
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	log.Info("match created",
		"match_id", match.ID(),
		"computer", strategy.ComputerKind(conf.Unbeatable),
	)

	defer term.Goodbye()

	for {
		announcedRounds := 0
		result, err := match.Play(ctx, func(ctx context.Context, round int, outcome entity.Outcome) (bool, error) {
			announcedRounds = round
			announceRound(term, match, outcome)
			return term.Confirm(ctx, "Would you like to play next round?")
		})
		if inputClosed(err) {
			log.Info("input closed, stopping", "rounds", result.Rounds)
			return nil
		}
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}

		if result.Rounds > announcedRounds {
			announceRound(term, match, match.Board().Outcome())
		}

		if result.GrandWinner == nil {
			return nil
		}

		term.GrandWinner(result.GrandWinner.Name, result.GrandWinner == match.Human())

		again, err := term.Confirm(ctx, "Would you like to start a new game?")
		if inputClosed(err) {
			log.Info("input closed, stopping", "rounds", result.Rounds)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to ask for new game: %w", err)
		}
		if !again {
			return nil
		}

		match.ResetScores()
	}
}

func inputClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

// NewMatch builds the two sides from conf. The computer's strategy is fixed
// here, from the unbeatable setting, for the lifetime of the match.
func NewMatch(logger *slog.Logger, conf *config.Config, source strategy.MoveSource) (*tictactoe.Match, error) {
	rnd := strategy.NewRand(conf.Seed)

	humanStrategy, err := strategy.New(strategy.KindHuman, strategy.Deps{Logger: logger, Rand: rnd, Source: source})
	if err != nil {
		return nil, fmt.Errorf("failed to create human strategy: %w", err)
	}

	computerStrategy, err := strategy.New(strategy.ComputerKind(conf.Unbeatable), strategy.Deps{Logger: logger, Rand: rnd})
	if err != nil {
		return nil, fmt.Errorf("failed to create computer strategy: %w", err)
	}

	human := &tictactoe.Player{
		Name:     conf.Human.Name,
		Mark:     entity.Marker(conf.Human.Marker),
		Strategy: humanStrategy,
	}

	computer := &tictactoe.Player{
		Name: conf.Computer.Name,
		Mark: entity.Marker(conf.Computer.Marker),
	}

	if announcer, ok := source.(announcer); ok {
		computer.Strategy = &announced{Strategy: computerStrategy, announcer: announcer, name: computer.Name, mark: computer.Mark}
	} else {
		computer.Strategy = computerStrategy
	}

	return tictactoe.NewMatch(logger, human, computer,
		tictactoe.WithMaxScore(conf.MaxScore),
		tictactoe.WithMaxRounds(conf.MaxRounds),
	), nil
}

type announcer interface {
	Thinking(name string)
	Moved(name string, mark entity.Marker, square int)
}

// announced reports the computer's turns to the user.
type announced struct {
	strategy.Strategy
	announcer announcer
	name      string
	mark      entity.Marker
}

func (that *announced) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Marker) (int, error) {
	that.announcer.Thinking(that.name)

	square, err := that.Strategy.ChooseMove(ctx, board, mark)
	if err != nil {
		return 0, err
	}

	that.announcer.Moved(that.name, that.mark, square)

	return square, nil
}

func announceRound(term *console.Console, match *tictactoe.Match, outcome entity.Outcome) {
	human, computer := match.Human(), match.Computer()

	term.Result(outcome, computer.Name, human.Mark)
	term.Scores(human.Name, human.Score, computer.Name, computer.Score)
}
