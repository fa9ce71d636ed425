package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
)

const DefaultMaxScore = 3

type Player struct {
	Name     string
	Mark     entity.Marker
	Score    int
	Strategy strategy.Strategy
}

// Result summarizes a finished call to Match.Play.
type Result struct {
	Rounds      int
	Scores      map[string]int
	GrandWinner *Player
}

// NextRoundFunc decides after each round whether another one is played.
type NextRoundFunc func(ctx context.Context, round int, outcome entity.Outcome) (bool, error)

type Match struct {
	logger *slog.Logger

	id        string
	board     *entity.Board
	human     *Player
	computer  *Player
	current   *Player
	maxScore  int
	maxRounds int
}

type Option func(*Match)

// WithMaxRounds stops Play after rounds rounds even without a grand winner.
func WithMaxRounds(rounds int) Option {
	return func(m *Match) {
		m.maxRounds = rounds
	}
}

func WithMaxScore(score int) Option {
	return func(m *Match) {
		m.maxScore = score
	}
}

// NewMatch pairs two players on a fresh board. The human side always opens
// a round.
func NewMatch(logger *slog.Logger, human, computer *Player, opts ...Option) *Match {
	id := uuid.New().String()

	match := &Match{
		logger:   logger.With("component", "match", "match_id", id),
		id:       id,
		board:    entity.NewBoard(),
		human:    human,
		computer: computer,
		maxScore: DefaultMaxScore,
	}

	for _, opt := range opts {
		opt(match)
	}

	match.current = human

	return match
}

func (that *Match) ID() string {
	return that.id
}

// Board is the board of the current round.
func (that *Match) Board() *entity.Board {
	return that.board
}

func (that *Match) Human() *Player {
	return that.human
}

func (that *Match) Computer() *Player {
	return that.computer
}

// PlayRound resets the board and alternates turns until the round is won or tied.
func (that *Match) PlayRound(ctx context.Context) (entity.Outcome, error) {
	if _, ok := that.GrandWinner(); ok {
		return entity.Outcome{}, apperror.ErrMatchFinished
	}

	that.board.Reset()
	that.current = that.human

	for {
		outcome, err := that.MakeTurn(ctx)
		if err != nil {
			return outcome, err
		}

		if outcome.IsTerminal() {
			that.updateScore(outcome)
			return outcome, nil
		}
	}
}

// MakeTurn asks the player to move for a square and applies it.
func (that *Match) MakeTurn(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeTurn")

	if outcome := that.board.Outcome(); outcome.IsTerminal() {
		return outcome, apperror.ErrMatchFinished
	}

	player := that.current

	square, err := player.Strategy.ChooseMove(ctx, that.board, player.Mark)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("%s failed to choose a move: %w", player.Name, err)
	}

	if err = that.board.Place(square, player.Mark); err != nil {
		return entity.Outcome{}, fmt.Errorf("%s failed to make turn: %w", player.Name, err)
	}

	log.Debug("turn made", "player", player.Name, "square", square, "board", that.board.String())

	that.current = that.opponentOf(player)

	return that.board.Outcome(), nil
}

// Play runs rounds until a player reaches the max score, the round limit is
// hit, or next declines another round.
func (that *Match) Play(ctx context.Context, next NextRoundFunc) (Result, error) {
	log := that.logger.With("method", "Play")

	rounds := 0
	for {
		outcome, err := that.PlayRound(ctx)
		if err != nil {
			return that.result(rounds), fmt.Errorf("round %d: %w", rounds+1, err)
		}
		rounds++

		log.Info("round finished",
			"round", rounds,
			"state", outcome.State,
			"winner", outcome.Winner,
			"human_score", that.human.Score,
			"computer_score", that.computer.Score,
		)

		if winner, ok := that.GrandWinner(); ok {
			log.Info("grand winner", "player", winner.Name, "rounds", rounds)
			return that.result(rounds), nil
		}

		if that.maxRounds > 0 && rounds >= that.maxRounds {
			return that.result(rounds), nil
		}

		if next == nil {
			continue
		}

		proceed, err := next(ctx, rounds, outcome)
		if err != nil {
			return that.result(rounds), fmt.Errorf("failed to ask for next round: %w", err)
		}
		if !proceed {
			return that.result(rounds), nil
		}
	}
}

// GrandWinner is the first player that reached the max score.
func (that *Match) GrandWinner() (*Player, bool) {
	switch {
	case that.human.Score >= that.maxScore:
		return that.human, true
	case that.computer.Score >= that.maxScore:
		return that.computer, true
	default:
		return nil, false
	}
}

// ResetScores starts a new game: scores go back to zero and the board is emptied.
func (that *Match) ResetScores() {
	that.human.Score = 0
	that.computer.Score = 0
	that.board.Reset()
	that.current = that.human
}

func (that *Match) updateScore(outcome entity.Outcome) {
	switch {
	case outcome.IsWonBy(that.human.Mark):
		that.human.Score++
	case outcome.IsWonBy(that.computer.Mark):
		that.computer.Score++
	}
}

func (that *Match) opponentOf(player *Player) *Player {
	if player == that.human {
		return that.computer
	}

	return that.human
}

func (that *Match) result(rounds int) Result {
	result := Result{
		Rounds: rounds,
		Scores: map[string]int{
			that.human.Name:    that.human.Score,
			that.computer.Name: that.computer.Score,
		},
	}

	if winner, ok := that.GrandWinner(); ok {
		result.GrandWinner = winner
	}

	return result
}
