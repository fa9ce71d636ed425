package entity

type RoundState string

const (
	StateInProgress RoundState = "in_progress"
	StateWon        RoundState = "won"
	StateTied       RoundState = "tied"
)

type Outcome struct {
	State  RoundState
	Winner Marker
}

// Outcome derives the round state from the current board: a winning line
// ends the round as Won, otherwise a full board ends it as Tied.
func (that *Board) Outcome() Outcome {
	if winner, ok := that.WinningMarker(); ok {
		return Outcome{State: StateWon, Winner: winner}
	}

	if that.IsFull() {
		return Outcome{State: StateTied}
	}

	return Outcome{State: StateInProgress}
}

func (that Outcome) IsTerminal() bool {
	return that.State != StateInProgress
}

func (that Outcome) IsWonBy(mark Marker) bool {
	return that.State == StateWon && that.Winner == mark
}
