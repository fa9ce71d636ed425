// Package console reads a human's moves and answers from a line-based
// terminal. It prints prompts and one-line results only.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const markerColor = "1" // ANSI red

type Console struct {
	in  *bufio.Scanner
	out *termenv.Output
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out),
	}
}

// NextMove prompts for one of available. Input that is not a number is
// returned as 0, which no board accepts.
func (that *Console) NextMove(ctx context.Context, available []int) (int, error) {
	that.printf("Choose a square (%s):\n", JoinOr(available, ", ", "or"))

	line, err := that.readLine(ctx)
	if err != nil {
		return 0, err
	}

	square, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}

	return square, nil
}

func (that *Console) Rejected(_ context.Context, _ int, _ []int) {
	that.printf("Sorry, that's not a valid choice.\n")
}

// Confirm asks a yes/no question until it gets y or n.
func (that *Console) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		that.printf("%s (y/n)\n", question)

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		that.printf("Sorry, must be y or n\n")
	}
}

// Thinking announces the computer's turn.
func (that *Console) Thinking(name string) {
	that.printf("%s is thinking...\n", name)
}

// Moved reports a square taken by name.
func (that *Console) Moved(name string, mark entity.Marker, square int) {
	that.printf("%s[%s] took square %d\n", name, that.Mark(mark), square)
}

// Result prints the outcome of a round from the human's point of view.
func (that *Console) Result(outcome entity.Outcome, computer string, humanMark entity.Marker) {
	switch {
	case outcome.IsWonBy(humanMark):
		that.printf("You won!\n")
	case outcome.State == entity.StateWon:
		that.printf("%s won!\n", computer)
	default:
		that.printf("It's a tie!\n")
	}
}

func (that *Console) Scores(humanName string, humanScore int, computerName string, computerScore int) {
	that.printf("Score:  %s[%d] | %s[%d]\n", humanName, humanScore, computerName, computerScore)
}

func (that *Console) GrandWinner(name string, isHuman bool) {
	if isHuman {
		that.printf("You are the Grand Winner!\n")
		return
	}
	that.printf("The Grand Winner Is %s!\n", name)
}

func (that *Console) Goodbye() {
	that.printf("Thanks for playing Tic Tac Toe! Goodbye!\n")
}

// Mark renders a marker in the marker color when the terminal supports it.
func (that *Console) Mark(mark entity.Marker) string {
	return that.out.String(mark.String()).Foreground(that.out.Color(markerColor)).String()
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

// JoinOr lists items for a prompt: "1", "1 or 2", "1, 2, or 3".
func JoinOr(items []int, delimiter, lastWord string) string {
	words := make([]string, len(items))
	for i, item := range items {
		words[i] = strconv.Itoa(item)
	}

	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + lastWord + " " + words[1]
	default:
		return strings.Join(words[:len(words)-1], delimiter) + delimiter + lastWord + " " + words[len(words)-1]
	}
}
