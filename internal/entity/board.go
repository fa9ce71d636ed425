package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	BoardSize = 9

	FirstSquare  = 1
	LastSquare   = 9
	CenterSquare = 5
)

// WinningLines lists rows, then columns, then diagonals, by square location.
var WinningLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board is a 3x3 grid addressed 1..9 in row-major order.
//
// Board does not enforce turn alternation. A board reached through legal,
// alternating play never has two winning markers at once, and the queries
// below assume that.
type Board struct {
	squares [BoardSize]Square
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset empties every square.
func (that *Board) Reset() {
	for i := range that.squares {
		that.squares[i] = newSquare(i + FirstSquare)
	}
}

// Place marks an empty square. It never overwrites an existing mark.
func (that *Board) Place(location int, mark Marker) error {
	if !IsValidLocation(location) {
		return fmt.Errorf("%w: square %d is out of range", apperror.ErrInvalidMove, location)
	}

	if mark == Unmarked {
		return fmt.Errorf("%w: empty marker", apperror.ErrInvalidMove)
	}

	square := &that.squares[location-FirstSquare]
	if square.IsMarked() {
		return fmt.Errorf("%w: square %d is already marked by %s", apperror.ErrInvalidMove, location, square.mark)
	}

	square.mark = mark

	return nil
}

// ResetSquare clears a single square. It exists so that a search can undo
// its own speculative placements; normal play only ever calls Reset.
func (that *Board) ResetSquare(location int) {
	if !IsValidLocation(location) {
		return
	}

	that.squares[location-FirstSquare] = newSquare(location)
}

// Mark returns the marker at location, or Unmarked for an empty or invalid square.
func (that *Board) Mark(location int) Marker {
	if !IsValidLocation(location) {
		return Unmarked
	}

	return that.squares[location-FirstSquare].mark
}

func (that *Board) Square(location int) (Square, bool) {
	if !IsValidLocation(location) {
		return Square{}, false
	}

	return that.squares[location-FirstSquare], true
}

// UnmarkedSquares returns the empty squares in ascending order.
func (that *Board) UnmarkedSquares() []int {
	unmarked := make([]int, 0, BoardSize)
	for _, square := range that.squares {
		if !square.IsMarked() {
			unmarked = append(unmarked, square.location)
		}
	}

	return unmarked
}

func (that *Board) IsFull() bool {
	for _, square := range that.squares {
		if !square.IsMarked() {
			return false
		}
	}

	return true
}

func (that *Board) CenterAvailable() bool {
	return !that.squares[CenterSquare-FirstSquare].IsMarked()
}

// WinningMarker returns the marker of the first uniformly marked line.
func (that *Board) WinningMarker() (Marker, bool) {
	for _, line := range WinningLines {
		a, b, c := that.Mark(line[0]), that.Mark(line[1]), that.Mark(line[2])
		if a != Unmarked && a == b && b == c {
			return a, true
		}
	}

	return Unmarked, false
}

// FindImmediateWinSquares maps each marker to the empty squares that would
// complete one of its lines. Squares are ascending and unique per marker.
func (that *Board) FindImmediateWinSquares() map[Marker][]int {
	wins := make(map[Marker][]int)

	for _, line := range WinningLines {
		mark, empty, ok := that.openLine(line)
		if !ok {
			continue
		}

		if !slices.Contains(wins[mark], empty) {
			wins[mark] = append(wins[mark], empty)
		}
	}

	for mark := range wins {
		slices.Sort(wins[mark])
	}

	return wins
}

// openLine reports whether two squares of line share a marker and the third is empty.
func (that *Board) openLine(line [3]int) (Marker, int, bool) {
	var (
		mark    = Unmarked
		empty   = 0
		marking = 0
	)

	for _, location := range line {
		current := that.Mark(location)
		switch {
		case current == Unmarked:
			empty = location
		case mark == Unmarked:
			mark = current
			marking++
		case current == mark:
			marking++
		default:
			return Unmarked, 0, false
		}
	}

	if marking != 2 || empty == 0 {
		return Unmarked, 0, false
	}

	return mark, empty, true
}

// Markers returns the distinct markers on the board in order of first appearance.
func (that *Board) Markers() []Marker {
	markers := make([]Marker, 0, 2)
	for _, square := range that.squares {
		if square.IsMarked() && !slices.Contains(markers, square.mark) {
			markers = append(markers, square.mark)
		}
	}

	return markers
}

// OpponentOf returns the first marker on the board other than mark.
func (that *Board) OpponentOf(mark Marker) (Marker, bool) {
	for _, other := range that.Markers() {
		if other != mark {
			return other, true
		}
	}

	return Unmarked, false
}

func (that *Board) Copy() *Board {
	clone := *that

	return &clone
}

// Layout is a snapshot of every square's mark, index 0 being square 1.
func (that *Board) Layout() [BoardSize]Marker {
	var layout [BoardSize]Marker
	for i, square := range that.squares {
		layout[i] = square.mark
	}

	return layout
}

// String renders the board as nine characters, "-" for empty squares.
func (that *Board) String() string {
	var sb strings.Builder
	for _, square := range that.squares {
		if square.IsMarked() {
			sb.WriteString(square.mark.String())
		} else {
			sb.WriteByte('-')
		}
	}

	return sb.String()
}

func IsValidLocation(location int) bool {
	return location >= FirstSquare && location <= LastSquare
}
