package entity

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrInvalidLayout = errors.New("invalid board layout")

// ParseBoard builds a board from nine runes in row-major order, the inverse
// of Board.String. '-' and ' ' denote empty squares.
func ParseBoard(layout string) (*Board, error) {
	if utf8.RuneCountInString(layout) != BoardSize {
		return nil, fmt.Errorf("%w: want %d squares, got %q", ErrInvalidLayout, BoardSize, layout)
	}

	board := NewBoard()

	location := FirstSquare
	for _, r := range layout {
		if r != '-' && r != ' ' {
			if err := board.Place(location, Marker(r)); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
			}
		}
		location++
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixed layouts known to be valid.
func MustParseBoard(layout string) *Board {
	board, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}

	return board
}
