package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrMatchFinished    = errors.New("match is already finished")

	ErrInvalidMarker   = errors.New("marker must be a single non-space character")
	ErrDuplicateMarker = errors.New("markers must differ")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrDuplicateName   = errors.New("names must differ")
)
