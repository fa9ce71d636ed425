package entity

// Marker identifies the side that owns a square. Any two distinct values can
// play against each other; nothing here assumes which one is human.
type Marker string

// Unmarked is the mark of an empty square.
const Unmarked Marker = ""

func (that Marker) String() string {
	return string(that)
}

type Square struct {
	location int
	mark     Marker
}

func newSquare(location int) Square {
	return Square{location: location, mark: Unmarked}
}

func (that Square) Location() int {
	return that.location
}

func (that Square) Mark() Marker {
	return that.mark
}

func (that Square) IsMarked() bool {
	return that.mark != Unmarked
}
