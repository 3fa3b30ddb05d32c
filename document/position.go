package document

import "fmt"

// Position is a zero-based location in buffer space: X is the grapheme
// column, Y the row. It is not range checked; consumers clamp it.
type Position struct {
	X, Y int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other, in
// document order.
func (p Position) Compare(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// SearchDirection selects the scan order of Line.Find and Buffer.Find.
type SearchDirection int

const (
	Forward SearchDirection = iota
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
