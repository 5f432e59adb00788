package types

import "fmt"

// Cell is a position on the board. Both coordinates live in [0, size).
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a cardinal heading. Opposite directions are exactly 2 apart.
type Direction int

const (
	North Direction = iota // 0
	East                   // 1
	South                  // 2
	West                   // 3
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// IsOpposite reports whether other points straight back against d.
func (d Direction) IsOpposite(other Direction) bool {
	diff := d - other
	if diff < 0 {
		diff = -diff
	}
	return diff == 2
}

// Delta returns the step offset. North decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Marker is the content of one snapshot cell.
type Marker rune

const (
	Empty Marker = '.'
	Snake Marker = 'X'
	Food  Marker = '0'
)

func (m Marker) String() string {
	return string(m)
}

// CollisionType records why a move ended the game.
type CollisionType int

const (
	NoCollision CollisionType = iota
	IllegalReversal
	SelfCollision
	InvalidDirection
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case IllegalReversal:
		return "illegal reversal"
	case SelfCollision:
		return "self collision"
	case InvalidDirection:
		return "invalid direction"
	default:
		return "unknown"
	}
}

// Wrap folds v into [0, size).
func Wrap(v, size int) int {
	return ((v % size) + size) % size
}
