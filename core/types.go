// Package core holds the vocabulary types shared by the simulation and the
// front-ends: board cells, directions, tick outcomes and the grid geometry.
// It is UI-agnostic and has no dependencies.
package core

import "fmt"

// Cell is one board position. Positions step by the grid's block size, so
// neighbouring cells differ by exactly one block in one axis. Cells compare
// by value.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the unit step for the direction. Up decreases Y, Down
// increases it (screen coordinates, origin at the top-left).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Outcome is the collision verdict of one simulation tick.
type Outcome int

const (
	// Ok means the tick completed and the session continues.
	Ok Outcome = iota
	// WallHit means the head left the board.
	WallHit
	// SelfHit means the head landed on the snake's own body.
	SelfHit
	// Quit means the player ended the session voluntarily.
	Quit
)

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != Ok
}

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case WallHit:
		return "wall-hit"
	case SelfHit:
		return "self-hit"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
