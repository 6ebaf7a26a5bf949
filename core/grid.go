package core

import "math/rand"

// Grid describes the board geometry: total extent in movement units and the
// block size that snake and food positions are aligned to. Width and Height
// are expected to be multiples of BlockSize.
type Grid struct {
	Width     int
	Height    int
	BlockSize int
}

// Columns returns the number of cells along the X axis.
func (g Grid) Columns() int {
	return g.Width / g.BlockSize
}

// Rows returns the number of cells along the Y axis.
func (g Grid) Rows() int {
	return g.Height / g.BlockSize
}

// Capacity returns the total number of cells on the board.
func (g Grid) Capacity() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether c lies inside the board. The bounds are half-open:
// 0 <= x < Width, 0 <= y < Height.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the block-aligned midpoint of the board, the conventional
// starting position for a new snake.
func (g Grid) Center() Cell {
	return Cell{
		X: g.Width / 2 / g.BlockSize * g.BlockSize,
		Y: g.Height / 2 / g.BlockSize * g.BlockSize,
	}
}

// RandomCell draws a uniformly random block-aligned cell from the board.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Columns()) * g.BlockSize,
		Y: rng.Intn(g.Rows()) * g.BlockSize,
	}
}

// CellAt maps a flat index in [0, Capacity) to its cell, scanning rows
// left-to-right, top-to-bottom.
func (g Grid) CellAt(i int) Cell {
	return Cell{
		X: i % g.Columns() * g.BlockSize,
		Y: i / g.Columns() * g.BlockSize,
	}
}
