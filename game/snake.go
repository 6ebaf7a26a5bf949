package game

import "snakego/core"

// Snake is the player body. Cells run tail first to head last and are
// always aligned to the block grid.
type Snake struct {
	cells  []core.Cell
	length int
	step   int
}

// NewSnake places a one-cell snake at start. step is the block size
// the snake moves by.
func NewSnake(start core.Cell, step int) *Snake {
	return &Snake{cells: []core.Cell{start}, length: 1, step: step}
}

// Advance moves the head one block in dir, trimming the tail unless
// the body is still catching up to a recent Grow. It returns the new
// head and does no bounds checking; collisions are the caller's job.
func (s *Snake) Advance(dir core.Direction) core.Cell {
	dx, dy := dir.Delta()
	head := s.Head()
	head.X += dx * s.step
	head.Y += dy * s.step

	s.cells = append(s.cells, head)
	if len(s.cells) > s.length {
		s.cells = s.cells[1:]
	}
	return head
}

// Grow raises the target length by one. The extra cell materializes on
// the next Advance, when the tail trim is skipped.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the leading cell of the body.
func (s *Snake) Head() core.Cell {
	return s.cells[len(s.cells)-1]
}

// Length returns the target body length.
func (s *Snake) Length() int {
	return s.length
}

// Cells returns the whole body, tail first. The caller must not
// modify the returned slice.
func (s *Snake) Cells() []core.Cell {
	return s.cells
}

// Body returns every cell except the head, the set self-collision is
// tested against.
func (s *Snake) Body() []core.Cell {
	return s.cells[:len(s.cells)-1]
}
