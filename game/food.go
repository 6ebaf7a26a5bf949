package game

import (
	"errors"
	"math/rand"

	"snakego/core"
)

// ErrBoardFull reports that every cell is occupied and food can no
// longer be placed. The session owning the spawner is over when this
// comes back.
var ErrBoardFull = errors.New("no free cell left for food")

// maxSpawnAttempts bounds the rejection-sampling phase before Spawn
// switches to counting free cells directly.
const maxSpawnAttempts = 64

// Spawner draws random free cells for food placement. Each Session
// owns one; it is not safe for concurrent use.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn picks a uniformly random cell of g that is not in occupied.
// Rejection sampling covers the common case of a mostly empty board;
// when the samples keep landing on the snake, Spawn enumerates the
// free cells and picks among them instead of looping forever. It
// returns ErrBoardFull once occupied covers the whole grid.
func (sp *Spawner) Spawn(g core.Grid, occupied []core.Cell) (core.Cell, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		c := g.RandomCell(sp.rng)
		if !containsCell(occupied, c) {
			return c, nil
		}
	}

	free := 0
	for i := 0; i < g.Capacity(); i++ {
		if !containsCell(occupied, g.CellAt(i)) {
			free++
		}
	}
	if free == 0 {
		return core.Cell{}, ErrBoardFull
	}

	n := sp.rng.Intn(free)
	for i := 0; i < g.Capacity(); i++ {
		c := g.CellAt(i)
		if containsCell(occupied, c) {
			continue
		}
		if n == 0 {
			return c, nil
		}
		n--
	}
	return core.Cell{}, ErrBoardFull
}
