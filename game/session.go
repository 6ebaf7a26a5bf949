package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snakego/core"
)

// Input is one player command delivered with a tick. The zero value
// carries no command.
type Input struct {
	turn bool
	dir  core.Direction
	quit bool
}

// NoInput returns the empty command.
func NoInput() Input {
	return Input{}
}

// Turn requests a direction change. A request that would reverse the
// snake onto its own neck is ignored by the tick that consumes it.
func Turn(d core.Direction) Input {
	return Input{turn: true, dir: d}
}

// QuitInput requests an immediate end of the session.
func QuitInput() Input {
	return Input{quit: true}
}

// Snapshot is the render state emitted after every tick. The cell
// slice is a copy, safe to keep across ticks.
type Snapshot struct {
	// Snake lists the body cells tail first, head last.
	Snake []core.Cell
	Food  core.Cell
	Score int
	// Outcome stays Ok while play continues and records how the
	// session ended otherwise.
	Outcome core.Outcome
}

// Session is one play-through from spawn to loss or quit. It owns the
// snake, the food position and the score, and is advanced exclusively
// through Tick by an external fixed-rate loop. Not safe for
// concurrent use.
type Session struct {
	id      uuid.UUID
	grid    core.Grid
	snake   *Snake
	spawner *Spawner
	dir     core.Direction
	food    core.Cell
	score   int
	ticks   int
	over    bool
	outcome core.Outcome
	log     zerolog.Logger
}

// NewSession starts a session with a one-cell snake at the board
// center heading right and the first food already placed.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	id := uuid.New()
	grid := cfg.Grid()
	s := &Session{
		id:      id,
		grid:    grid,
		snake:   NewSnake(grid.Center(), cfg.BlockSize),
		spawner: NewSpawner(cfg.newRand()),
		dir:     core.Right,
		log:     cfg.Logger.With().Str("session", shortID(id)).Logger(),
	}

	food, err := s.spawner.Spawn(s.grid, s.snake.Cells())
	if err != nil {
		return nil, fmt.Errorf("placing first food: %w", err)
	}
	s.food = food

	s.log.Info().
		Int("columns", grid.Columns()).
		Int("rows", grid.Rows()).
		Msg("session started")
	return s, nil
}

// Tick advances the simulation one step: consume at most one input,
// move the snake, test collisions, then handle food. After the
// session has ended Tick keeps returning the final snapshot.
//
// The only error Tick can return wraps ErrBoardFull, when the snake
// has filled the grid and food cannot be placed; the session is over
// at that point.
func (s *Session) Tick(in Input) (Snapshot, error) {
	if s.over {
		return s.Snapshot(), nil
	}
	s.ticks++

	if in.quit {
		s.finish(core.Quit)
		return s.Snapshot(), nil
	}
	if in.turn && in.dir != s.dir.Opposite() {
		s.dir = in.dir
	}

	head := s.snake.Advance(s.dir)

	if out := CheckCollision(head, s.grid, s.snake.Body(), s.snake.Length()); out.Terminal() {
		s.finish(out)
		return s.Snapshot(), nil
	}

	if head == s.food {
		s.snake.Grow()
		s.score += FoodScore

		food, err := s.spawner.Spawn(s.grid, s.snake.Cells())
		if err != nil {
			s.over = true
			s.log.Error().Err(err).Int("score", s.score).Msg("board full, session over")
			return s.Snapshot(), fmt.Errorf("placing food: %w", err)
		}
		s.food = food
		s.log.Debug().
			Stringer("food", food).
			Int("score", s.score).
			Int("length", s.snake.Length()).
			Msg("food eaten")
	}

	return s.Snapshot(), nil
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() Snapshot {
	cells := make([]core.Cell, len(s.snake.Cells()))
	copy(cells, s.snake.Cells())
	return Snapshot{
		Snake:   cells,
		Food:    s.food,
		Score:   s.score,
		Outcome: s.outcome,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Score returns the points collected so far.
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// Outcome returns how the session ended, or Ok while it is running.
func (s *Session) Outcome() core.Outcome {
	return s.outcome
}

func (s *Session) finish(out core.Outcome) {
	s.over = true
	s.outcome = out
	s.log.Info().
		Stringer("outcome", out).
		Int("score", s.score).
		Int("ticks", s.ticks).
		Msg("session over")
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
