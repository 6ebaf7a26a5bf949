package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"snakego/core"
)

// Phase is the top-level state of the game.
type Phase int

const (
	// PhaseIntro shows the title screen and waits for a start.
	PhaseIntro Phase = iota
	// PhasePlaying runs an active session.
	PhasePlaying
	// PhaseGameOver shows the final score and waits for a replay or
	// quit.
	PhaseGameOver
	// PhaseTerminated means the player quit; nothing is accepted
	// after it.
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Event is a phase command from the front-end. Directional input does
// not go through events; it rides along with Step.
type Event int

const (
	// EventStart leaves the intro screen and begins a session.
	EventStart Event = iota
	// EventReplay starts a fresh session from the game-over screen.
	EventReplay
	// EventQuit ends the game from any phase.
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventReplay:
		return "replay"
	case EventQuit:
		return "quit"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Controller drives the intro, playing and game-over phases and
// builds a fresh Session for every start and replay. Like the
// sessions it owns, it is single-threaded by contract.
type Controller struct {
	cfg     Config
	phase   Phase
	session *Session
	last    Snapshot
	final   int
	log     zerolog.Logger
}

// NewController validates cfg and returns a controller showing the
// intro.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller config: %w", err)
	}
	return &Controller{cfg: cfg, phase: PhaseIntro, log: cfg.Logger}, nil
}

// Handle applies a phase event and returns the phase it lands in.
// Events that make no sense in the current phase are ignored. The
// only possible error is a failed first food placement when starting
// a session.
func (c *Controller) Handle(ev Event) (Phase, error) {
	switch {
	case ev == EventQuit:
		c.terminate()
	case ev == EventStart && c.phase == PhaseIntro,
		ev == EventReplay && c.phase == PhaseGameOver:
		if err := c.startSession(); err != nil {
			return c.phase, err
		}
	}
	return c.phase, nil
}

// Step forwards one tick to the active session. Outside PhasePlaying
// it is a no-op returning the last snapshot. A loss moves the
// controller to PhaseGameOver; a quit input or a fatal spawn failure
// moves it to PhaseTerminated.
func (c *Controller) Step(in Input) (Snapshot, error) {
	if c.phase != PhasePlaying {
		return c.last, nil
	}

	snap, err := c.session.Tick(in)
	c.last = snap
	if err != nil {
		c.final = snap.Score
		c.setPhase(PhaseTerminated)
		return snap, err
	}

	switch snap.Outcome {
	case core.WallHit, core.SelfHit:
		c.final = snap.Score
		c.setPhase(PhaseGameOver)
	case core.Quit:
		c.final = snap.Score
		c.setPhase(PhaseTerminated)
	}
	return snap, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the active session, or nil before the first start.
func (c *Controller) Session() *Session {
	return c.session
}

// Snapshot returns the last emitted render state. Before the first
// session it is the zero Snapshot.
func (c *Controller) Snapshot() Snapshot {
	return c.last
}

// FinalScore returns the score of the most recently ended session.
func (c *Controller) FinalScore() int {
	return c.final
}

func (c *Controller) startSession() error {
	s, err := NewSession(c.cfg)
	if err != nil {
		return err
	}
	c.session = s
	c.last = s.Snapshot()
	c.setPhase(PhasePlaying)
	return nil
}

// terminate ends the game no matter what phase it is in. An active
// session is closed with a quit tick so its log records the outcome.
func (c *Controller) terminate() {
	if c.session != nil && !c.session.Over() {
		c.last, _ = c.session.Tick(QuitInput())
		c.final = c.session.Score()
	}
	c.setPhase(PhaseTerminated)
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.log.Debug().Stringer("from", c.phase).Stringer("to", p).Msg("phase change")
	c.phase = p
}
