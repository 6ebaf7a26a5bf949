package game

import (
	"testing"

	"snakego/core"
)

func testControllerConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 5
	return cfg
}

// stepUntilOver drives the playing controller straight ahead until
// the session ends.
func stepUntilOver(t *testing.T, c *Controller) Snapshot {
	t.Helper()
	var snap Snapshot
	var err error
	for i := 0; i < 100; i++ {
		snap, err = c.Step(NoInput())
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if snap.Outcome.Terminal() {
			return snap
		}
	}
	t.Fatal("session still running after 100 straight ticks")
	return snap
}

func TestControllerLifecycle(t *testing.T) {
	c, err := NewController(testControllerConfig())
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}
	if c.Phase() != PhaseIntro {
		t.Fatalf("initial phase = %v, want intro", c.Phase())
	}

	phase, err := c.Handle(EventStart)
	if err != nil {
		t.Fatalf("Handle(start) error: %v", err)
	}
	if phase != PhasePlaying {
		t.Fatalf("phase after start = %v, want playing", phase)
	}
	if c.Session() == nil {
		t.Fatal("no session after start")
	}
	first := c.Session().ID()

	// Straight ahead from the center the snake must meet the right
	// wall, whatever it eats on the way.
	snap := stepUntilOver(t, c)
	if snap.Outcome != core.WallHit {
		t.Fatalf("Outcome = %v, want WallHit", snap.Outcome)
	}
	if c.Phase() != PhaseGameOver {
		t.Fatalf("phase after loss = %v, want game-over", c.Phase())
	}
	if c.FinalScore() != snap.Score {
		t.Errorf("FinalScore() = %d, want %d", c.FinalScore(), snap.Score)
	}

	phase, err = c.Handle(EventReplay)
	if err != nil {
		t.Fatalf("Handle(replay) error: %v", err)
	}
	if phase != PhasePlaying {
		t.Fatalf("phase after replay = %v, want playing", phase)
	}
	if c.Session().ID() == first {
		t.Error("replay reused the previous session")
	}
	fresh := c.Snapshot()
	if fresh.Score != 0 || len(fresh.Snake) != 1 {
		t.Errorf("replay snapshot = %+v, want score 0 and length 1", fresh)
	}
}

func TestControllerIgnoresWrongPhaseEvents(t *testing.T) {
	c, err := NewController(testControllerConfig())
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}

	if phase, _ := c.Handle(EventReplay); phase != PhaseIntro {
		t.Errorf("replay from intro moved to %v", phase)
	}

	if _, err := c.Handle(EventStart); err != nil {
		t.Fatalf("Handle(start) error: %v", err)
	}
	id := c.Session().ID()
	if phase, _ := c.Handle(EventStart); phase != PhasePlaying {
		t.Errorf("start while playing moved to %v", phase)
	}
	if c.Session().ID() != id {
		t.Error("start while playing replaced the session")
	}
}

func TestControllerQuit(t *testing.T) {
	t.Run("from intro", func(t *testing.T) {
		c, err := NewController(testControllerConfig())
		if err != nil {
			t.Fatalf("NewController() error: %v", err)
		}
		if phase, _ := c.Handle(EventQuit); phase != PhaseTerminated {
			t.Errorf("phase = %v, want terminated", phase)
		}
		if phase, _ := c.Handle(EventStart); phase != PhaseTerminated {
			t.Errorf("start after termination moved to %v", phase)
		}
	})

	t.Run("mid-session event", func(t *testing.T) {
		c, err := NewController(testControllerConfig())
		if err != nil {
			t.Fatalf("NewController() error: %v", err)
		}
		c.Handle(EventStart)
		if _, err := c.Step(NoInput()); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if phase, _ := c.Handle(EventQuit); phase != PhaseTerminated {
			t.Errorf("phase = %v, want terminated", phase)
		}
		if !c.Session().Over() {
			t.Error("session left running after quit")
		}
		if c.Snapshot().Outcome != core.Quit {
			t.Errorf("last outcome = %v, want Quit", c.Snapshot().Outcome)
		}
	})

	t.Run("quit input during play", func(t *testing.T) {
		c, err := NewController(testControllerConfig())
		if err != nil {
			t.Fatalf("NewController() error: %v", err)
		}
		c.Handle(EventStart)
		snap, err := c.Step(QuitInput())
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if snap.Outcome != core.Quit {
			t.Errorf("Outcome = %v, want Quit", snap.Outcome)
		}
		if c.Phase() != PhaseTerminated {
			t.Errorf("phase = %v, want terminated", c.Phase())
		}
	})
}

func TestControllerStepOutsidePlaying(t *testing.T) {
	c, err := NewController(testControllerConfig())
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}

	snap, err := c.Step(Turn(core.Up))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if len(snap.Snake) != 0 {
		t.Errorf("Step() before any session returned state: %+v", snap)
	}
	if c.Phase() != PhaseIntro {
		t.Errorf("phase = %v, want intro", c.Phase())
	}
}

func TestNewControllerRejectsBadConfig(t *testing.T) {
	cfg := testControllerConfig()
	cfg.TickRate = 0
	if _, err := NewController(cfg); err == nil {
		t.Error("NewController() = nil error for an invalid config")
	}
}
