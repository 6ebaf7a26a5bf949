// Package term is the terminal front-end: the board drawn with tcell
// box-drawing characters, the simulation driven off a ticker at the
// configured rate, and keys collected between ticks.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snakego/core"
	"snakego/game"
)

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.Up,
	tcell.KeyDown:  core.Down,
	tcell.KeyLeft:  core.Left,
	tcell.KeyRight: core.Right,
}

var rune2Dir = map[rune]core.Direction{
	'w': core.Up, 'W': core.Up,
	's': core.Down, 'S': core.Down,
	'a': core.Left, 'A': core.Left,
	'd': core.Right, 'D': core.Right,
}

// Engine owns the terminal run loop. Between simulation steps it
// buffers the latest valid direction press, so a tick applies at most
// one turn.
type Engine struct {
	cfg    game.Config
	ctrl   *game.Controller
	screen tcell.Screen
	r      *Renderer
	log    zerolog.Logger

	// dir mirrors the direction the snake last moved in; pending is
	// the request that will ride along with the next tick.
	dir     core.Direction
	pending core.Direction
	quit    bool
}

// New prepares an engine drawing to screen. The screen must already
// be initialized; Run finalizes it on return.
func New(cfg game.Config, screen tcell.Screen) (*Engine, error) {
	ctrl, err := game.NewController(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:     cfg,
		ctrl:    ctrl,
		screen:  screen,
		r:       NewRenderer(cfg.Grid()),
		log:     cfg.Logger,
		dir:     core.Right,
		pending: core.Right,
	}, nil
}

// Run drives the game until the player quits or an error stops it.
func (e *Engine) Run() error {
	defer e.screen.Fini()

	grid := e.cfg.Grid()
	if w, h := e.screen.Size(); w < grid.Columns()+2 || h < grid.Rows()+3 {
		return fmt.Errorf("terminal %dx%d is too small for a %dx%d board, need %dx%d",
			w, h, grid.Columns(), grid.Rows(), grid.Columns()+2, grid.Rows()+3)
	}

	e.screen.SetStyle(defStyle)
	e.screen.HideCursor()
	e.screen.Clear()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.TickRate))
	defer ticker.Stop()

	e.log.Info().
		Int("columns", e.cfg.Grid().Columns()).
		Int("rows", e.cfg.Grid().Rows()).
		Int("tick_rate", e.cfg.TickRate).
		Msg("terminal engine started")
	e.redraw()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				e.redraw()
				e.screen.Sync()
			case *tcell.EventKey:
				if err := e.handleKey(ev); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if err := e.tick(); err != nil {
				return err
			}
		}
		if e.ctrl.Phase() == game.PhaseTerminated {
			return nil
		}
	}
}

func (e *Engine) handleKey(ev *tcell.EventKey) error {
	switch e.ctrl.Phase() {
	case game.PhaseIntro:
		switch {
		case isQuitKey(ev):
			_, _ = e.ctrl.Handle(game.EventQuit)
		case ev.Key() == tcell.KeyEnter,
			ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if _, err := e.ctrl.Handle(game.EventStart); err != nil {
				return err
			}
			e.resetInput()
			e.redraw()
		}
	case game.PhasePlaying:
		if isQuitKey(ev) {
			e.quit = true
			return nil
		}
		if d, ok := keyDirection(ev); ok && d != e.dir.Opposite() {
			e.pending = d
		}
	case game.PhaseGameOver:
		switch {
		case isQuitKey(ev):
			_, _ = e.ctrl.Handle(game.EventQuit)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C'):
			if _, err := e.ctrl.Handle(game.EventReplay); err != nil {
				return err
			}
			e.resetInput()
			e.redraw()
		}
	}
	return nil
}

// tick advances the simulation by one step while a session is
// running and redraws whatever screen the step lands in.
func (e *Engine) tick() error {
	if e.ctrl.Phase() != game.PhasePlaying {
		return nil
	}

	in := game.NoInput()
	switch {
	case e.quit:
		in = game.QuitInput()
	case e.pending != e.dir:
		in = game.Turn(e.pending)
	}

	snap, err := e.ctrl.Step(in)
	if err != nil {
		return fmt.Errorf("advancing game: %w", err)
	}
	if snap.Outcome == core.Ok {
		e.dir = e.pending
	}

	switch e.ctrl.Phase() {
	case game.PhasePlaying:
		e.r.DrawBoard(e.screen, snap)
	case game.PhaseGameOver:
		e.r.DrawGameOver(e.screen, e.ctrl.FinalScore())
	}
	return nil
}

func (e *Engine) redraw() {
	switch e.ctrl.Phase() {
	case game.PhaseIntro:
		e.r.DrawIntro(e.screen)
	case game.PhasePlaying:
		e.r.DrawBoard(e.screen, e.ctrl.Snapshot())
	case game.PhaseGameOver:
		e.r.DrawGameOver(e.screen, e.ctrl.FinalScore())
	}
}

func (e *Engine) resetInput() {
	e.dir = core.Right
	e.pending = core.Right
	e.quit = false
}

func keyDirection(ev *tcell.EventKey) (core.Direction, bool) {
	if d, ok := key2Dir[ev.Key()]; ok {
		return d, true
	}
	if ev.Key() == tcell.KeyRune {
		d, ok := rune2Dir[ev.Rune()]
		return d, ok
	}
	return 0, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
