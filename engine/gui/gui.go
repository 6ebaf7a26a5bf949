// Package gui is the desktop front-end: a dark board with a circular
// red food and a green snake drawn with black cell borders, run
// through the ebiten game loop.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snakego/core"
	"snakego/game"
)

var (
	backgroundColor = color.RGBA{30, 30, 30, 255}
	foodColor       = color.RGBA{213, 50, 80, 255}
	snakeColor      = color.RGBA{0, 170, 0, 255}
	snakeAltColor   = color.RGBA{0, 255, 0, 255}
	borderColor     = color.RGBA{0, 0, 0, 255}
)

const lineHeight = 20

var keyBindings = []struct {
	key ebiten.Key
	dir core.Direction
}{
	{ebiten.KeyArrowUp, core.Up},
	{ebiten.KeyW, core.Up},
	{ebiten.KeyArrowDown, core.Down},
	{ebiten.KeyS, core.Down},
	{ebiten.KeyArrowLeft, core.Left},
	{ebiten.KeyA, core.Left},
	{ebiten.KeyArrowRight, core.Right},
	{ebiten.KeyD, core.Right},
}

// Game adapts a game.Controller to the ebiten run loop. Update runs
// at ebiten's default 60 ticks per second; the simulation advances
// every stepFrames frames to hit the configured tick rate, while keys
// are sampled every frame.
type Game struct {
	cfg  game.Config
	ctrl *game.Controller

	// dir mirrors the direction the snake last moved in; pending is
	// the latest valid request, applied on the next simulation step.
	dir     core.Direction
	pending core.Direction
	quit    bool

	frame      int
	stepFrames int
}

// New builds the front-end for cfg.
func New(cfg game.Config) (*Game, error) {
	ctrl, err := game.NewController(cfg)
	if err != nil {
		return nil, err
	}
	step := ebiten.DefaultTPS / cfg.TickRate
	if step < 1 {
		step = 1
	}
	return &Game{
		cfg:        cfg,
		ctrl:       ctrl,
		dir:        core.Right,
		pending:    core.Right,
		stepFrames: step,
	}, nil
}

// Run opens the window and blocks until the player quits or an error
// stops the game.
func Run(cfg game.Config) error {
	g, err := New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("SnakeGo")
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	switch g.ctrl.Phase() {
	case game.PhaseIntro:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if _, err := g.ctrl.Handle(game.EventStart); err != nil {
				return err
			}
			g.restart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			_, _ = g.ctrl.Handle(game.EventQuit)
		}
	case game.PhasePlaying:
		return g.updatePlaying()
	case game.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			if _, err := g.ctrl.Handle(game.EventReplay); err != nil {
				return err
			}
			g.restart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			_, _ = g.ctrl.Handle(game.EventQuit)
		}
	case game.PhaseTerminated:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePlaying() error {
	g.readKeys()

	g.frame++
	if g.frame%g.stepFrames != 0 {
		return nil
	}

	in := game.NoInput()
	switch {
	case g.quit:
		in = game.QuitInput()
	case g.pending != g.dir:
		in = game.Turn(g.pending)
	}

	snap, err := g.ctrl.Step(in)
	if err != nil {
		return fmt.Errorf("advancing game: %w", err)
	}
	if snap.Outcome == core.Ok {
		g.dir = g.pending
	}
	return nil
}

// readKeys buffers the latest direction request between simulation
// steps. Reversal requests are dropped at press time, so an earlier
// valid press in the same window is not lost to one.
func (g *Game) readKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
		return
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) && b.dir != g.dir.Opposite() {
			g.pending = b.dir
		}
	}
}

func (g *Game) restart() {
	g.dir = core.Right
	g.pending = core.Right
	g.quit = false
	g.frame = 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.ctrl.Phase() {
	case game.PhaseIntro:
		g.drawCentered(screen, []string{
			"SnakeGo",
			"",
			"Use Arrow Keys to Move",
			"Eat the Red Food to Grow",
			"Avoid Walls and Yourself!",
			"",
			"Press SPACE to Start",
			"Press Q to Quit",
		})
	case game.PhaseGameOver:
		g.drawCentered(screen, []string{
			"Game Over!",
			fmt.Sprintf("Final Score: %d", g.ctrl.FinalScore()),
			"",
			"Press C to Play Again",
			"Press Q to Quit",
		})
	default:
		g.drawBoard(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	b := float64(g.cfg.BlockSize)

	ebitenutil.DrawCircle(screen, float64(snap.Food.X)+b/2, float64(snap.Food.Y)+b/2, b/2, foodColor)

	for i, c := range snap.Snake {
		// Black backing rect with an inset segment gives each cell a
		// border. The head and every other body cell use the bright
		// green.
		ebitenutil.DrawRect(screen, float64(c.X), float64(c.Y), b, b, borderColor)
		col := snakeColor
		if i == len(snap.Snake)-1 || i%2 == 1 {
			col = snakeAltColor
		}
		ebitenutil.DrawRect(screen, float64(c.X)+1, float64(c.Y)+1, b-2, b-2, col)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
}

// drawCentered stacks lines around the vertical middle of the board,
// centering each one by the debug font's approximate glyph width.
func (g *Game) drawCentered(screen *ebiten.Image, lines []string) {
	startY := (g.cfg.Height - len(lines)*lineHeight) / 2
	for i, line := range lines {
		approxWidth := len(line) * 8
		x := (g.cfg.Width - approxWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, startY+i*lineHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
