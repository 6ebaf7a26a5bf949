package term_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"snakego/core"
	"snakego/engine/term"
	"snakego/game"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func simCellsFromStrings(t *testing.T, rows []string) ([]tcell.SimCell, int, int) {
	t.Helper()
	if len(rows) == 0 {
		return nil, 0, 0
	}
	width := len([]rune(rows[0]))
	cells := make([]tcell.SimCell, 0, len(rows)*width)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			t.Fatalf("inconsistent expected rows: row 1 is %d runes wide, row %d is %d", width, i+1, len(runes))
		}
		for _, r := range runes {
			cells = append(cells, tcell.SimCell{Runes: []rune{r}})
		}
	}
	return cells, width, len(rows)
}

func assertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	gotCells, w, h := got.GetContents()
	wantCells, wantW, wantH := simCellsFromStrings(t, want)
	if w != wantW || h != wantH {
		t.Fatalf("got simulation screen of size %dx%d, want %dx%d", w, h, wantW, wantH)
	}

	for i := range gotCells {
		if len(gotCells[i].Runes) == 0 && wantCells[i].Runes[0] == ' ' {
			continue
		}
		if !runesEqual(gotCells[i].Runes, wantCells[i].Runes) {
			t.Errorf("at column %d row %d got %q, want %q",
				i%w, i/w, string(gotCells[i].Runes), string(wantCells[i].Runes))
		}
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func screenText(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func assertScreenContains(t *testing.T, s tcell.SimulationScreen, want string) {
	t.Helper()
	for _, row := range screenText(s) {
		if strings.Contains(row, want) {
			return
		}
	}
	t.Errorf("screen does not contain %q:\n%s", want, strings.Join(screenText(s), "\n"))
}

func TestDrawBoard(t *testing.T) {
	grid := core.Grid{Width: 100, Height: 60, BlockSize: 20}
	r := term.NewRenderer(grid)
	s := newSimScreen(t, 12, 6)

	r.DrawBoard(s, game.Snapshot{
		Snake: []core.Cell{{X: 20, Y: 20}, {X: 40, Y: 20}},
		Food:  core.Cell{X: 80, Y: 40},
		Score: 30,
	})

	assertSimulationScreen(t, s, []string{
		"┌─────┐     ",
		"│·····│     ",
		"│·█◆··│     ",
		"│····#│     ",
		"└─────┘     ",
		"Score: 30   ",
	})
}

func TestDrawIntro(t *testing.T) {
	grid := core.Grid{Width: 400, Height: 240, BlockSize: 20}
	r := term.NewRenderer(grid)
	s := newSimScreen(t, 24, 15)

	r.DrawIntro(s)

	assertScreenContains(t, s, "SNAKE")
	assertScreenContains(t, s, "Use Arrow Keys to Move")
	assertScreenContains(t, s, "Press SPACE to Start")
	assertScreenContains(t, s, "Press Q to Quit")
}

func TestDrawGameOver(t *testing.T) {
	grid := core.Grid{Width: 400, Height: 240, BlockSize: 20}
	r := term.NewRenderer(grid)
	s := newSimScreen(t, 24, 15)

	r.DrawGameOver(s, 30)

	assertScreenContains(t, s, "GAME OVER")
	assertScreenContains(t, s, "Final Score: 30")
	assertScreenContains(t, s, "Press C to Play Again")
	assertScreenContains(t, s, "Press Q to Quit")
}
