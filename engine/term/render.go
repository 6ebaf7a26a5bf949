package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snakego/core"
	"snakego/game"
)

var (
	defStyle    = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fieldStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// foodRune marks the food cell on the board.
const foodRune = '#'

// Renderer draws game screens onto a tcell screen. One terminal cell
// is one board cell; the board sits inside a one-cell border with the
// score line below it.
type Renderer struct {
	grid core.Grid
}

// NewRenderer returns a renderer for a board of the given geometry.
func NewRenderer(grid core.Grid) *Renderer {
	return &Renderer{grid: grid}
}

// DrawBoard renders one play snapshot.
func (r *Renderer) DrawBoard(s tcell.Screen, snap game.Snapshot) {
	s.Clear()
	r.drawFrame(s)

	fx, fy := r.cellPos(snap.Food)
	s.SetContent(fx, fy, foodRune, nil, foodStyle)

	for i, c := range snap.Snake {
		x, y := r.cellPos(c)
		if i == len(snap.Snake)-1 {
			s.SetContent(x, y, tcell.RuneDiamond, nil, snakeStyle)
		} else {
			s.SetContent(x, y, tcell.RuneBlock, nil, snakeStyle)
		}
	}

	drawText(s, 0, r.grid.Rows()+2, fmt.Sprintf("Score: %d", snap.Score), scoreStyle)
	s.Show()
}

// DrawIntro renders the title screen.
func (r *Renderer) DrawIntro(s tcell.Screen) {
	s.Clear()
	r.drawFrame(s)

	y := r.startRow(8)
	r.centerText(s, y, "SNAKE", titleStyle)
	r.centerText(s, y+2, "Use Arrow Keys to Move", defStyle)
	r.centerText(s, y+3, "Eat the Red Food to Grow", defStyle)
	r.centerText(s, y+4, "Avoid Walls and Yourself!", defStyle)
	r.centerText(s, y+6, "Press SPACE to Start", scoreStyle)
	r.centerText(s, y+7, "Press Q to Quit", scoreStyle)
	s.Show()
}

// DrawGameOver renders the final screen for a lost session.
func (r *Renderer) DrawGameOver(s tcell.Screen, score int) {
	s.Clear()
	r.drawFrame(s)

	y := r.startRow(6)
	r.centerText(s, y, "GAME OVER", overStyle)
	r.centerText(s, y+2, fmt.Sprintf("Final Score: %d", score), scoreStyle)
	r.centerText(s, y+4, "Press C to Play Again", defStyle)
	r.centerText(s, y+5, "Press Q to Quit", defStyle)
	s.Show()
}

// cellPos maps a board cell to its terminal position inside the
// border.
func (r *Renderer) cellPos(c core.Cell) (x, y int) {
	return 1 + c.X/r.grid.BlockSize, 1 + c.Y/r.grid.BlockSize
}

// drawFrame draws the board border with a dotted empty field inside.
func (r *Renderer) drawFrame(s tcell.Screen) {
	x2, y2 := r.grid.Columns()+1, r.grid.Rows()+1

	for y := 1; y < y2; y++ {
		for x := 1; x < x2; x++ {
			s.SetContent(x, y, tcell.RuneBullet, nil, fieldStyle)
		}
	}
	for x := 0; x <= x2; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, y2, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < y2; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(x2, y, tcell.RuneVLine, nil, borderStyle)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(x2, 0, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(0, y2, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, borderStyle)
}

// startRow picks the first row of a centered block of n text lines,
// keeping it inside the frame on small boards.
func (r *Renderer) startRow(n int) int {
	y := (r.grid.Rows() + 2 - n) / 2
	if y < 1 {
		y = 1
	}
	return y
}

func (r *Renderer) centerText(s tcell.Screen, y int, text string, style tcell.Style) {
	x := (r.grid.Columns() + 2 - len(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, c := range []rune(text) {
		s.SetContent(x+i, y, c, nil, style)
	}
}
