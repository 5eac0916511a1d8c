package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/grid"
)

// cellWidth is the number of terminal columns one board cell occupies.
const cellWidth = 2

const helpText = "arrows/hjkl move  space reveal  f flag  r new game  q quit"

// View is everything the renderer needs to draw one frame.
type View struct {
	Snapshot  grid.Snapshot
	State     game.State
	Cursor    int
	MinesLeft int
	GameID    string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas  Canvas
	palette *gamedata.PaletteDef
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette *gamedata.PaletteDef) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the board, the status line and the key help.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	size := v.Snapshot.Size
	for i, c := range v.Snapshot.Cells {
		ch, style := r.cellGlyph(c, v.State)
		if i == v.Cursor && !v.State.Over() {
			style = style.Background(r.palette.CursorColor())
		}
		x, y := (i%size)*cellWidth, i/size
		r.canvas.SetContent(x, y, ch, style)
		r.canvas.SetContent(x+1, y, ' ', tcell.StyleDefault)
	}

	r.RenderMessage(statusLine(v), size+1)
	r.RenderMessage(helpText, size+2)

	r.canvas.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}

// cellGlyph picks the rune and style for a cell. Once the game is lost,
// hidden mines are shown and wrong flags are crossed out.
func (r *Renderer) cellGlyph(c grid.Cell, state game.State) (rune, tcell.Style) {
	lost := state == game.StateLost
	switch {
	case c.Status == grid.Flagged && lost && !c.Mine:
		return 'X', tcell.StyleDefault.Foreground(r.palette.MineColor())
	case c.Status == grid.Flagged:
		return 'F', tcell.StyleDefault.Foreground(r.palette.FlagColor()).Bold(true)
	case c.Status == grid.Concealed && lost && c.Mine:
		return '*', tcell.StyleDefault.Foreground(r.palette.MineColor())
	case c.Status == grid.Concealed:
		return '.', tcell.StyleDefault.Foreground(r.palette.ConcealedColor())
	case c.Mine:
		return '*', tcell.StyleDefault.Foreground(r.palette.MineColor()).Bold(true)
	case c.Adjacent == 0:
		return ' ', tcell.StyleDefault
	default:
		return rune('0' + c.Adjacent), tcell.StyleDefault.Foreground(r.palette.NumberColor(c.Adjacent))
	}
}

func statusLine(v View) string {
	id := v.GameID
	if len(id) > 8 {
		id = id[:8]
	}
	msg := ""
	switch v.State {
	case game.StateWon:
		msg = "  You cleared the field!"
	case game.StateLost:
		msg = "  Boom."
	}
	return fmt.Sprintf("%-7s mines left: %d  game %s%s", v.State, v.MinesLeft, id, msg)
}

// CellAt maps a screen position to a board index on a board of the given size.
func CellAt(x, y, size int) (int, bool) {
	col := x / cellWidth
	if x < 0 || y < 0 || col >= size || y >= size {
		return 0, false
	}
	return y*size + col, true
}
