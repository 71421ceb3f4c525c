package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// charsPerCell is the number of terminal columns drawn for one board cell.
// Terminal glyphs are roughly twice as tall as they are wide.
const charsPerCell = 2

// Canvas rasterizes board draw operations onto a terminal cell buffer.
// One board cell becomes charsPerCell columns and one row.
type Canvas struct {
	board  snake.Board
	screen *core.Screen
}

// NewCanvas creates a canvas sized for the board.
func NewCanvas(b snake.Board) *Canvas {
	w := core.CeilDiv(b.Width*charsPerCell, b.CellSize)
	h := core.CeilDiv(b.Height, b.CellSize)
	s := core.NewScreen(w, h)
	s.SetBackground(snake.ColorBackground)
	return &Canvas{board: b, screen: s}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.screen.Width()
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.screen.Height()
}

// Draw clears the canvas and applies ops in order. Anything outside the
// board is clipped.
func (c *Canvas) Draw(ops []snake.DrawOp) *core.Screen {
	c.screen.Clear()
	for _, op := range ops {
		switch op.Kind {
		case snake.OpFillRect:
			r := c.cellRect(op.Rect)
			if !r.Intersects(c.bounds()) {
				continue
			}
			c.screen.FillRect(r, op.Color)
		case snake.OpText:
			x := core.FloorDiv(op.Rect.X*charsPerCell, c.board.CellSize)
			// Text ops carry a baseline; use the middle of the glyph.
			y := core.FloorDiv(op.Rect.Y-op.Font.Size/2, c.board.CellSize)
			c.screen.DrawText(x, y, op.Text, op.Color)
		case snake.OpTextCentered:
			cx, cy := c.cellRect(op.Rect).Center()
			n := utf8.RuneCountInString(op.Text)
			c.screen.DrawText(cx-n/2, cy, op.Text, op.Color)
		}
	}
	return c.screen
}

// bounds returns the canvas area in terminal cells.
func (c *Canvas) bounds() core.Rect {
	return core.NewRect(0, 0, c.screen.Width(), c.screen.Height())
}

// cellRect converts a pixel rectangle to the terminal cells it touches.
func (c *Canvas) cellRect(r core.Rect) core.Rect {
	cs := c.board.CellSize
	x0 := core.FloorDiv(r.X*charsPerCell, cs)
	x1 := core.CeilDiv(r.Right()*charsPerCell, cs)
	y0 := core.FloorDiv(r.Y, cs)
	y1 := core.CeilDiv(r.Bottom(), cs)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
