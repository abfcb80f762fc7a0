package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/geom"
)

const bulletGlyph = '●'

// Canvas maps pixel-space drawing onto screen cells.
type Canvas struct {
	screen tcell.Screen
	bg     tcell.Color
}

func (c *Canvas) Clear(col color.Color) {
	c.bg = tcell.FromImageColor(col)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

// Rect paints every covered cell. Outlines are one cell wide whatever the
// thickness.
func (c *Canvas) Rect(r geom.Rect, col color.Color, thickness float64) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(col))
	x0, y0, x1, y1 := c.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			edge := x == x0 || x == x1-1 || y == y0 || y == y1-1
			if thickness == 0 || edge {
				c.set(x, y, ' ', style)
			}
		}
	}
}

func (c *Canvas) Disk(center geom.Vec, _ float64, col color.Color) {
	style := tcell.StyleDefault.
		Foreground(tcell.FromImageColor(col)).
		Background(c.bg)
	x := int(math.Floor(math.Round(center.X) / CellWidth))
	y := int(math.Floor(math.Round(center.Y) / CellHeight))
	c.set(x, y, bulletGlyph, style)
}

// cells returns the half-open cell range covering r.
func (c *Canvas) cells(r geom.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / CellWidth))
	y0 = int(math.Floor(r.Y / CellHeight))
	x1 = int(math.Ceil((r.X + r.W) / CellWidth))
	y1 = int(math.Ceil((r.Y + r.H) / CellHeight))
	return
}

func (c *Canvas) set(x, y int, ch rune, style tcell.Style) {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.screen.SetContent(x, y, ch, nil, style)
}
