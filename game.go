package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shooter/internal/gamemode"
	"shooter/internal/geom"
	"shooter/internal/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
}

// Game adapts the shooter to ebiten. Ebiten owns the loop: Update runs the
// simulation at the configured TPS and Draw renders the latest state.
type Game struct {
	shooter *gamemode.Shooter
	canvas  imageCanvas
	keys    []ebiten.Key
	width   int
	height  int
	debug   bool
}

func NewGame(s *gamemode.Shooter, width, height int, debug bool) *Game {
	return &Game{
		shooter: s,
		width:   width,
		height:  height,
		debug:   debug,
	}
}

// Update: Logic (TPS)
func (g *Game) Update() error {
	if !g.shooter.Step(g.poll()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) poll() input.Frame {
	var f input.Frame

	if ebiten.IsWindowBeingClosed() {
		f.Events = append(f.Events, input.Quit())
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			f.Events = append(f.Events, input.KeyPress(key))
		}
	}

	f.Held = input.Held{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	return f
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.shooter.Render(&g.canvas)

	if g.debug {
		stats := g.shooter.Stats()
		msg := fmt.Sprintf("TPS: %0.1f\nTick: %d\nBullets: %d / %d",
			ebiten.ActualTPS(), stats.Ticks, len(g.shooter.PlayerBullets), len(g.shooter.EnemyBullets))
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout: the logical screen is the display size the arena was built from.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// imageCanvas draws onto the ebiten frame with vector primitives.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c *imageCanvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

func (c *imageCanvas) Rect(r geom.Rect, col color.Color, thickness float64) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if thickness == 0 {
		vector.DrawFilledRect(c.dst, x, y, w, h, col, false)
		return
	}
	vector.StrokeRect(c.dst, x, y, w, h, float32(thickness), col, false)
}

func (c *imageCanvas) Disk(center geom.Vec, radius float64, col color.Color) {
	cx, cy := float32(math.Round(center.X)), float32(math.Round(center.Y))
	vector.DrawFilledCircle(c.dst, cx, cy, float32(radius), col, true)
}
