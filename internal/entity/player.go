package entity

import (
	"shooter/internal/config"
	"shooter/internal/geom"
)

const (
	PlayerWidth  = 50
	PlayerHeight = 50
	PlayerSpeed  = 5
)

// Player is the input-controlled rectangle. It only ever moves to positions
// strictly inside the play-area.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	area geom.Rect
}

// NewPlayer places the player at the screen center.
func NewPlayer(arena config.Arena) *Player {
	cx, cy := arena.ScreenCenter()
	return &Player{
		X:      float64(cx - PlayerWidth/2),
		Y:      float64(cy - PlayerHeight/2),
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
		area:   arena.PlayArea,
	}
}

// Move shifts the player by speed along each axis sign in {-1,0,1}. The move
// is applied only when both axes keep the player strictly inside the
// play-area; otherwise nothing changes.
func (p *Player) Move(dx, dy int) {
	nx := p.X + float64(dx)*p.Speed
	ny := p.Y + float64(dy)*p.Speed

	a := p.area
	if a.X < nx && nx < a.X+a.W-p.Width &&
		a.Y < ny && ny < a.Y+a.H-p.Height {
		p.X = nx
		p.Y = ny
	}
}

func (p *Player) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Muzzle is where player bullets spawn: top edge, horizontal center.
func (p *Player) Muzzle() geom.Vec {
	return geom.Vec{X: p.X + float64(int(p.Width)/2), Y: p.Y}
}

// Center is the point enemy bullets aim at.
func (p *Player) Center() geom.Vec {
	return geom.Vec{X: p.X + float64(int(p.Width)/2), Y: p.Y + float64(int(p.Height)/2)}
}
