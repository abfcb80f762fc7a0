package entity

import (
	"shooter/internal/config"
	"shooter/internal/geom"
)

const (
	EnemyWidth    = 60
	EnemyHeight   = 60
	EnemyLaneY    = 50
	EnemyMinSpeed = 2.0
	EnemyMaxSpeed = 5.0
)

// Enemy bounces horizontally across the full screen width on a fixed lane.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     float64

	screenW float64
}

// NewEnemy draws the start column, speed and direction from rng.
func NewEnemy(arena config.Arena, rng Rand) *Enemy {
	maxX := int(arena.ScreenW) - EnemyWidth
	x := 0
	if maxX > 0 {
		x = rng.Intn(maxX + 1)
	}
	dir := 1.0
	if rng.Intn(2) == 0 {
		dir = -1
	}
	return &Enemy{
		X:         float64(x),
		Y:         EnemyLaneY,
		Width:     EnemyWidth,
		Height:    EnemyHeight,
		Speed:     EnemyMinSpeed + (EnemyMaxSpeed-EnemyMinSpeed)*rng.Float64(),
		Direction: dir,
		screenW:   arena.ScreenW,
	}
}

// Move advances x by speed*direction. Reaching either screen edge flips the
// direction for the next call; x itself is not clamped back.
func (e *Enemy) Move() {
	e.X += e.Speed * e.Direction
	if e.X <= 0 || e.X >= e.screenW-e.Width {
		e.Direction = -e.Direction
	}
}

func (e *Enemy) Bounds() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Muzzle is where enemy bullets spawn: bottom edge, horizontal center.
func (e *Enemy) Muzzle() geom.Vec {
	return geom.Vec{X: e.X + float64(int(e.Width)/2), Y: e.Y + e.Height}
}
