package entity

import "shooter/internal/geom"

const (
	BulletSpeed  = 5
	BulletRadius = 5
)

// Side identifies who fired a bullet.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Bullet travels in a straight line with a velocity fixed at creation.
type Bullet struct {
	Pos  geom.Vec
	Vel  geom.Vec
	Side Side
}

// NewBullet aims a bullet from origin at target with magnitude BulletSpeed.
func NewBullet(side Side, origin, target geom.Vec) *Bullet {
	return &Bullet{
		Pos:  origin,
		Vel:  geom.Heading(origin, target, BulletSpeed),
		Side: side,
	}
}

func (b *Bullet) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}
