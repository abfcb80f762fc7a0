package entity

import (
	"image/color"

	"shooter/internal/geom"
)

var (
	ColPlayer = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColEnemy  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColBullet = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Canvas is the subset of a drawing surface entities need.
type Canvas interface {
	// Rect fills r when thickness is 0, otherwise strokes its outline.
	Rect(r geom.Rect, c color.Color, thickness float64)
	Disk(center geom.Vec, radius float64, c color.Color)
}

func (p *Player) Draw(c Canvas) {
	c.Rect(p.Bounds(), ColPlayer, 0)
}

func (e *Enemy) Draw(c Canvas) {
	c.Rect(e.Bounds(), ColEnemy, 0)
}

func (b *Bullet) Draw(c Canvas) {
	c.Disk(b.Pos, BulletRadius, ColBullet)
}
