package gamemode

import (
	"image/color"

	"shooter/internal/entity"
)

const (
	// EnemyFireChance is the per-tick probability that the enemy fires. It is
	// tied to the tick rate, not to wall time.
	EnemyFireChance = 0.02
	BorderThickness = 2
	DefaultTickRate = 60
)

var (
	ColBg     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColBorder = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColPlayer = entity.ColPlayer
	ColEnemy  = entity.ColEnemy
	ColBullet = entity.ColBullet
)
