package config

import (
	"math"

	"shooter/internal/geom"
)

// PlayAreaRatio is the play-area side as a fraction of the smaller screen
// dimension.
const PlayAreaRatio = 0.6

// Arena holds the screen size and the square play-area derived from it.
// It is computed once at startup and passed by value.
type Arena struct {
	ScreenW, ScreenH float64
	PlayArea         geom.Rect
}

func NewArena(screenW, screenH int) Arena {
	w, h := float64(screenW), float64(screenH)
	side := math.Min(w, h) * PlayAreaRatio
	return Arena{
		ScreenW: w,
		ScreenH: h,
		PlayArea: geom.Rect{
			X: (w - side) / 2,
			Y: (h - side) / 2,
			W: side,
			H: side,
		},
	}
}

// ScreenCenter is the integer screen midpoint, matching how entities are
// placed at startup.
func (a Arena) ScreenCenter() (int, int) {
	return int(a.ScreenW) / 2, int(a.ScreenH) / 2
}
