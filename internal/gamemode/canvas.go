package gamemode

import (
	"image/color"

	"shooter/internal/entity"
)

// Canvas is the drawing surface a backend hands to Render each frame.
type Canvas interface {
	Clear(c color.Color)
	entity.Canvas
}
