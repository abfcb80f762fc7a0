package gamemode

import (
	"context"
	"time"

	"shooter/internal/config"
	"shooter/internal/input"
)

// Backend is a render/input backend that leaves the loop to the caller.
type Backend interface {
	Poll() input.Frame
	Canvas() Canvas
	Present()
	// Size reports the screen in pixels.
	Size() (w, h int)
}

// ArenaFor lays out the play-area for b's screen.
func ArenaFor(b Backend) config.Arena {
	return config.NewArena(b.Size())
}

// Run drives s at tickRate ticks per second until it stops. Cancelling ctx
// stops the shooter at the next tick.
func Run(ctx context.Context, b Backend, s *Shooter, tickRate int) {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			s.Stop()
		}
		if !s.Step(b.Poll()) {
			return
		}
		s.Render(b.Canvas())
		b.Present()

		select {
		case <-ticker.C:
		case <-ctx.Done():
		}
	}
}
