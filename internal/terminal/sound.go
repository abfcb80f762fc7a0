package terminal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"shooter/internal/entity"
	"shooter/internal/gamemode"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones on bullet events through the system speaker.
type Sound struct {
	gamemode.NopListener
}

// NewSound opens the speaker. Callers treat an error as "no sound".
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{}, nil
}

func (s *Sound) BulletFired(b *entity.Bullet) {
	if b.Side == entity.SidePlayer {
		tone(880, 40*time.Millisecond)
	} else {
		tone(440, 40*time.Millisecond)
	}
}

func (s *Sound) BulletHit(*entity.Bullet) {
	tone(220, 60*time.Millisecond)
}

func (s *Sound) Close() {
	speaker.Close()
}

func tone(freq int, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
