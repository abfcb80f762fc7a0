package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"shooter/internal/entity"
	"shooter/internal/gamemode"
	"shooter/internal/synth"
)

const blipVolume = 0.3

// blipSound plays pre-rendered square-wave blips on bullet events.
type blipSound struct {
	gamemode.NopListener

	ctx       *audio.Context
	fire      []byte
	enemyFire []byte
	hit       []byte
}

// newBlipSound creates the process-wide audio context; call it once.
func newBlipSound() *blipSound {
	return &blipSound{
		ctx:       audio.NewContext(synth.SampleRate),
		fire:      synth.Square(880, 40*time.Millisecond, blipVolume),
		enemyFire: synth.Square(440, 40*time.Millisecond, blipVolume),
		hit:       synth.Square(220, 60*time.Millisecond, blipVolume),
	}
}

func (s *blipSound) BulletFired(b *entity.Bullet) {
	if b.Side == entity.SidePlayer {
		s.play(s.fire)
	} else {
		s.play(s.enemyFire)
	}
}

func (s *blipSound) BulletHit(*entity.Bullet) {
	s.play(s.hit)
}

func (s *blipSound) play(pcm []byte) {
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
