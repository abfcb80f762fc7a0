package gamemode

import (
	"go.uber.org/zap"

	"shooter/internal/entity"
)

// Listener observes bullet lifecycle and shutdown. Implementations run on
// the simulation goroutine and must not block.
type Listener interface {
	BulletFired(b *entity.Bullet)
	// BulletHit is called when b is consumed by the opposing entity.
	BulletHit(b *entity.Bullet)
	Stopped(stats Stats)
}

// NopListener can be embedded to implement only part of Listener.
type NopListener struct{}

func (NopListener) BulletFired(*entity.Bullet) {}
func (NopListener) BulletHit(*entity.Bullet)   {}
func (NopListener) Stopped(Stats)              {}

type logListener struct {
	log *zap.Logger
}

func NewLogListener(log *zap.Logger) Listener {
	return &logListener{log: log}
}

func (l *logListener) BulletFired(b *entity.Bullet) {
	l.log.Debug("bullet fired",
		zap.Stringer("side", b.Side),
		zap.Float64("x", b.Pos.X),
		zap.Float64("y", b.Pos.Y),
		zap.Float64("dx", b.Vel.X),
		zap.Float64("dy", b.Vel.Y),
	)
}

func (l *logListener) BulletHit(b *entity.Bullet) {
	l.log.Debug("bullet hit",
		zap.Stringer("side", b.Side),
		zap.Float64("x", b.Pos.X),
		zap.Float64("y", b.Pos.Y),
	)
}

func (l *logListener) Stopped(s Stats) {
	l.log.Info("simulation stopped",
		zap.Uint64("ticks", s.Ticks),
		zap.Int("player_fired", s.PlayerFired),
		zap.Int("player_hits", s.PlayerHits),
		zap.Int("enemy_fired", s.EnemyFired),
		zap.Int("enemy_hits", s.EnemyHits),
	)
}
