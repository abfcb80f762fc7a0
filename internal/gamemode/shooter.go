package gamemode

import (
	"shooter/internal/config"
	"shooter/internal/entity"
	"shooter/internal/geom"
	"shooter/internal/input"
)

type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Stats counts bullet traffic over a session.
type Stats struct {
	Ticks       uint64
	PlayerFired int
	PlayerHits  int
	EnemyFired  int
	EnemyHits   int
}

// Shooter owns every entity and advances them one tick at a time. It is not
// safe for concurrent use.
type Shooter struct {
	Arena  config.Arena
	Player *entity.Player
	Enemy  *entity.Enemy

	PlayerBullets []*entity.Bullet
	EnemyBullets  []*entity.Bullet

	state     State
	running   bool
	rng       entity.Rand
	listeners []Listener
	stats     Stats
}

func New(arena config.Arena, rng entity.Rand, listeners ...Listener) *Shooter {
	return &Shooter{
		Arena:     arena,
		Player:    entity.NewPlayer(arena),
		Enemy:     entity.NewEnemy(arena, rng),
		state:     StateRunning,
		running:   true,
		rng:       rng,
		listeners: listeners,
	}
}

func (s *Shooter) State() State { return s.state }

func (s *Shooter) Stats() Stats { return s.stats }

// Stop clears the running flag. The shooter halts at the start of the next
// Step.
func (s *Shooter) Stop() { s.running = false }

// Step runs one tick: events, player, enemy, enemy fire, bullets. It reports
// false once the shooter has stopped, in which case nothing was advanced.
func (s *Shooter) Step(f input.Frame) bool {
	if s.state == StateStopped {
		return false
	}
	if !s.running {
		s.halt()
		return false
	}

	for _, ev := range f.Events {
		if ev.Kind == input.EventQuit || ev.Key == input.KeyEscape {
			s.halt()
			return false
		}
		if ev.Key == input.KeySpace {
			s.firePlayer()
		}
	}

	s.Player.Move(f.Held.Axis())
	s.Enemy.Move()

	if s.rng.Float64() < EnemyFireChance {
		s.fireEnemy()
	}

	s.PlayerBullets = s.advance(s.PlayerBullets, s.Enemy.Bounds(), func(b *entity.Bullet) bool {
		return b.Pos.Y < 0
	})
	s.EnemyBullets = s.advance(s.EnemyBullets, s.Player.Bounds(), func(b *entity.Bullet) bool {
		return b.Pos.Y > s.Arena.ScreenH
	})

	s.stats.Ticks++
	return true
}

// The player always fires straight up from its muzzle.
func (s *Shooter) firePlayer() {
	m := s.Player.Muzzle()
	b := entity.NewBullet(entity.SidePlayer, m, geom.Vec{X: m.X, Y: 0})
	s.PlayerBullets = append(s.PlayerBullets, b)
	s.stats.PlayerFired++
	s.notifyFired(b)
}

func (s *Shooter) fireEnemy() {
	b := entity.NewBullet(entity.SideEnemy, s.Enemy.Muzzle(), s.Player.Center())
	s.EnemyBullets = append(s.EnemyBullets, b)
	s.stats.EnemyFired++
	s.notifyFired(b)
}

// advance moves every bullet and returns the survivors. The input slice is
// only read; survivors go to a fresh slice.
func (s *Shooter) advance(bullets []*entity.Bullet, target geom.Rect, offscreen func(*entity.Bullet) bool) []*entity.Bullet {
	kept := make([]*entity.Bullet, 0, len(bullets))
	for _, b := range bullets {
		b.Move()
		switch {
		case offscreen(b):
		case target.ContainsOpen(b.Pos):
			s.hit(b)
		default:
			kept = append(kept, b)
		}
	}
	return kept
}

func (s *Shooter) hit(b *entity.Bullet) {
	if b.Side == entity.SidePlayer {
		s.stats.PlayerHits++
	} else {
		s.stats.EnemyHits++
	}
	for _, l := range s.listeners {
		l.BulletHit(b)
	}
}

func (s *Shooter) notifyFired(b *entity.Bullet) {
	for _, l := range s.listeners {
		l.BulletFired(b)
	}
}

func (s *Shooter) halt() {
	s.running = false
	s.state = StateStopped
	for _, l := range s.listeners {
		l.Stopped(s.stats)
	}
}

// Render draws the frame: border, player, enemy, then player bullets and
// enemy bullets on top.
func (s *Shooter) Render(c Canvas) {
	c.Clear(ColBg)
	c.Rect(s.Arena.PlayArea, ColBorder, BorderThickness)
	s.Player.Draw(c)
	s.Enemy.Draw(c)
	for _, b := range s.PlayerBullets {
		b.Draw(c)
	}
	for _, b := range s.EnemyBullets {
		b.Draw(c)
	}
}
