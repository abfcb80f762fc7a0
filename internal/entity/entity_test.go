package entity

import (
	"image/color"
	"math"
	"testing"

	"shooter/internal/config"
	"shooter/internal/geom"
)

// scriptedRand replays fixed values so construction is deterministic.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scripted Intn value out of range")
	}
	return v
}

var testArena = config.NewArena(1000, 800) // play-area (260,160) 480x480

func TestNewPlayerCentered(t *testing.T) {
	p := NewPlayer(testArena)
	if p.X != 475 || p.Y != 375 {
		t.Fatalf("player at (%v,%v), want (475,375)", p.X, p.Y)
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		dx, dy       int
		wantX, wantY float64
	}{
		{"still", 475, 375, 0, 0, 475, 375},
		{"right", 475, 375, 1, 0, 480, 375},
		{"up-left", 475, 375, -1, -1, 470, 370},
		{"down", 475, 375, 0, 1, 475, 380},
		// Left bound is 260; landing exactly on it is rejected.
		{"onto left edge", 265, 375, -1, 0, 265, 375},
		{"near left edge", 266, 375, -1, 0, 261, 375},
		// Right bound for x is 260+480-50 = 690.
		{"onto right edge", 685, 375, 1, 0, 685, 375},
		// One axis failing rejects the diagonal as a whole.
		{"diagonal blocked by y", 475, 165, 1, -1, 475, 165},
		{"diagonal blocked by x", 689, 375, 1, 1, 689, 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testArena)
			p.X, p.Y = tt.x, tt.y
			p.Move(tt.dx, tt.dy)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("after Move(%d,%d) at (%v,%v): (%v,%v), want (%v,%v)",
					tt.dx, tt.dy, tt.x, tt.y, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerNeverLeavesPlayArea(t *testing.T) {
	p := NewPlayer(testArena)
	area := testArena.PlayArea
	dirs := [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for i := 0; i < 2000; i++ {
		d := dirs[(i/37)%len(dirs)]
		p.Move(d[0], d[1])
		b := p.Bounds()
		if !(area.X < b.X && b.X+b.W < area.X+area.W && area.Y < b.Y && b.Y+b.H < area.Y+area.H) {
			t.Fatalf("step %d: player %v escaped play-area %v", i, b, area)
		}
	}
}

func TestNewEnemyUsesRand(t *testing.T) {
	rng := &scriptedRand{ints: []int{120, 1}, floats: []float64{0.5}}
	e := NewEnemy(testArena, rng)

	if e.X != 120 || e.Y != EnemyLaneY {
		t.Errorf("enemy at (%v,%v), want (120,%d)", e.X, e.Y, EnemyLaneY)
	}
	if e.Direction != 1 {
		t.Errorf("Direction = %v, want 1", e.Direction)
	}
	if e.Speed != 3.5 {
		t.Errorf("Speed = %v, want 3.5", e.Speed)
	}
}

func TestEnemyMoveStepsBySpeed(t *testing.T) {
	e := NewEnemy(testArena, &scriptedRand{ints: []int{400, 0}, floats: []float64{0}})
	e.Speed = 3

	for i := 0; i < 50; i++ {
		before, dir := e.X, e.Direction
		e.Move()
		if got := e.X - before; got != e.Speed*dir {
			t.Fatalf("move %d changed x by %v, want %v", i, got, e.Speed*dir)
		}
		hitEdge := e.X <= 0 || e.X >= testArena.ScreenW-e.Width
		if flipped := e.Direction != dir; flipped != hitEdge {
			t.Fatalf("move %d: flipped=%v but at edge=%v (x=%v)", i, flipped, hitEdge, e.X)
		}
	}
}

func TestEnemyFlipAppliesNextMove(t *testing.T) {
	e := NewEnemy(testArena, &scriptedRand{ints: []int{0, 0}, floats: []float64{0}})
	e.X, e.Direction, e.Speed = 0, -1, 2

	e.Move()
	if e.Direction != 1 {
		t.Fatalf("Direction = %v, want 1 after hitting left edge", e.Direction)
	}
	if e.X != -2 {
		t.Fatalf("X = %v, want -2 (this move still uses the old direction)", e.X)
	}

	e.Move()
	if e.X != 0 {
		t.Errorf("X = %v after second move, want 0", e.X)
	}
}

func TestEnemyRightEdgeFlip(t *testing.T) {
	e := NewEnemy(testArena, &scriptedRand{ints: []int{0, 1}, floats: []float64{0}})
	e.X, e.Speed = testArena.ScreenW-e.Width-2, 2

	e.Move()
	if e.Direction != -1 {
		t.Fatalf("Direction = %v at x=%v, want -1", e.Direction, e.X)
	}
}

func TestBulletVelocityFixed(t *testing.T) {
	b := NewBullet(SideEnemy, geom.Vec{X: 500, Y: 110}, geom.Vec{X: 300, Y: 600})
	v0 := b.Vel
	if math.Abs(v0.Len()-BulletSpeed) > 1e-9 {
		t.Fatalf("|v| = %v, want %d", v0.Len(), BulletSpeed)
	}
	for i := 0; i < 100; i++ {
		b.Move()
		if b.Vel != v0 {
			t.Fatalf("velocity changed at tick %d: %v -> %v", i, v0, b.Vel)
		}
	}
}

func TestBulletMoveAdvancesByVelocity(t *testing.T) {
	origin := geom.Vec{X: 500, Y: 375}
	b := NewBullet(SidePlayer, origin, geom.Vec{X: 500, Y: 0})

	for i := 0; i < 10; i++ {
		b.Move()
	}
	if math.Abs((origin.Y-b.Pos.Y)-50) > 1e-9 {
		t.Errorf("y moved by %v after 10 ticks, want 50", origin.Y-b.Pos.Y)
	}
	if math.Abs(b.Pos.X-origin.X) > 1e-9 {
		t.Errorf("x drifted to %v", b.Pos.X)
	}
}

func TestMuzzles(t *testing.T) {
	p := NewPlayer(testArena)
	if m := p.Muzzle(); m.X != p.X+25 || m.Y != p.Y {
		t.Errorf("player muzzle = %v", m)
	}
	if c := p.Center(); c.X != p.X+25 || c.Y != p.Y+25 {
		t.Errorf("player center = %v", c)
	}
	e := NewEnemy(testArena, &scriptedRand{ints: []int{10, 1}, floats: []float64{0}})
	if m := e.Muzzle(); m.X != 40 || m.Y != EnemyLaneY+EnemyHeight {
		t.Errorf("enemy muzzle = %v", m)
	}
}

type drawCall struct {
	rect      geom.Rect
	center    geom.Vec
	radius    float64
	col       color.Color
	thickness float64
}

type recordingCanvas struct{ calls []drawCall }

func (c *recordingCanvas) Rect(r geom.Rect, col color.Color, thickness float64) {
	c.calls = append(c.calls, drawCall{rect: r, col: col, thickness: thickness})
}

func (c *recordingCanvas) Disk(center geom.Vec, radius float64, col color.Color) {
	c.calls = append(c.calls, drawCall{center: center, radius: radius, col: col})
}

func TestDraw(t *testing.T) {
	p := NewPlayer(testArena)
	e := NewEnemy(testArena, &scriptedRand{ints: []int{100, 1}, floats: []float64{0.5}})
	b := &Bullet{Pos: geom.Vec{X: 12, Y: 34}}

	c := &recordingCanvas{}
	p.Draw(c)
	e.Draw(c)
	b.Draw(c)

	if len(c.calls) != 3 {
		t.Fatalf("got %d draw calls, want 3", len(c.calls))
	}
	if got := c.calls[0]; got.rect != p.Bounds() || got.col != ColPlayer || got.thickness != 0 {
		t.Errorf("player drawn as %+v", got)
	}
	if got := c.calls[1]; got.rect != e.Bounds() || got.col != ColEnemy || got.thickness != 0 {
		t.Errorf("enemy drawn as %+v", got)
	}
	if got := c.calls[2]; got.center != b.Pos || got.radius != BulletRadius || got.col != ColBullet {
		t.Errorf("bullet drawn as %+v", got)
	}
}
