package geom

import "math"

// Vec is a point or displacement in screen pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// ContainsOpen reports whether p lies strictly inside r. Points on an edge
// are outside.
func (r Rect) ContainsOpen(p Vec) bool {
	return r.X < p.X && p.X < r.X+r.W &&
		r.Y < p.Y && p.Y < r.Y+r.H
}

// Heading returns the vector of length speed pointing from `from` to `to`.
// Coincident points yield a heading along +X.
func Heading(from, to Vec, speed float64) Vec {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	return Vec{math.Cos(angle) * speed, math.Sin(angle) * speed}
}
