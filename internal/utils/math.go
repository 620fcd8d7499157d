// internal/utils/math.go
package utils

import "math"

// Vec is a 2D world-space vector.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// DistSq returns the squared distance, for comparisons that avoid the sqrt.
func (v Vec) DistSq(o Vec) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

// Normalized returns a unit vector in the same direction, or the zero vector
// for a zero-length input.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
