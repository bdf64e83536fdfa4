// Package math provides the small vector and matrix types used by the mesh
// generator, its finalize step and the preview renderer.
package math

import "math"

// Vec2 is a 2D vector. The mesher stores raw (u, v) samples in it.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Cross returns the z component of the 3D cross product of v and other.
// Its sign gives the winding of a 2D triangle.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Lerp interpolates between a and b. The result is exactly a at t=0 and
// exactly b at t=1, so grid edges land on the domain bounds.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
