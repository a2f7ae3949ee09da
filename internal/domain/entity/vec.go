package entity

import "math"

// Vec3 is a position, velocity or direction in world units.
// +X is right, +Y is up, -Z is away from the camera.
type Vec3 struct {
	X, Y, Z float64
}

// OffscreenPosition is where inactive projectiles are parked.
var OffscreenPosition = Vec3{X: 10000, Y: 10000, Z: 10000}

// ExplosionParking is where finished explosions are parked.
var ExplosionParking = Vec3{X: 0, Y: -10000, Z: 0}

// minDirectionLength is the shortest vector Normalize accepts
const minDirectionLength = 0.001

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the euclidean length of v
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the distance between v and o
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector of v.
// ok is false when v is too short to have a direction.
func (v Vec3) Normalize() (unit Vec3, ok bool) {
	l := v.Len()
	if l <= minDirectionLength || math.IsNaN(l) {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// IsNaN reports whether any component is NaN
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Transform is a scale, euler rotation (radians, applied X then Y then Z)
// and translation.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform creates an unrotated transform with uniform scale
func NewTransform(pos Vec3, scale float64) Transform {
	return Transform{
		Position: pos,
		Scale:    Vec3{scale, scale, scale},
	}
}

// Apply maps a local point to world space
func (t Transform) Apply(local Vec3) Vec3 {
	p := Vec3{local.X * t.Scale.X, local.Y * t.Scale.Y, local.Z * t.Scale.Z}

	if t.Rotation.X != 0 {
		s, c := math.Sincos(t.Rotation.X)
		p = Vec3{p.X, p.Y*c - p.Z*s, p.Y*s + p.Z*c}
	}
	if t.Rotation.Y != 0 {
		s, c := math.Sincos(t.Rotation.Y)
		p = Vec3{p.X*c + p.Z*s, p.Y, -p.X*s + p.Z*c}
	}
	if t.Rotation.Z != 0 {
		s, c := math.Sincos(t.Rotation.Z)
		p = Vec3{p.X*c - p.Y*s, p.X*s + p.Y*c, p.Z}
	}

	return p.Add(t.Position)
}

// Bounds returns the world-space AABB enclosing the local box [min, max]
// after transformation. The result depends only on the inputs.
func (t Transform) Bounds(min, max Vec3) (wmin, wmax Vec3) {
	first := true
	for i := 0; i < 8; i++ {
		corner := Vec3{min.X, min.Y, min.Z}
		if i&1 != 0 {
			corner.X = max.X
		}
		if i&2 != 0 {
			corner.Y = max.Y
		}
		if i&4 != 0 {
			corner.Z = max.Z
		}
		w := t.Apply(corner)
		if first {
			wmin, wmax = w, w
			first = false
			continue
		}
		wmin = Vec3{math.Min(wmin.X, w.X), math.Min(wmin.Y, w.Y), math.Min(wmin.Z, w.Z)}
		wmax = Vec3{math.Max(wmax.X, w.X), math.Max(wmax.Y, w.Y), math.Max(wmax.Z, w.Z)}
	}
	return wmin, wmax
}
