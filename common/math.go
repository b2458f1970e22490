package common

import "math"

// Up is the world up axis. X runs along the route, Z is lateral.
var Up = Vec3{Y: 1}

type Vec2 struct {
	X float64
	Y float64
}

// Clamped returns v with both axes clamped to [-1, 1].
func (v Vec2) Clamped() Vec2 {
	return Vec2{X: Clamp(v.X, -1, 1), Y: Clamp(v.Y, -1, 1)}
}

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the euclidean distance between two points.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t), Z: Lerp(a.Z, b.Z, t)}
}

func Midpoint(a, b Vec3) Vec3 {
	return LerpVec3(a, b, 0.5)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QuadraticBezier evaluates the curve (p0, p1, p2) at t using de Casteljau.
func QuadraticBezier(p0, p1, p2 Vec3, t float64) Vec3 {
	a := LerpVec3(p0, p1, t)
	b := LerpVec3(p1, p2, t)
	return LerpVec3(a, b, t)
}

// QuadraticBezierTangent returns the derivative of the curve at t.
func QuadraticBezierTangent(p0, p1, p2 Vec3, t float64) Vec3 {
	a := p1.Sub(p0).Scale(2 * (1 - t))
	b := p2.Sub(p1).Scale(2 * t)
	return a.Add(b)
}

// WrapAngle maps radians into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return a + WrapAngle(b-a)*Clamp(t, 0, 1)
}

// Yaw is the heading of dir around the up axis, measured from +X toward +Z.
func Yaw(dir Vec3) float64 {
	return math.Atan2(dir.Z, dir.X)
}

// Pitch is the elevation of dir above the horizontal plane.
func Pitch(dir Vec3) float64 {
	return math.Atan2(dir.Y, math.Hypot(dir.X, dir.Z))
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
