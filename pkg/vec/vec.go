// pkg/vec/vec.go
package vec

import "math"

// Vec3 is a 3D vector. Y is the vertical axis; the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

// Dist returns the distance between two points.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec3) float64 {
	return a.Sub(b).LenSq()
}

// Flat returns v projected onto the ground plane (Y = 0).
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// FromYawPitch builds a unit direction from yaw (around Y) and pitch.
// Yaw 0 looks along -Z, positive pitch looks up.
func FromYawPitch(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}

// FromYaw builds a unit direction on the ground plane from yaw alone.
func FromYaw(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Y: 0, Z: -math.Cos(yaw)}
}

// Yaw returns the yaw angle of a direction on the ground plane.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, -v.Z)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// SegmentDist returns the distance from point p to the segment [a, b].
// Used for elongated (laser) hit tests instead of a point-radius test.
func SegmentDist(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < 1e-12 {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, a.Add(ab.Scale(t)))
}
