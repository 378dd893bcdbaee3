package math3d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}

	// Local +Z is the direction a creature faces at the identity orientation.
	ForwardVector3 = Vector3{X: 0, Y: 0, Z: 1}
)

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Add adds two vectors, and returns a pointer to the result.
func (v Vector3) Add(vv Vector3) *Vector3 {
	return &Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns a new vector, the result of subtracting vv from v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return r3.Norm(v.Vec())
}

// Unit returns the vector scaled to length one. The zero vector stays zero.
func (v Vector3) Unit() Vector3 {
	if v.Zero() {
		return ZeroVector3
	}

	return FromVec(r3.Unit(v.Vec()))
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	dx := v.X - vv.X
	dy := v.Y - vv.Y
	dz := v.Z - vv.Z
	return math.Sqrt((dx * dx) + (dy * dy) + (dz * dz))
}

// MultiplyByMatrix44 returns a new Vector3, by multiplying this vector my a 4x4
// matrix.
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	return Vector3{
		(v.X * m.m11) + (v.Y * m.m21) + (v.Z * m.m31) + m.m41,
		(v.X * m.m12) + (v.Y * m.m22) + (v.Z * m.m32) + m.m42,
		(v.X * m.m13) + (v.Y * m.m23) + (v.Z * m.m33) + m.m43,
	}
}

// Vec converts to the gonum representation.
func (v Vector3) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func FromVec(v r3.Vec) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
