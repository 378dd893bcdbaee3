package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/crawler/utils"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion is a unit quaternion describing an orientation. The zero value is
// not a valid orientation; use IdentityQuaternion.
type Quaternion quat.Number

var (
	IdentityQuaternion = Quaternion{Real: 1}

	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// MakeQuaternion converts Euler angles into a quaternion. Bank is applied
// first, then pitch, then heading.
func MakeQuaternion(ea EulerAngles) Quaternion {
	h := quat.Number(r3.NewRotation(ea.Heading, axisY))
	p := quat.Number(r3.NewRotation(ea.Pitch, axisX))
	b := quat.Number(r3.NewRotation(ea.Bank, axisZ))
	return Quaternion(quat.Mul(quat.Mul(h, p), b))
}

func (q Quaternion) String() string {
	return fmt.Sprintf("&Quat{w=%+.4f x=%+.4f y=%+.4f z=%+.4f}", q.Real, q.Imag, q.Jmag, q.Kmag)
}

// Multiply composes two rotations. The result applies qq first, then q.
func (q Quaternion) Multiply(qq Quaternion) Quaternion {
	return Quaternion(quat.Mul(quat.Number(q), quat.Number(qq)))
}

// Rotate returns v rotated by the orientation.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return FromVec(r3.Rotation(q).Rotate(v.Vec()))
}

// Forward returns the unit vector which the orientation is facing.
func (q Quaternion) Forward() Vector3 {
	return q.Rotate(ForwardVector3)
}

// Heading returns the angle (in degrees) of the forward vector around the Y
// axis, measured from +Z towards +X.
func (q Quaternion) Heading() float64 {
	f := q.Forward()
	return utils.Deg(math.Atan2(f.X, f.Z))
}

func (q Quaternion) Dot(qq Quaternion) float64 {
	return q.Real*qq.Real + q.Imag*qq.Imag + q.Jmag*qq.Jmag + q.Kmag*qq.Kmag
}

// Normalize returns the quaternion scaled to unit length.
func (q Quaternion) Normalize() Quaternion {
	n := quat.Abs(quat.Number(q))
	if n == 0 {
		return IdentityQuaternion
	}

	return Quaternion(quat.Scale(1/n, quat.Number(q)))
}

// Angle returns the smallest angle (in radians) which rotates a onto b.
func Angle(a, b Quaternion) float64 {
	d := math.Min(1, math.Abs(a.Dot(b)))
	return 2 * math.Acos(d)
}

// Lerp blends from a towards b by the fraction t, taking the short way around,
// and normalizes the result. t is clamped to [0, 1], so the result never passes
// b.
func Lerp(a, b Quaternion, t float64) Quaternion {
	t = utils.Clamp01(t)
	if a.Dot(b) < 0 {
		b = Quaternion(quat.Scale(-1, quat.Number(b)))
	}

	d := quat.Sub(quat.Number(b), quat.Number(a))
	return Quaternion(quat.Add(quat.Number(a), quat.Scale(t, d))).Normalize()
}

// EulerAngles decomposes the orientation into heading, pitch and bank, such
// that MakeQuaternion gives it back. Pitch is in [-90°, +90°].
func (q Quaternion) EulerAngles() EulerAngles {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	sp := 2 * (w*x - y*z)
	sp = math.Max(-1, math.Min(1, sp))

	return EulerAngles{
		Heading: math.Atan2(2*(x*z+w*y), 1-2*(x*x+y*y)),
		Pitch:   math.Asin(sp),
		Bank:    math.Atan2(2*(x*y+w*z), 1-2*(x*x+z*z)),
	}
}
