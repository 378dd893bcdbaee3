package math3d

import (
	"fmt"
)

// Pose is a position and orientation. When used for a creature, the position
// is in world space and the orientation is its local rotation.
type Pose struct {
	Position    Vector3
	Orientation Quaternion
}

// MakePose returns a pose at the given position, facing the given heading (in
// degrees).
func MakePose(v Vector3, heading float64) Pose {
	return Pose{
		Position:    v,
		Orientation: MakeSingularEulerAngle(RotationHeading, heading).Quaternion(),
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, h=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Orientation.Heading())
}

// Forward returns the direction which the pose is facing, in world space.
func (p Pose) Forward() Vector3 {
	return p.Orientation.Forward()
}

// Add treats pp as an offset in the local space of p, and returns it in the
// space which p is in.
func (p Pose) Add(pp Pose) Pose {
	m := MakeMatrix44(ZeroVector3, p.Orientation)
	return Pose{
		Position:    *p.Position.Add(pp.Position.MultiplyByMatrix44(*m)),
		Orientation: p.Orientation.Multiply(pp.Orientation),
	}
}

// World returns a matrix to transform a vector in the pose's local space into
// the parent space.
func (p Pose) World() Matrix44 {
	return *MakeMatrix44(p.Position, p.Orientation)
}

// Local returns a matrix to transform a vector in the parent space into the
// pose's local space.
func (p Pose) Local() Matrix44 {
	return p.World().Inverse()
}
