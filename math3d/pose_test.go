package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	type eg struct {
		recv Pose
		arg  Pose
		out  Pose
	}

	examples := []eg{
		{
			recv: MakePose(Vector3{+0, +0, +0}, 0),
			arg:  MakePose(Vector3{+0, +0, +0}, 0),
			out:  MakePose(Vector3{+0, +0, +0}, 0),
		},
		{
			recv: MakePose(Vector3{+0, +0, +0}, 90),
			arg:  MakePose(Vector3{+1, +0, +0}, 0),
			out:  MakePose(Vector3{+0, +0, -1}, 90),
		},
		{
			recv: MakePose(Vector3{+0, +0, +0}, 180),
			arg:  MakePose(Vector3{+1, +0, +0}, 0),
			out:  MakePose(Vector3{-1, +0, +0}, 180),
		},
		{
			recv: MakePose(Vector3{+0, +0, +0}, 270),
			arg:  MakePose(Vector3{+1, +0, +0}, 0),
			out:  MakePose(Vector3{+0, +0, +1}, 270),
		},
		{
			recv: MakePose(Vector3{+9, +1, +9}, 90),
			arg:  MakePose(Vector3{+1, +0, +0}, 90),
			out:  MakePose(Vector3{+9, +1, +8}, 180),
		},
	}

	for i, x := range examples {
		act := x.recv.Add(x.arg)
		assert.InDelta(t, x.out.Position.X, act.Position.X, 0.01, "expected example %d:X to be %0.2f, but was %0.2f", i+1, x.out.Position.X, act.Position.X)
		assert.InDelta(t, x.out.Position.Y, act.Position.Y, 0.01, "expected example %d:Y to be %0.2f, but was %0.2f", i+1, x.out.Position.Y, act.Position.Y)
		assert.InDelta(t, x.out.Position.Z, act.Position.Z, 0.01, "expected example %d:Z to be %0.2f, but was %0.2f", i+1, x.out.Position.Z, act.Position.Z)
		assert.InDelta(t, 0, Angle(x.out.Orientation, act.Orientation), 0.0001, "expected example %d orientation to be %s, but was %s", i+1, x.out.Orientation, act.Orientation)
	}
}

func TestForward(t *testing.T) {
	type eg struct {
		heading float64
		out     Vector3
	}

	examples := []eg{
		{0, Vector3{0, 0, 1}},
		{90, Vector3{1, 0, 0}},
		{180, Vector3{0, 0, -1}},
		{-90, Vector3{-1, 0, 0}},
	}

	for i, x := range examples {
		act := MakePose(ZeroVector3, x.heading).Forward()
		assert.InDelta(t, 0, act.Distance(x.out), 1e-9, "example %d: got %s", i+1, act)
	}
}

func TestLocal(t *testing.T) {
	p := MakePose(Vector3{0, 0, 10}, 90)

	// One unit in front of the pose.
	v := Vector3{1, 0, 10}.MultiplyByMatrix44(p.Local())
	assert.InDelta(t, 0, v.Distance(Vector3{0, 0, 1}), 1e-9)
}
