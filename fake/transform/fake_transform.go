package transform

import (
	"github.com/adammck/crawler/math3d"
)

// FakeTransform is an in-memory crawler.Transform which counts writes.
type FakeTransform struct {
	position math3d.Vector3
	rotation math3d.Quaternion

	Writes int
}

func New(position math3d.Vector3, rotation math3d.Quaternion) *FakeTransform {
	return &FakeTransform{
		position: position,
		rotation: rotation,
	}
}

func (t *FakeTransform) Position() math3d.Vector3 {
	return t.position
}

func (t *FakeTransform) SetPosition(v math3d.Vector3) {
	t.Writes += 1
	t.position = v
}

func (t *FakeTransform) LocalRotation() math3d.Quaternion {
	return t.rotation
}

func (t *FakeTransform) SetLocalRotation(q math3d.Quaternion) {
	t.Writes += 1
	t.rotation = q
}
