package crawler

import (
	"github.com/adammck/crawler/math3d"
)

// Layer is a bitmask of collision layers. A probe only sees obstacles whose
// layer overlaps the mask.
type Layer uint

const AllLayers Layer = ^Layer(0)

// Prober casts rays against the world. Implementations must not mutate the
// world; the same probe twice in a tick should return the same answer.
type Prober interface {
	Probe(origin, direction math3d.Vector3, maxDistance float64, layers Layer) bool
}

// Transform is read/write access to a host object's position and local
// rotation.
type Transform interface {
	Position() math3d.Vector3
	SetPosition(math3d.Vector3)
	LocalRotation() math3d.Quaternion
	SetLocalRotation(math3d.Quaternion)
}
