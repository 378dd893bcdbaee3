package avoid

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
)

// Sensor casts a single ray straight ahead of the creature.
type Sensor struct {
	Prober crawler.Prober
	Range  float64
	Layers crawler.Layer

	// Origin of the ray, in the creature's local space.
	Offset math3d.Vector3
}

// Sense probes for an obstacle ahead of the pose. On a hit it starts a turn by
// setting MustTurn and clearing CanWalkStraight. A miss leaves the flags
// alone; only the turn controller ends a turn.
func (s *Sensor) Sense(pose math3d.Pose, as *crawler.AvoidanceState) bool {
	origin := pose.Add(math3d.Pose{Position: s.Offset, Orientation: math3d.IdentityQuaternion}).Position

	if !s.Prober.Probe(origin, pose.Forward(), s.Range, s.Layers) {
		return false
	}

	as.MustTurn = true
	as.CanWalkStraight = false
	return true
}
