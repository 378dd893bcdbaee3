package avoid

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
)

// Turn is the turn controller. While a turn is in progress it swings the
// creature towards a fixed heading, and once ResetDelay has passed it asks the
// sensor (every tick) whether the way ahead is clear.
type Turn struct {
	Sensor *Sensor

	Target     math3d.Quaternion
	Speed      float64
	ResetDelay float64
}

// Step advances an in-progress turn by dt. It returns true on the tick that
// the turn ends. It does nothing if no turn is in progress.
func (t *Turn) Step(pose *math3d.Pose, as *crawler.AvoidanceState, dt float64) bool {
	if !as.MustTurn {
		return false
	}

	pose.Orientation = math3d.Lerp(pose.Orientation, t.Target, dt*t.Speed)

	done := false
	if as.TurnElapsed > t.ResetDelay {
		if !t.Sensor.Sense(*pose, as) {
			as.MustTurn = false
			as.CanWalkStraight = true
			done = true
		}
	}

	as.TurnElapsed += dt
	return done
}
