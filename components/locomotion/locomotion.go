package locomotion

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "locomotion",
})

// Integrator walks the creature forwards at a constant speed while the path is
// clear.
type Integrator struct {
	speed float64
}

func New(speed float64) *Integrator {
	return &Integrator{
		speed: speed,
	}
}

func (i *Integrator) Boot() error {
	return nil
}

func (i *Integrator) Tick(dt float64, state *crawler.State) error {
	Advance(&state.Pose, state.Avoidance.CanWalkStraight, i.speed, dt)
	log.Debugf("pos=%s", state.Pose)
	return nil
}

// Advance moves the pose along its forward direction by speed*dt. It does
// nothing unless canWalk is true.
func Advance(pose *math3d.Pose, canWalk bool, speed, dt float64) {
	if !canWalk {
		return
	}

	step := pose.Forward().MultiplyByScalar(speed * dt)
	pose.Position = *pose.Position.Add(step)
}
