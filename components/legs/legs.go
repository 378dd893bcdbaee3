package legs

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/components/legs/gait"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Legs animates the leg joints and the body lean through the gait, and flips
// the gait phase on schedule.
type Legs struct {
	Gait gait.Gait

	// Swing of each leg joint.
	Ranges [crawler.NumLegs]Range

	// Body orientation for each gait.Lean.
	lean [2]math3d.Quaternion

	// Blend rate of every joint, per second.
	speed float64

	// How long into phase zero the gated moves wait.
	stepCooldown float64
}

func New(gc config.GaitConfig, jc config.JointsConfig) *Legs {
	l := &Legs{
		Gait:         gait.TheGait(gc.SwitchInterval),
		speed:        gc.LegSpeed,
		stepCooldown: gc.StepCooldown,
	}

	l.lean[gait.Forward] = gc.LeanForward.Quaternion()
	l.lean[gait.Backward] = gc.LeanBackward.Quaternion()

	for i, r := range jc.Ranges() {
		l.Ranges[i] = makeRange(r)
	}

	return l
}

func (l *Legs) Boot() error {
	return nil
}

func (l *Legs) Tick(dt float64, state *crawler.State) error {
	l.Animate(&state.Joints, &state.Gait, dt)

	if l.Gait.Advance(&state.Gait, dt) {
		log.Debugf("phase=%d", state.Gait.Phase)
	}

	return nil
}

// Animate blends every joint driven by the current phase towards its target,
// and the body towards the phase's lean. Nothing ever snaps; joints may not
// reach their target before the phase flips.
func (l *Legs) Animate(j *crawler.Joints, gs *crawler.GaitState, dt float64) {
	t := dt * l.speed
	f := l.Gait.Frame(gs.Phase)

	for _, m := range f.Moves {
		if m.Gated && gs.SinceStep <= l.stepCooldown {
			continue
		}

		MoveLeg(&j.Legs[m.Joint], l.Ranges[m.Joint].Target(m.Toward), t)
	}

	j.Body = math3d.Lerp(j.Body, l.lean[f.Lean], t)
	gs.SinceStep += dt
}
