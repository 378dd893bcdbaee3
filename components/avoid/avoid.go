package avoid

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "avoid",
})

// Avoider runs the sensor and the turn controller once per tick.
type Avoider struct {
	Sensor *Sensor
	Turn   *Turn

	resetTimer bool
	spawned    bool
}

func New(prober crawler.Prober, sc config.SensorConfig, tc config.TurnConfig) *Avoider {
	s := &Sensor{
		Prober: prober,
		Range:  sc.Range,
		Layers: crawler.Layer(sc.Layers),
		Offset: sc.Offset.Vector3(),
	}

	return &Avoider{
		Sensor: s,
		Turn: &Turn{
			Sensor:     s,
			Target:     math3d.MakeSingularEulerAngle(math3d.RotationHeading, tc.Heading).Quaternion(),
			Speed:      tc.Speed,
			ResetDelay: tc.ResetDelay,
		},
		resetTimer: tc.ResetTimer,
	}
}

func (a *Avoider) Boot() error {
	return nil
}

// Spawn prepares the avoidance state of a new creature. With the timer reset
// disabled, the first re-check comes immediately, and later turns inherit
// whatever the timer has accumulated. The first Tick calls it if nobody has.
func (a *Avoider) Spawn(state *crawler.State) {
	if !a.resetTimer {
		state.Avoidance.TurnElapsed = a.Turn.ResetDelay
	}

	a.spawned = true
}

func (a *Avoider) Tick(dt float64, state *crawler.State) error {
	if !a.spawned {
		a.Spawn(state)
	}

	as := &state.Avoidance
	wasTurning := as.Turning()

	if a.Sensor.Sense(state.Pose, as) && !wasTurning {
		log.Infof("obstacle ahead at %s, turning", state.Pose)
		if a.resetTimer {
			as.TurnElapsed = 0
		}
	}

	if a.Turn.Step(&state.Pose, as, dt) {
		log.Infof("path clear at %s, walking", state.Pose)
	}

	return nil
}
