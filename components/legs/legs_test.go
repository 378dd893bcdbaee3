package legs

import (
	"testing"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/adammck/crawler/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLegs(speed float64) *Legs {
	gc := config.GaitConfig{
		LegSpeed:       speed,
		SwitchInterval: 0.5,
		StepCooldown:   0.25,
		LeanForward:    config.Euler{Pitch: 10},
		LeanBackward:   config.Euler{Pitch: -10},
	}

	jc := config.JointsConfig{
		UpperLeft:  config.Range{Min: -10, Max: 10},
		MidLeft:    config.Range{Min: -20, Max: 20},
		LowerLeft:  config.Range{Min: -30, Max: 30},
		UpperRight: config.Range{Min: -40, Max: 40},
		MidRight:   config.Range{Min: -50, Max: 50},
		LowerRight: config.Range{Min: -60, Max: 60},
	}

	return New(gc, jc)
}

func restJoints() crawler.Joints {
	j := crawler.Joints{Body: math3d.IdentityQuaternion}
	for i := range j.Legs {
		j.Legs[i] = math3d.Euler(float64(i*10), 0, 5)
	}
	return j
}

func pitch(j crawler.Joints, joint crawler.Joint) float64 {
	return utils.Deg(j.Legs[joint].Pitch)
}

func TestAnimatePhaseZero(t *testing.T) {
	l := testLegs(1)
	j := restJoints()
	gs := crawler.GaitState{}

	l.Animate(&j, &gs, 0.1)

	assert.InDelta(t, 1, pitch(j, crawler.UpperLeft), 1e-9)
	assert.InDelta(t, 3, pitch(j, crawler.LowerLeft), 1e-9)
	assert.InDelta(t, -5, pitch(j, crawler.MidRight), 1e-9)
	assert.InDelta(t, -6, pitch(j, crawler.LowerRight), 1e-9)

	// Gated until the step cooldown passes. Mid left never moves.
	assert.Equal(t, 0.0, pitch(j, crawler.UpperRight))
	assert.Equal(t, 0.0, pitch(j, crawler.MidLeft))

	assert.Equal(t, 0.1, gs.SinceStep)
}

func TestAnimateStepCooldown(t *testing.T) {
	l := testLegs(1)
	j := restJoints()

	gs := crawler.GaitState{SinceStep: 0.25}
	l.Animate(&j, &gs, 0.1)
	assert.Equal(t, 0.0, pitch(j, crawler.UpperRight))

	l.Animate(&j, &gs, 0.1)
	assert.InDelta(t, -4, pitch(j, crawler.UpperRight), 1e-9)
}

func TestAnimatePhaseOne(t *testing.T) {
	l := testLegs(1)
	j := restJoints()
	gs := crawler.GaitState{Phase: 1, SinceStep: 10}

	l.Animate(&j, &gs, 0.1)

	assert.InDelta(t, -1, pitch(j, crawler.UpperLeft), 1e-9)
	assert.InDelta(t, -3, pitch(j, crawler.LowerLeft), 1e-9)
	assert.InDelta(t, 5, pitch(j, crawler.MidRight), 1e-9)
	assert.InDelta(t, 6, pitch(j, crawler.LowerRight), 1e-9)
	assert.Equal(t, 0.0, pitch(j, crawler.UpperRight))
	assert.Equal(t, 0.0, pitch(j, crawler.MidLeft))
}

func TestAnimatePreservesOtherAxes(t *testing.T) {
	l := testLegs(1)
	j := restJoints()
	before := j
	gs := crawler.GaitState{SinceStep: 1}

	for n := 0; n < 10; n++ {
		l.Animate(&j, &gs, 0.1)
	}

	for i := range j.Legs {
		assert.Equal(t, before.Legs[i].Heading, j.Legs[i].Heading)
		assert.Equal(t, before.Legs[i].Bank, j.Legs[i].Bank)
	}
}

func TestAnimateIdempotentAtTarget(t *testing.T) {
	l := testLegs(1)
	j := restJoints()
	j.Legs[crawler.UpperLeft].Pitch = l.Ranges[crawler.UpperLeft].Max
	before := j.Legs[crawler.UpperLeft]
	gs := crawler.GaitState{}

	for n := 0; n < 5; n++ {
		l.Animate(&j, &gs, 0.1)
		assert.Equal(t, before, j.Legs[crawler.UpperLeft])
	}
}

// Blending never overshoots, even when the tick is long enough to push the
// factor past one.
func TestAnimateClampsBlend(t *testing.T) {
	l := testLegs(1)
	j := restJoints()
	gs := crawler.GaitState{}

	l.Animate(&j, &gs, 50)
	assert.InDelta(t, 10, pitch(j, crawler.UpperLeft), 1e-9)
	assert.InDelta(t, 0, math3d.Angle(j.Body, l.lean[0]), 1e-6)
}

func TestBodyLeans(t *testing.T) {
	l := testLegs(1)
	j := restJoints()

	forward := config.Euler{Pitch: 10}.Quaternion()
	backward := config.Euler{Pitch: -10}.Quaternion()

	gs := crawler.GaitState{}
	last := math3d.Angle(j.Body, forward)
	for n := 0; n < 50; n++ {
		l.Animate(&j, &gs, 0.1)
		a := math3d.Angle(j.Body, forward)
		assert.Less(t, a, last)
		last = a
	}

	gs.Phase = 1
	l.Animate(&j, &gs, 0.1)
	assert.Less(t, math3d.Angle(j.Body, backward), math3d.Angle(forward, backward))
}

// With dt=0.1 and a 0.5 interval, five ticks flip phase zero to one, and both
// timers read zero.
func TestTickSwitchesPhase(t *testing.T) {
	l := testLegs(0.2)
	require.NoError(t, l.Boot())
	state := crawler.NewState(math3d.MakePose(math3d.ZeroVector3, 0), restJoints())

	for n := 0; n < 4; n++ {
		require.NoError(t, l.Tick(0.1, state))
		assert.Equal(t, crawler.Phase(0), state.Gait.Phase)
	}

	require.NoError(t, l.Tick(0.1, state))
	assert.Equal(t, crawler.Phase(1), state.Gait.Phase)
	assert.Equal(t, 0.0, state.Gait.SinceSwitch)
	assert.Equal(t, 0.0, state.Gait.SinceStep)
}

func TestRangeTarget(t *testing.T) {
	r := makeRange(config.Range{Min: -90, Max: 45})
	assert.InDelta(t, -1.5707963, r.Target(0), 1e-6)
	assert.InDelta(t, 0.7853981, r.Target(1), 1e-6)
}
