package gait

import (
	"testing"

	"github.com/adammck/crawler"
	"github.com/stretchr/testify/assert"
)

// With dt=0.1 and a 0.5 interval, the fifth tick flips the phase and leaves
// both timers at zero.
func TestAdvanceFlipsAfterInterval(t *testing.T) {
	g := TheGait(0.5)
	gs := crawler.GaitState{}

	for n := 1; n <= 4; n++ {
		gs.SinceStep += 0.1
		assert.False(t, g.Advance(&gs, 0.1), "tick %d", n)
		assert.Equal(t, crawler.Phase(0), gs.Phase)
	}

	gs.SinceStep += 0.1
	assert.True(t, g.Advance(&gs, 0.1))
	assert.Equal(t, crawler.Phase(1), gs.Phase)
	assert.Equal(t, 0.0, gs.SinceSwitch)
	assert.Equal(t, 0.0, gs.SinceStep)
}

func TestAdvanceFlipsOncePerInterval(t *testing.T) {
	g := TheGait(0.5)
	gs := crawler.GaitState{}
	flips := 0

	for n := 0; n < 100; n++ {
		if g.Advance(&gs, 0.1) {
			flips += 1
		}
	}

	assert.Equal(t, 20, flips)
	assert.Equal(t, crawler.Phase(0), gs.Phase)
}

// A huge tick is not caught up with several flips.
func TestAdvanceSingleFlipForLongTick(t *testing.T) {
	g := TheGait(0.5)

	for _, dt := range []float64{0.5, 1.2, 5, 1000} {
		gs := crawler.GaitState{SinceStep: 0.3}
		assert.True(t, g.Advance(&gs, dt), "dt=%v", dt)
		assert.Equal(t, crawler.Phase(1), gs.Phase, "dt=%v", dt)
		assert.Equal(t, 0.0, gs.SinceSwitch)
		assert.Equal(t, 0.0, gs.SinceStep)
	}
}

func TestAdvanceZeroDt(t *testing.T) {
	g := TheGait(0.5)
	gs := crawler.GaitState{SinceSwitch: 0.2}

	assert.False(t, g.Advance(&gs, 0))
	assert.Equal(t, 0.2, gs.SinceSwitch)
}

func TestFramesMirror(t *testing.T) {
	g := TheGait(0.5)
	f0 := g.Frame(0)
	f1 := g.Frame(1)

	assert.Equal(t, Forward, f0.Lean)
	assert.Equal(t, Backward, f1.Lean)

	opposite := map[crawler.Joint]Bound{}
	for _, m := range f0.Moves {
		if !m.Gated {
			opposite[m.Joint] = m.Toward
		}
	}

	for _, m := range f1.Moves {
		assert.False(t, m.Gated)
		b, ok := opposite[m.Joint]
		assert.True(t, ok, "%s moves in phase one but not zero", m.Joint)
		assert.NotEqual(t, b, m.Toward, "%s", m.Joint)
	}

	for _, f := range []Frame{f0, f1} {
		for _, m := range f.Moves {
			assert.NotEqual(t, crawler.MidLeft, m.Joint)
		}
	}
}
