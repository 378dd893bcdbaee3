package probe

import (
	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/probe",
})

type Call struct {
	Origin      math3d.Vector3
	Direction   math3d.Vector3
	MaxDistance float64
	Layers      crawler.Layer
}

// FakeProber answers probes from a script. Each call pops the next result;
// once the script runs out, Fn decides (if set), otherwise Default.
type FakeProber struct {
	Script  []bool
	Default bool
	Fn      func(Call) bool
	Calls   []Call
}

// New returns a prober which answers with the given results in order, then
// misses forever.
func New(results ...bool) *FakeProber {
	return &FakeProber{Script: results}
}

// Always returns a prober which always gives the same answer.
func Always(hit bool) *FakeProber {
	return &FakeProber{Default: hit}
}

// Func returns a prober which delegates every call to fn.
func Func(fn func(Call) bool) *FakeProber {
	return &FakeProber{Fn: fn}
}

func (p *FakeProber) Probe(origin, direction math3d.Vector3, maxDistance float64, layers crawler.Layer) bool {
	c := Call{origin, direction, maxDistance, layers}
	p.Calls = append(p.Calls, c)

	var hit bool
	switch {
	case len(p.Script) > 0:
		hit = p.Script[0]
		p.Script = p.Script[1:]

	case p.Fn != nil:
		hit = p.Fn(c)

	default:
		hit = p.Default
	}

	log.Debugf("probe from %s towards %s: %v", origin, direction, hit)
	return hit
}

// Reset forgets the recorded calls.
func (p *FakeProber) Reset() {
	p.Calls = nil
}
