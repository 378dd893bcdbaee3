package legs

import (
	"github.com/adammck/crawler/components/legs/gait"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/adammck/crawler/utils"
)

// Range is the swing of a single leg joint, in radians of pitch.
type Range struct {
	Min float64
	Max float64
}

func makeRange(r config.Range) Range {
	return Range{
		Min: utils.Rad(r.Min),
		Max: utils.Rad(r.Max),
	}
}

// Target returns the pitch at the given end of the range.
func (r Range) Target(b gait.Bound) float64 {
	if b == gait.Max {
		return r.Max
	}

	return r.Min
}

// MoveLeg blends the pitch of a joint towards the target by the fraction t.
// Heading and bank are left exactly as they were, and a joint which is already
// at its target doesn't move at all.
func MoveLeg(ea *math3d.EulerAngles, target float64, t float64) {
	ea.Pitch = utils.Blend(ea.Pitch, target, t)
}
