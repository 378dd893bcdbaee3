package gait

import (
	"github.com/adammck/crawler"
)

// TheGait returns the alternating two-phase walk. In phase zero the left legs
// swing forwards while the right legs pull back and the body leans forwards;
// the upper right leg follows a little later, once the step cooldown has
// passed. Phase one mirrors it. The mid left leg is never driven.
func TheGait(switchInterval float64) Gait {
	return Gait{
		switchInterval: switchInterval,
		frames: [2]Frame{
			0: {
				Lean: Forward,
				Moves: []Move{
					{Joint: crawler.UpperLeft, Toward: Max},
					{Joint: crawler.LowerLeft, Toward: Max},
					{Joint: crawler.MidRight, Toward: Min},
					{Joint: crawler.LowerRight, Toward: Min},
					{Joint: crawler.UpperRight, Toward: Min, Gated: true},
				},
			},
			1: {
				Lean: Backward,
				Moves: []Move{
					{Joint: crawler.UpperLeft, Toward: Min},
					{Joint: crawler.LowerLeft, Toward: Min},
					{Joint: crawler.MidRight, Toward: Max},
					{Joint: crawler.LowerRight, Toward: Max},
				},
			},
		},
	}
}
