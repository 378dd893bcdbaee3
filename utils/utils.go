package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Clamp01 restricts a blend factor to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Blend moves v towards target by the fraction t (clamped). When v already
// equals target, it is returned unchanged.
func Blend(v, target, t float64) float64 {
	return v + (target-v)*Clamp01(t)
}
