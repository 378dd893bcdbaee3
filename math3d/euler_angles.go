package math3d

import (
	"fmt"

	"github.com/adammck/crawler/utils"
)

// EulerAngles are stored in radians. Heading turns about Y, pitch about X and
// bank about Z. Composed as heading, then pitch, then bank.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

type rotation int

const (
	RotationHeading rotation = iota
	RotationPitch   rotation = iota
	RotationBank    rotation = iota
)

// Euler returns angles from degrees.
func Euler(h float64, p float64, b float64) EulerAngles {
	return EulerAngles{utils.Rad(h), utils.Rad(p), utils.Rad(b)}
}

func MakeSingularEulerAngle(rot rotation, angle float64) *EulerAngles {
	ea := &EulerAngles{}

	switch rot {
	case RotationHeading:
		ea.Heading = utils.Rad(angle)

	case RotationPitch:
		ea.Pitch = utils.Rad(angle)

	case RotationBank:
		ea.Bank = utils.Rad(angle)

	default:
		panic("invalid rotation")
	}

	return ea
}

// Quaternion returns the orientation as a quaternion.
func (ea EulerAngles) Quaternion() Quaternion {
	return MakeQuaternion(ea)
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", utils.Deg(ea.Heading), utils.Deg(ea.Pitch), utils.Deg(ea.Bank))
}
