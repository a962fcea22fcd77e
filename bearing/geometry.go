package bearing

import (
	"fmt"
	"math"
)

// Geometry describes the kinematic geometry of a rolling-element bearing.
// All dimensions must use the same length unit; only the ball/pitch
// diameter ratio enters the frequency formulas.
type Geometry struct {
	RollingElements int
	BallDiameter    float64
	PitchDiameter   float64
	ContactAngleDeg float64
}

// NewGeometry validates and constructs a bearing geometry.
func NewGeometry(rollingElements int, ballDiameter, pitchDiameter, contactAngleDeg float64) (Geometry, error) {
	if rollingElements < 1 {
		return Geometry{}, fmt.Errorf("bearing: rolling element count must be >= 1: %d", rollingElements)
	}

	if ballDiameter <= 0 {
		return Geometry{}, fmt.Errorf("bearing: ball diameter must be > 0: %f", ballDiameter)
	}

	if pitchDiameter <= 0 {
		return Geometry{}, fmt.Errorf("bearing: pitch diameter must be > 0: %f", pitchDiameter)
	}

	if contactAngleDeg < 0 || contactAngleDeg > 90 {
		return Geometry{}, fmt.Errorf("bearing: contact angle must be in [0,90] degrees: %f", contactAngleDeg)
	}

	return Geometry{
		RollingElements: rollingElements,
		BallDiameter:    ballDiameter,
		PitchDiameter:   pitchDiameter,
		ContactAngleDeg: contactAngleDeg,
	}, nil
}

// diameterRatio returns (d/D)*cos(phi), the term shared by all four
// characteristic frequency formulas.
func (g Geometry) diameterRatio() float64 {
	phi := g.ContactAngleDeg * math.Pi / 180
	return g.BallDiameter / g.PitchDiameter * math.Cos(phi)
}

// CharacteristicFrequency returns the fundamental defect frequency of
// the given fault type at the given shaft speed in Hz.
//
// The kinematic formulas are:
//
//	BPFO = (n/2)*fs*(1 - (d/D)*cos(phi))
//	BPFI = (n/2)*fs*(1 + (d/D)*cos(phi))
//	BSF  = (D/(2d))*fs*(1 - ((d/D)*cos(phi))^2)
//	FTF  = (1/2)*fs*(1 - (d/D)*cos(phi))
//
// with n rolling elements, ball diameter d, pitch diameter D, and
// contact angle phi.
func (g Geometry) CharacteristicFrequency(ft FaultType, speedHz float64) float64 {
	ratio := g.diameterRatio()
	n := float64(g.RollingElements)

	switch ft {
	case FaultOuterRace:
		return n / 2 * speedHz * (1 - ratio)
	case FaultInnerRace:
		return n / 2 * speedHz * (1 + ratio)
	case FaultBall:
		return g.PitchDiameter / (2 * g.BallDiameter) * speedHz * (1 - ratio*ratio)
	case FaultCage:
		return 0.5 * speedHz * (1 - ratio)
	default:
		return 0
	}
}
