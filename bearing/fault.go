package bearing

// FaultType identifies a bearing defect location.
type FaultType int

const (
	FaultOuterRace FaultType = iota
	FaultInnerRace
	FaultBall
	FaultCage
)

// FaultTypes lists all fault types in canonical order. The order is
// stable and used for deterministic table iteration.
func FaultTypes() []FaultType {
	return []FaultType{FaultOuterRace, FaultInnerRace, FaultBall, FaultCage}
}

// String returns the conventional name of the fault type.
func (t FaultType) String() string {
	switch t {
	case FaultOuterRace:
		return "outer-race"
	case FaultInnerRace:
		return "inner-race"
	case FaultBall:
		return "ball"
	case FaultCage:
		return "cage"
	default:
		return "unknown"
	}
}

// Code returns the single-letter label code used in band labels.
func (t FaultType) Code() string {
	switch t {
	case FaultOuterRace:
		return "O"
	case FaultInnerRace:
		return "I"
	case FaultBall:
		return "B"
	case FaultCage:
		return "C"
	default:
		return "?"
	}
}

// Modulated reports whether harmonics of this fault type carry
// sidebands. Outer-race and cage defects are stationary relative to
// the load zone and produce bare harmonics only.
func (t FaultType) Modulated() bool {
	return t == FaultInnerRace || t == FaultBall
}

// ModulationCode returns the label code of the modulation source for
// sideband labels. Inner-race sidebands are spaced at shaft speed and
// labeled "S". Ball sidebands are conventionally labeled with the cage
// code "C" even though the sideband spacing used here is the shaft
// speed; the labeling follows established practice.
func (t FaultType) ModulationCode() string {
	switch t {
	case FaultInnerRace:
		return "S"
	case FaultBall:
		return "C"
	default:
		return ""
	}
}
