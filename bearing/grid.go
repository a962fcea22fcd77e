package bearing

import "fmt"

// Condition is one operating point: shaft speed in Hz and radial load
// in kN.
type Condition struct {
	SpeedHz float64
	LoadKN  float64
}

// Grid is an ordered, immutable sequence of operating conditions.
type Grid struct {
	conditions []Condition
}

// NewGrid builds a grid from parallel speed and load sequences. Both
// must have the same length; empty sequences produce an empty grid.
func NewGrid(speedsHz, loadsKN []float64) (Grid, error) {
	if len(speedsHz) != len(loadsKN) {
		return Grid{}, fmt.Errorf("bearing: speed/load length mismatch: %d != %d", len(speedsHz), len(loadsKN))
	}

	conditions := make([]Condition, len(speedsHz))
	for i := range speedsHz {
		conditions[i] = Condition{SpeedHz: speedsHz[i], LoadKN: loadsKN[i]}
	}

	return Grid{conditions: conditions}, nil
}

// Len returns the number of conditions in the grid.
func (g Grid) Len() int { return len(g.conditions) }

// At returns the condition at index i.
func (g Grid) At(i int) Condition { return g.conditions[i] }

// Conditions returns a copy of the condition sequence.
func (g Grid) Conditions() []Condition {
	out := make([]Condition, len(g.conditions))
	copy(out, g.conditions)
	return out
}

// Index returns the position of the first condition exactly matching c,
// or false when no condition matches. Matching is exact on both speed
// and load.
func (g Grid) Index(c Condition) (int, bool) {
	for i, cond := range g.conditions {
		if cond == c {
			return i, true
		}
	}
	return 0, false
}
