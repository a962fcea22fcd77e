package sfrf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bearing/bearing"
)

// MaskRow holds the combined center and surround gain masks of one
// (condition, fault type) pair, aligned to the axis the table was
// synthesized on.
type MaskRow struct {
	Condition bearing.Condition
	Fault     bearing.FaultType
	Center    []float64
	Surround  []float64
}

// MaskTable holds one MaskRow per condition and fault type, plus the
// frequency axis the masks were evaluated on. Masks are tied to that
// axis; a different axis requires a fresh synthesis run.
type MaskTable struct {
	axis       []float64
	rows       []MaskRow
	conditions int
}

// Axis returns the frequency axis the masks were evaluated on.
func (t *MaskTable) Axis() []float64 { return t.axis }

// Conditions returns the number of grid conditions in the table.
func (t *MaskTable) Conditions() int { return t.conditions }

// Row returns the mask row for a condition index and fault type.
func (t *MaskTable) Row(cond int, ft bearing.FaultType) MaskRow {
	return t.rows[cond*len(bearing.FaultTypes())+int(ft)]
}

// Rows returns all rows in table order.
func (t *MaskTable) Rows() []MaskRow { return t.rows }

type gainConfig struct {
	superGaussian bool
	beta          float64
}

// GainOption configures gain synthesis.
type GainOption func(*gainConfig)

// WithSuperGaussian switches mask evaluation to the super-Gaussian form
//
//	mask(f) = exp(-(|f-c|/bandwidth)^beta)
//
// ignoring the sigma rules. With beta = 2 this matches the plain
// Gaussian form at sigma rule sqrt(2)/2.
func WithSuperGaussian(beta float64) GainOption {
	return func(c *gainConfig) {
		if beta > 0 {
			c.superGaussian = true
			c.beta = beta
		}
	}
}

// SynthesizeGains evaluates the band table's masks on the given
// frequency axis.
//
// Each band contributes a Gaussian centered on its interval midpoint
// with sigma = bandwidth/(2*sigmaRule). Bands of the same row combine
// by elementwise maximum, keeping mask values in [0,1] without double
// counting overlapping bands. A row without bands yields all-zero
// masks.
func SynthesizeGains(table *BandTable, axis []float64, opts ...GainOption) (*MaskTable, error) {
	if len(axis) == 0 {
		return nil, ErrEmptyAxis
	}

	if err := validateBandTable(table); err != nil {
		return nil, err
	}

	cfg := gainConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	axisCopy := make([]float64, len(axis))
	copy(axisCopy, axis)

	rows := make([]MaskRow, len(table.rows))

	for i, row := range table.rows {
		p := table.set[row.Fault]

		center := make([]float64, len(axisCopy))
		surround := make([]float64, len(axisCopy))

		for _, band := range row.Bands {
			accumulateMask(center, axisCopy, band.Center, p.CenterSigmaRule, cfg)
			accumulateMask(surround, axisCopy, band.Surround, p.SurroundSigmaRule, cfg)
		}

		rows[i] = MaskRow{
			Condition: row.Condition,
			Fault:     row.Fault,
			Center:    center,
			Surround:  surround,
		}
	}

	return &MaskTable{axis: axisCopy, rows: rows, conditions: table.conditions}, nil
}

// accumulateMask evaluates one band's mask over the axis and folds it
// into dst by elementwise maximum.
func accumulateMask(dst, axis []float64, iv Interval, sigmaRule float64, cfg gainConfig) {
	center := iv.Center()
	bandwidth := iv.Width()

	if cfg.superGaussian {
		for i, f := range axis {
			v := math.Exp(-math.Pow(math.Abs(f-center)/bandwidth, cfg.beta))
			if v > dst[i] {
				dst[i] = v
			}
		}

		return
	}

	sigma := bandwidth / (2 * sigmaRule)
	for i, f := range axis {
		z := (f - center) / sigma

		v := math.Exp(-0.5 * z * z)
		if v > dst[i] {
			dst[i] = v
		}
	}
}

func validateBandTable(table *BandTable) error {
	if table == nil {
		return ErrMalformedBands
	}

	if len(table.rows) != table.conditions*len(bearing.FaultTypes()) {
		return fmt.Errorf("%w: %d rows for %d conditions", ErrMalformedBands, len(table.rows), table.conditions)
	}

	for _, row := range table.rows {
		if _, ok := table.set[row.Fault]; !ok {
			return fmt.Errorf("%w: no parameters for %s family", ErrMalformedBands, row.Fault)
		}

		for _, band := range row.Bands {
			if band.Center.Width() <= 0 || band.Surround.Width() <= 0 {
				return fmt.Errorf("%w: band %s has empty interval", ErrMalformedBands, band.Label)
			}
		}
	}

	return nil
}
