package sfrf

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-bearing/bearing"
)

// Interval is a closed frequency interval in Hz.
type Interval struct {
	Lo float64
	Hi float64
}

// Center returns the interval midpoint.
func (iv Interval) Center() float64 { return (iv.Lo + iv.Hi) / 2 }

// Width returns the interval span.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Band is one labeled receptive-field band: a center interval around a
// harmonic (or sideband) frequency and the wider surround interval
// around the same frequency. Bands are immutable once generated.
type Band struct {
	Harmonic int
	Sideband int
	Label    string
	Center   Interval
	Surround Interval
}

// BandRow holds the ordered bands of one (condition, fault type) pair.
type BandRow struct {
	Condition bearing.Condition
	Fault     bearing.FaultType
	Bands     []Band
}

// BandTable holds one BandRow per condition and fault type. Rows are
// ordered condition-major with fault types in canonical order, so table
// generation is deterministic.
type BandTable struct {
	set        ParameterSet
	rows       []BandRow
	conditions int
}

// Conditions returns the number of grid conditions in the table.
func (t *BandTable) Conditions() int { return t.conditions }

// Condition returns the operating condition of grid index i.
func (t *BandTable) Condition(i int) bearing.Condition {
	return t.rows[i*len(bearing.FaultTypes())].Condition
}

// Row returns the band row for a condition index and fault type.
func (t *BandTable) Row(cond int, ft bearing.FaultType) BandRow {
	return t.rows[cond*len(bearing.FaultTypes())+int(ft)]
}

// Rows returns all rows in table order.
func (t *BandTable) Rows() []BandRow { return t.rows }

// Parameters returns the shape parameters the table was generated with.
func (t *BandTable) Parameters() ParameterSet { return t.set }

type bandConfig struct {
	logger *slog.Logger
}

// BandOption configures band generation.
type BandOption func(*bandConfig)

// WithLogger sets the logger used to report dropped bands. Without it,
// drops are silent.
func WithLogger(logger *slog.Logger) BandOption {
	return func(c *bandConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// GenerateBands synthesizes the frequency bands of every (condition,
// fault type) pair in the grid.
//
// For each fault type the fundamental defect frequency f0 is derived
// from the geometry and the condition's shaft speed. Harmonics run from
// 1 to the family's harmonic count. Modulated families (inner race and
// ball) additionally expand each harmonic into sidebands spaced at the
// shaft speed; sideband index 0 reproduces the bare harmonic. Bands
// whose center or surround interval extends below 0 Hz are dropped and
// reported to the logger; dropping one band never affects another.
func GenerateBands(geo bearing.Geometry, grid bearing.Grid, set ParameterSet, opts ...BandOption) (*BandTable, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	cfg := bandConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	faults := bearing.FaultTypes()
	rows := make([]BandRow, 0, grid.Len()*len(faults))

	for i := 0; i < grid.Len(); i++ {
		cond := grid.At(i)

		for _, ft := range faults {
			rows = append(rows, BandRow{
				Condition: cond,
				Fault:     ft,
				Bands:     generateRow(geo, cond, ft, set[ft], cfg.logger),
			})
		}
	}

	return &BandTable{set: set, rows: rows, conditions: grid.Len()}, nil
}

func generateRow(geo bearing.Geometry, cond bearing.Condition, ft bearing.FaultType, p Parameters, logger *slog.Logger) []Band {
	f0 := geo.CharacteristicFrequency(ft, cond.SpeedHz)
	bands := make([]Band, 0, p.Harmonics*(2*p.Sidebands+1))

	for h := 1; h <= p.Harmonics; h++ {
		harmonic := float64(h) * f0

		for sb := -p.Sidebands; sb <= p.Sidebands; sb++ {
			// Sideband spacing is the shaft speed of the condition.
			freq := harmonic + float64(sb)*cond.SpeedHz

			band := Band{
				Harmonic: h,
				Sideband: sb,
				Label:    bandLabel(h, sb, ft),
				Center:   symmetricInterval(freq, p.CenterBandwidth),
				Surround: symmetricInterval(freq, p.SurroundBandwidth),
			}

			if band.Center.Lo < 0 || band.Surround.Lo < 0 {
				logger.Debug("dropping negative-frequency band",
					"label", band.Label,
					"fault", ft.String(),
					"speedHz", cond.SpeedHz,
					"centerLo", band.Center.Lo,
					"surroundLo", band.Surround.Lo)

				continue
			}

			bands = append(bands, band)
		}
	}

	return bands
}

// symmetricInterval returns the interval of the given full width
// centered on freq.
func symmetricInterval(freq, width float64) Interval {
	half := width / 2
	return Interval{Lo: freq - half, Hi: freq + half}
}

// bandLabel formats band labels as "{h}{code}" for bare harmonics and
// "{h}{code}{+|-}{|sb|}{modCode}" for sidebands, e.g. "3I" or "3I-2S".
func bandLabel(h, sb int, ft bearing.FaultType) string {
	if sb == 0 {
		return fmt.Sprintf("%d%s", h, ft.Code())
	}

	sign := "+"
	if sb < 0 {
		sign = "-"
		sb = -sb
	}

	return fmt.Sprintf("%d%s%s%d%s", h, ft.Code(), sign, sb, ft.ModulationCode())
}
