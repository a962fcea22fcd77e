package sfrf

import (
	"fmt"

	"github.com/cwbudde/algo-bearing/bearing"
)

// Parameters holds the shape parameters of one fault family's receptive
// field.
//
// Order is validated and stored but not consumed by band or mask
// synthesis; it is reserved for envelope-order analysis.
type Parameters struct {
	Order             int
	Harmonics         int
	Sidebands         int
	CenterBandwidth   float64
	CenterSigmaRule   float64
	SurroundBandwidth float64
	SurroundSigmaRule float64
	Inhibition        float64
}

// DefaultParameters returns the standard receptive-field shape: ten
// harmonics with two sidebands each, a 4 Hz center band against a
// 12 Hz surround, and 0.8 surround inhibition.
func DefaultParameters() Parameters {
	return Parameters{
		Order:             0,
		Harmonics:         10,
		Sidebands:         2,
		CenterBandwidth:   4,
		CenterSigmaRule:   6,
		SurroundBandwidth: 12,
		SurroundSigmaRule: 1,
		Inhibition:        0.8,
	}
}

// ParameterOption mutates a Parameters value during construction.
type ParameterOption func(*Parameters)

// WithOrder sets the reserved envelope order.
func WithOrder(order int) ParameterOption {
	return func(p *Parameters) { p.Order = order }
}

// WithHarmonics sets the number of harmonics per family.
func WithHarmonics(n int) ParameterOption {
	return func(p *Parameters) { p.Harmonics = n }
}

// WithSidebands sets the number of sidebands per harmonic.
func WithSidebands(n int) ParameterOption {
	return func(p *Parameters) { p.Sidebands = n }
}

// WithCenterBand sets the center band full width and sigma rule.
func WithCenterBand(bandwidth, sigmaRule float64) ParameterOption {
	return func(p *Parameters) {
		p.CenterBandwidth = bandwidth
		p.CenterSigmaRule = sigmaRule
	}
}

// WithSurroundBand sets the surround band full width and sigma rule.
func WithSurroundBand(bandwidth, sigmaRule float64) ParameterOption {
	return func(p *Parameters) {
		p.SurroundBandwidth = bandwidth
		p.SurroundSigmaRule = sigmaRule
	}
}

// WithInhibition sets the surround inhibition factor.
func WithInhibition(factor float64) ParameterOption {
	return func(p *Parameters) { p.Inhibition = factor }
}

// NewParameters applies options to the defaults and validates the
// result.
func NewParameters(opts ...ParameterOption) (Parameters, error) {
	p := DefaultParameters()

	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

// Validate checks every field against its domain.
func (p Parameters) Validate() error {
	if p.Order < 0 {
		return fmt.Errorf("sfrf: order must be >= 0: %d", p.Order)
	}

	if p.Harmonics < 1 {
		return fmt.Errorf("sfrf: harmonic count must be >= 1: %d", p.Harmonics)
	}

	if p.Sidebands < 0 {
		return fmt.Errorf("sfrf: sideband count must be >= 0: %d", p.Sidebands)
	}

	if p.CenterBandwidth <= 0 {
		return fmt.Errorf("sfrf: center bandwidth must be > 0: %f", p.CenterBandwidth)
	}

	if p.CenterSigmaRule <= 0 {
		return fmt.Errorf("sfrf: center sigma rule must be > 0: %f", p.CenterSigmaRule)
	}

	if p.SurroundBandwidth <= 0 {
		return fmt.Errorf("sfrf: surround bandwidth must be > 0: %f", p.SurroundBandwidth)
	}

	if p.SurroundSigmaRule <= 0 {
		return fmt.Errorf("sfrf: surround sigma rule must be > 0: %f", p.SurroundSigmaRule)
	}

	if p.Inhibition < 0 || p.Inhibition > 1 {
		return fmt.Errorf("sfrf: inhibition factor must be in [0,1]: %f", p.Inhibition)
	}

	return nil
}

// ParameterSet assigns shape parameters to each fault family.
type ParameterSet map[bearing.FaultType]Parameters

// NewParameterSet validates per-family parameters, including the
// invariant that outer-race and cage families carry no sidebands.
func NewParameterSet(outer, inner, ball, cage Parameters) (ParameterSet, error) {
	set := ParameterSet{
		bearing.FaultOuterRace: outer,
		bearing.FaultInnerRace: inner,
		bearing.FaultBall:      ball,
		bearing.FaultCage:      cage,
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// ReplicateParameters builds a set using the same parameters for all
// four families, forcing the sideband count to zero for the unmodulated
// outer-race and cage families.
func ReplicateParameters(p Parameters) (ParameterSet, error) {
	unmodulated := p
	unmodulated.Sidebands = 0

	return NewParameterSet(unmodulated, p, p, unmodulated)
}

// Validate checks every family's parameters and the sideband invariant.
func (s ParameterSet) Validate() error {
	for _, ft := range bearing.FaultTypes() {
		p, ok := s[ft]
		if !ok {
			return fmt.Errorf("sfrf: missing parameters for %s family", ft)
		}

		if err := p.Validate(); err != nil {
			return fmt.Errorf("sfrf: %s family: %w", ft, err)
		}

		if !ft.Modulated() && p.Sidebands != 0 {
			return fmt.Errorf("sfrf: %s family must have zero sidebands: %d", ft, p.Sidebands)
		}
	}

	return nil
}
