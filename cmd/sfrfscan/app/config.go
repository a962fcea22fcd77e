package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"gopkg.in/yaml.v3"
)

// Config is the sfrfscan configuration file layout.
type Config struct {
	Settings Settings     `yaml:"settings"`
	Bearing  BearingYAML  `yaml:"bearing"`
	Grid     GridYAML     `yaml:"grid"`
	Shape    ShapeYAML    `yaml:"shape"`
	Analysis AnalysisYAML `yaml:"analysis"`
}

// Settings holds global application settings.
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// Level maps the configured log level name to a slog level.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BearingYAML describes the bearing geometry.
type BearingYAML struct {
	RollingElements int     `yaml:"rollingElements"`
	BallDiameter    float64 `yaml:"ballDiameter"`
	PitchDiameter   float64 `yaml:"pitchDiameter"`
	ContactAngleDeg float64 `yaml:"contactAngleDeg"`
}

// GridYAML describes the operating-condition grid as parallel speed and
// load sequences.
type GridYAML struct {
	SpeedsHz []float64 `yaml:"speedsHz"`
	LoadsKN  []float64 `yaml:"loadsKN"`
}

// ShapeYAML describes the receptive-field shape, replicated to all four
// fault families.
type ShapeYAML struct {
	Harmonics         int     `yaml:"harmonics"`
	Sidebands         int     `yaml:"sidebands"`
	CenterBandwidth   float64 `yaml:"centerBandwidth"`
	CenterSigmaRule   float64 `yaml:"centerSigmaRule"`
	SurroundBandwidth float64 `yaml:"surroundBandwidth"`
	SurroundSigmaRule float64 `yaml:"surroundSigmaRule"`
	Inhibition        float64 `yaml:"inhibition"`
}

// AnalysisYAML describes the spectrum analysis settings.
type AnalysisYAML struct {
	FFTSize int    `yaml:"fftSize"`
	Window  string `yaml:"window"`
}

// WindowType maps the configured window name to a window type.
func (a AnalysisYAML) WindowType() (window.Type, error) {
	switch strings.ToLower(a.Window) {
	case "", "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "flat-top":
		return window.TypeFlatTop, nil
	default:
		return 0, fmt.Errorf("unknown window %q", a.Window)
	}
}

// LoadConfig reads and decodes a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &config, nil
}
