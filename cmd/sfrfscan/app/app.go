package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-bearing/bearing"
	"github.com/cwbudde/algo-bearing/ensemble"
	"github.com/cwbudde/algo-bearing/sfrf"
	"github.com/cwbudde/algo-bearing/spectral"
)

const defaultFFTSize = 4096

// Run executes the receptive-field pipeline over every member of the
// ensemble database and persists the per-member responses.
func Run(ctx context.Context, config *Config, dbPath string, workers int, logger *slog.Logger) error {
	geo, err := bearing.NewGeometry(
		config.Bearing.RollingElements,
		config.Bearing.BallDiameter,
		config.Bearing.PitchDiameter,
		config.Bearing.ContactAngleDeg)
	if err != nil {
		return fmt.Errorf("invalid bearing geometry: %w", err)
	}

	grid, err := bearing.NewGrid(config.Grid.SpeedsHz, config.Grid.LoadsKN)
	if err != nil {
		return fmt.Errorf("invalid operating grid: %w", err)
	}

	set, err := shapeParameters(config.Shape)
	if err != nil {
		return fmt.Errorf("invalid shape parameters: %w", err)
	}

	bands, err := sfrf.GenerateBands(geo, grid, set, sfrf.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("generating bands: %w", err)
	}

	winType, err := config.Analysis.WindowType()
	if err != nil {
		return fmt.Errorf("invalid analysis settings: %w", err)
	}

	fftSize := config.Analysis.FFTSize
	if fftSize <= 0 {
		fftSize = defaultFFTSize
	}

	store, err := ensemble.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	it, err := store.Members()
	if err != nil {
		return err
	}

	members, err := it.Collect()
	if err != nil {
		return fmt.Errorf("reading members: %w", err)
	}

	if len(members) == 0 {
		logger.Info("ensemble database has no members", "path", dbPath)
		return nil
	}

	// Masks depend only on the frequency axis, so synthesize once per
	// distinct sample rate before fanning out.
	masks := make(map[float64]*sfrf.MaskTable)

	for _, m := range members {
		if _, ok := masks[m.SampleRate]; ok {
			continue
		}

		axis, err := spectral.Axis(m.SampleRate, fftSize)
		if err != nil {
			return fmt.Errorf("member %d: %w", m.ID, err)
		}

		table, err := sfrf.SynthesizeGains(bands, axis)
		if err != nil {
			return fmt.Errorf("synthesizing gains at %g Hz: %w", m.SampleRate, err)
		}

		masks[m.SampleRate] = table
	}

	analyzer := spectral.Analyzer{FFTSize: fftSize, Window: winType}
	pool := ensemble.NewPool(ensemble.WithWorkers(workers), ensemble.WithPoolLogger(logger))

	err = pool.Run(ctx, members, func(ctx context.Context, m ensemble.Member) error {
		cond := bearing.Condition{SpeedHz: m.SpeedHz, LoadKN: m.LoadKN}

		table, err := sfrf.ComputeResponse(masks[m.SampleRate], set, cond,
			sfrf.Input{Signal: [][]float64{m.Signal}},
			sfrf.WithAnalyzer(analyzer))
		if err != nil {
			return err
		}

		records := make([]ensemble.ResponseRecord, 0, len(table.Responses))
		for _, resp := range table.Responses {
			for col, value := range resp.Values {
				records = append(records, ensemble.ResponseRecord{
					Fault:  resp.Fault.String(),
					Column: col,
					Value:  value,
				})
			}
		}

		if err := store.StoreResponses(ctx, m.ID, records); err != nil {
			return err
		}

		logger.Info("member processed", "member", m.ID, "tag", m.Tag)

		return nil
	})
	if err != nil {
		return fmt.Errorf("processing ensemble: %w", err)
	}

	logger.Info("ensemble processed", "members", len(members))

	return nil
}

// shapeParameters builds the replicated parameter set from the config,
// leaving zero-valued fields at their defaults.
func shapeParameters(shape ShapeYAML) (sfrf.ParameterSet, error) {
	var opts []sfrf.ParameterOption

	if shape.Harmonics > 0 {
		opts = append(opts, sfrf.WithHarmonics(shape.Harmonics))
	}

	if shape.Sidebands > 0 {
		opts = append(opts, sfrf.WithSidebands(shape.Sidebands))
	}

	if shape.CenterBandwidth > 0 && shape.CenterSigmaRule > 0 {
		opts = append(opts, sfrf.WithCenterBand(shape.CenterBandwidth, shape.CenterSigmaRule))
	}

	if shape.SurroundBandwidth > 0 && shape.SurroundSigmaRule > 0 {
		opts = append(opts, sfrf.WithSurroundBand(shape.SurroundBandwidth, shape.SurroundSigmaRule))
	}

	if shape.Inhibition > 0 {
		opts = append(opts, sfrf.WithInhibition(shape.Inhibition))
	}

	params, err := sfrf.NewParameters(opts...)
	if err != nil {
		return nil, err
	}

	return sfrf.ReplicateParameters(params)
}
