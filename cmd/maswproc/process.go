package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-masw/array"
	"github.com/cwbudde/algo-masw/config"
	"github.com/cwbudde/algo-masw/dsp/core"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/internal/tracecsv"
	"github.com/cwbudde/algo-masw/masw"
	"github.com/cwbudde/algo-masw/peaks"
)

type processOptions struct {
	settings string
	gathers  []string
	source   float64
	id       string
	out      string
	append   bool
}

func runProcess(ctx context.Context, o processOptions, log *zap.Logger) error {
	if len(o.gathers) == 0 {
		return errors.New("at least one --gather is required")
	}
	if o.out == "" {
		return errors.New("--out is required")
	}
	if o.id == "" {
		o.id = o.gathers[0]
	}

	settings := config.Default()
	if o.settings != "" {
		var err error
		if settings, err = config.Load(o.settings); err != nil {
			return err
		}
	}
	proc, err := masw.New(settings, masw.WithLogger(log))
	if err != nil {
		return err
	}

	shots, positions, err := readGathers(o.gathers)
	if err != nil {
		return err
	}
	res, err := proc.Process(ctx, shots, positions, array.Source{X: o.source}, o.id)
	if err != nil {
		return err
	}

	suite, err := peaks.NewSuite()
	if err != nil {
		return err
	}
	if o.append {
		if _, statErr := os.Stat(o.out); statErr == nil {
			if suite, err = readSuite(o.out); err != nil {
				return err
			}
		}
	}
	if err := suite.Append(res.Peaks); err != nil {
		return err
	}
	for _, m := range res.Modes {
		if err := suite.Append(m); err != nil {
			return err
		}
	}
	if err := writeSuite(o.out, suite); err != nil {
		return err
	}
	log.Info("wrote picks", zap.String("path", o.out), zap.Int("curves", suite.Len()))
	return nil
}

// readGathers loads every gather and checks they share receiver positions.
func readGathers(paths []string) ([][]*timeseries.TimeSeries, []float64, error) {
	var (
		shots     [][]*timeseries.TimeSeries
		positions []float64
	)
	for i, path := range paths {
		g, err := tracecsv.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 {
			positions = g.Positions
		} else if !samePositions(positions, g.Positions) {
			return nil, nil, errors.Wrapf(array.ErrGeometry, "%s: receiver positions differ from %s", path, paths[0])
		}
		series, err := g.Series()
		if err != nil {
			return nil, nil, errors.Wrap(err, path)
		}
		shots = append(shots, series)
	}
	return shots, positions, nil
}

func samePositions(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !core.NearlyEqual(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}
