package masw

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-masw/array"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/peaks"
)

// Job is one acquisition configuration: an array layout, a source
// position and its repeated shots.
type Job struct {
	ID        string
	Shots     [][]*timeseries.TimeSeries
	Positions []float64
	Source    array.Source
}

// ProcessAll runs every job and collects the fundamental picks in a suite
// in job order. With more than one mode configured, each job's higher-mode
// curves follow its fundamental, tagged with their mode so that
// [peaks.Suite.Statistics] combines one mode at a time. The suite is
// assembled only after every job has finished.
func (p *Processor) ProcessAll(ctx context.Context, jobs []Job) (*peaks.Suite, []*Result, error) {
	results := make([]*Result, len(jobs))
	for i, job := range jobs {
		res, err := p.Process(ctx, job.Shots, job.Positions, job.Source, job.ID)
		if err != nil {
			return nil, nil, err
		}
		results[i] = res
	}

	suite, err := peaks.NewSuite()
	if err != nil {
		return nil, nil, err
	}
	for _, res := range results {
		if err := suite.Append(res.Peaks); err != nil {
			return nil, nil, errors.Wrapf(err, "masw: collect %s", res.ID)
		}
		for _, m := range res.Modes {
			if err := suite.Append(m); err != nil {
				return nil, nil, errors.Wrapf(err, "masw: collect %s", m.ID)
			}
		}
	}
	p.log.Info("suite assembled", zap.Int("jobs", len(jobs)), zap.Int("curves", suite.Len()))
	return suite, results, nil
}
