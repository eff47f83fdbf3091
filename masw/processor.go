package masw

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-masw/array"
	"github.com/cwbudde/algo-masw/config"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/peaks"
	"github.com/cwbudde/algo-masw/wavefield"
)

// ErrNoShots is returned when a gather list is empty or ragged.
var ErrNoShots = errors.New("masw: no usable shots")

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// Processor runs the configured chain.
type Processor struct {
	settings config.Settings
	grid     wavefield.Grid
	opts     []wavefield.Option
	log      *zap.Logger
}

// Result is the output for one configuration.
type Result struct {
	ID      string
	Surface *wavefield.Surface
	// Peaks is the fundamental ridge after filtering.
	Peaks *peaks.Peaks
	// Modes holds the higher-mode curves ("<id>/<rank>", rank >= 1) when
	// more than one mode is requested. The fundamental is only in Peaks.
	Modes []*peaks.Peaks
}

// New validates settings and returns a Processor.
func New(settings config.Settings, opts ...Option) (*Processor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	grid, err := settings.Grid()
	if err != nil {
		return nil, errors.Wrap(err, "masw: trial grid")
	}
	topts, err := settings.TransformOptions()
	if err != nil {
		return nil, errors.Wrap(err, "masw: transform options")
	}
	p := &Processor{
		settings: settings,
		grid:     grid,
		opts:     topts,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Settings returns the settings the processor was built with.
func (p *Processor) Settings() config.Settings { return p.settings }

// Process runs the chain on repeated shots of one array. shots[s][c] is
// channel c of shot s; channels follow positions. The input records are
// not modified.
func (p *Processor) Process(ctx context.Context, shots [][]*timeseries.TimeSeries,
	positions []float64, source array.Source, id string,
) (*Result, error) {
	if err := checkShots(shots, len(positions)); err != nil {
		return nil, errors.Wrapf(err, "masw: %s", id)
	}
	start := time.Now()
	log := p.log.With(zap.String("id", id), zap.String("workflow", p.settings.Workflow))
	log.Info("processing",
		zap.Int("shots", len(shots)),
		zap.Int("channels", len(positions)),
		zap.Float64("source", source.X))

	var (
		surf *wavefield.Surface
		arr  *array.Array1D
		err  error
	)
	if p.settings.Workflow == config.FrequencyDomain {
		surf, arr, err = p.frequencyDomain(ctx, log, shots, positions, source)
	} else {
		surf, arr, err = p.timeDomain(ctx, log, shots, positions, source)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "masw: %s", id)
	}

	res, err := p.pick(log, surf, arr, id)
	if err != nil {
		return nil, errors.Wrapf(err, "masw: %s", id)
	}
	log.Info("done",
		zap.Int("frequencies", len(surf.Frequencies)),
		zap.Int("picks", res.Peaks.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func checkShots(shots [][]*timeseries.TimeSeries, nchannels int) error {
	if len(shots) == 0 {
		return errors.Wrap(ErrNoShots, "empty gather list")
	}
	for s, shot := range shots {
		if len(shot) != nchannels {
			return errors.Wrapf(ErrNoShots, "shot %d has %d channels for %d positions", s, len(shot), nchannels)
		}
	}
	return nil
}

func (p *Processor) timeDomain(ctx context.Context, log *zap.Logger, shots [][]*timeseries.TimeSeries,
	positions []float64, source array.Source,
) (*wavefield.Surface, *array.Array1D, error) {
	stacked := make([]*timeseries.TimeSeries, len(positions))
	column := make([]*timeseries.TimeSeries, len(shots))
	for c := range positions {
		for s, shot := range shots {
			column[s] = shot[c]
		}
		var err error
		if p.settings.Stack.Align {
			stacked[c], err = timeseries.CrossStack(column...)
		} else {
			stacked[c], err = timeseries.Stack(column...)
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "stack channel %d", c)
		}
	}
	log.Debug("stacked", zap.Bool("aligned", p.settings.Stack.Align), zap.Int("nstacks", stacked[0].NStacks()))

	arr, err := p.conditioned(stacked, positions, source)
	if err != nil {
		return nil, nil, err
	}
	surf, err := wavefield.Transform(ctx, arr, p.grid, p.opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "transform")
	}
	return surf, arr, nil
}

func (p *Processor) frequencyDomain(ctx context.Context, log *zap.Logger, shots [][]*timeseries.TimeSeries,
	positions []float64, source array.Source,
) (*wavefield.Surface, *array.Array1D, error) {
	surfaces := make([]*wavefield.Surface, len(shots))
	var arr *array.Array1D
	for s, shot := range shots {
		records := make([]*timeseries.TimeSeries, len(shot))
		for c, r := range shot {
			if r == nil {
				return nil, nil, errors.Wrapf(ErrNoShots, "shot %d channel %d is nil", s, c)
			}
			records[c] = r.Clone()
		}
		var err error
		arr, err = p.conditioned(records, positions, source)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "shot %d", s)
		}
		surfaces[s], err = wavefield.Transform(ctx, arr, p.grid, p.opts...)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "transform shot %d", s)
		}
		log.Debug("transformed shot", zap.Int("shot", s))
	}
	surf, err := wavefield.Stack(surfaces...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "stack surfaces")
	}
	return surf, arr, nil
}

// conditioned builds an array from records and applies trim, taper and
// padding in place.
func (p *Processor) conditioned(records []*timeseries.TimeSeries, positions []float64,
	source array.Source,
) (*array.Array1D, error) {
	arr, err := array.FromRecords(records, positions, source)
	if err != nil {
		return nil, errors.Wrap(err, "array")
	}
	st := p.settings
	if st.Trim.Enabled {
		if err := arr.Trim(st.Trim.Start, st.Trim.End); err != nil {
			return nil, errors.Wrap(err, "trim")
		}
	}
	arr.Taper(st.TaperType(), st.TaperOptions()...)
	if st.Pad.Enabled {
		if err := arr.ZeroPad(st.Pad.Df); err != nil {
			return nil, errors.Wrap(err, "pad")
		}
	}
	return arr, nil
}

func (p *Processor) pick(log *zap.Logger, surf *wavefield.Surface, arr *array.Array1D, id string) (*Result, error) {
	curve, err := surf.Peaks(id)
	if err != nil {
		return nil, errors.Wrap(err, "pick")
	}
	curve, err = p.filter(curve, arr)
	if err != nil {
		return nil, errors.Wrap(err, "filter picks")
	}
	res := &Result{ID: id, Surface: surf, Peaks: curve}

	if n := p.settings.Peaks.Modes; n > 1 {
		modes, err := surf.PeaksByMode(id, n)
		if err != nil {
			return nil, errors.Wrap(err, "pick modes")
		}
		for _, m := range modes {
			if m.Mode == peaks.Fundamental {
				continue
			}
			fm, err := p.filter(m, arr)
			if errors.Is(err, peaks.ErrNoOverlap) {
				log.Debug("mode dropped by filters", zap.String("mode", m.ID))
				continue
			}
			if err != nil {
				return nil, errors.Wrapf(err, "filter %s", m.ID)
			}
			res.Modes = append(res.Modes, fm)
		}
	}
	return res, nil
}

func (p *Processor) filter(curve *peaks.Peaks, arr *array.Array1D) (*peaks.Peaks, error) {
	var err error
	if p.settings.Peaks.MinPower > 0 {
		if curve, err = curve.FilterPower(p.settings.Peaks.MinPower); err != nil {
			return nil, err
		}
	}
	if p.settings.Peaks.Wavelength {
		lo, hi := arr.WavelengthLimits()
		if curve, err = curve.FilterWavelength(lo, hi); err != nil {
			return nil, err
		}
	}
	return curve, nil
}
