package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-masw/dsp/window"
	"github.com/cwbudde/algo-masw/wavefield"
)

// ErrInvalidSettings reports a setting outside its domain.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Workflow names.
const (
	TimeDomain      = "time-domain"
	FrequencyDomain = "frequency-domain"
)

// Settings configures the full processing chain.
type Settings struct {
	Workflow  string    `yaml:"workflow"`
	Stack     Stack     `yaml:"stack"`
	Trim      Trim      `yaml:"trim"`
	Taper     Taper     `yaml:"taper"`
	Pad       Pad       `yaml:"pad"`
	Transform Transform `yaml:"transform"`
	Peaks     Peaks     `yaml:"peaks"`
}

// Stack controls how repeated shots are combined in the time domain.
type Stack struct {
	// Align cross-correlates each shot against the first before stacking.
	Align bool `yaml:"align"`
}

// Trim selects the time window kept from every record.
type Trim struct {
	Enabled bool    `yaml:"enabled"`
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`
}

// Taper is the edge window applied after trimming. Slope selects the
// tapered edges: "both", "left" (onset only) or "right".
type Taper struct {
	Type  string  `yaml:"type"`
	Alpha float64 `yaml:"alpha"`
	Slope string  `yaml:"slope"`
}

// Pad sets the target frequency step of the zero-padded records.
type Pad struct {
	Enabled bool    `yaml:"enabled"`
	Df      float64 `yaml:"df"`
}

// Transform configures the wavefield transform and trial grid.
type Transform struct {
	Method    string  `yaml:"method"`
	Weighting string  `yaml:"weighting"`
	Steering  string  `yaml:"steering"`
	Normalize bool    `yaml:"normalize"`
	FMin      float64 `yaml:"fmin"`
	FMax      float64 `yaml:"fmax"`
	VMin      float64 `yaml:"vmin"`
	VMax      float64 `yaml:"vmax"`
	NVel      int     `yaml:"nvel"`
	Spacing   string  `yaml:"spacing"`
	// Workers is the number of goroutines; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Peaks configures picking and the filters applied to each pick.
type Peaks struct {
	Modes    int     `yaml:"modes"`
	MinPower float64 `yaml:"min_power"`
	// Wavelength drops picks outside the array's resolvable wavelengths.
	Wavelength bool `yaml:"wavelength"`
}

// Default returns the settings used when a field is not given.
func Default() Settings {
	return Settings{
		Workflow: TimeDomain,
		Stack:    Stack{Align: true},
		Trim:     Trim{Enabled: true, Start: 0, End: 1},
		Taper:    Taper{Type: window.TypeTukey.String(), Alpha: 0.1, Slope: window.SlopeSymmetric.String()},
		Pad:      Pad{Enabled: true, Df: 0.2},
		Transform: Transform{
			Method:    wavefield.FDBF.String(),
			Weighting: wavefield.WeightSqrt.String(),
			Steering:  wavefield.SteerCylindrical.String(),
			FMin:      5,
			FMax:      100,
			VMin:      80,
			VMax:      600,
			NVel:      400,
			Spacing:   wavefield.SpacingLinear.String(),
		},
		Peaks: Peaks{Modes: 1},
	}
}

// Load reads settings from a YAML file.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes YAML settings over the defaults and validates them. An
// empty document yields the defaults.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Marshal encodes the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks every field.
func (s Settings) Validate() error {
	if s.Workflow != TimeDomain && s.Workflow != FrequencyDomain {
		return invalid("workflow %q", s.Workflow)
	}
	if s.Trim.Enabled && !(finite(s.Trim.Start) && finite(s.Trim.End) && s.Trim.Start < s.Trim.End) {
		return invalid("trim window [%v, %v]", s.Trim.Start, s.Trim.End)
	}
	if _, ok := window.ParseType(s.Taper.Type); !ok {
		return invalid("taper type %q", s.Taper.Type)
	}
	if s.Taper.Alpha < 0 || s.Taper.Alpha > 1 || math.IsNaN(s.Taper.Alpha) {
		return invalid("taper alpha %v", s.Taper.Alpha)
	}
	if _, ok := window.ParseSlope(s.Taper.Slope); !ok {
		return invalid("taper slope %q", s.Taper.Slope)
	}
	if s.Pad.Enabled && !(s.Pad.Df > 0 && finite(s.Pad.Df)) {
		return invalid("pad df %v", s.Pad.Df)
	}
	if _, err := s.TransformOptions(); err != nil {
		return invalid("%v", err)
	}
	if _, err := s.Grid(); err != nil {
		return invalid("%v", err)
	}
	if s.Peaks.Modes < 1 {
		return invalid("peaks modes %d", s.Peaks.Modes)
	}
	if math.IsNaN(s.Peaks.MinPower) {
		return invalid("peaks min_power is NaN")
	}
	return nil
}

// TaperType returns the parsed taper window.
func (s Settings) TaperType() window.Type {
	t, _ := window.ParseType(s.Taper.Type)
	return t
}

// TaperOptions returns the window options of the taper section.
func (s Settings) TaperOptions() []window.Option {
	slope, _ := window.ParseSlope(s.Taper.Slope)
	return []window.Option{window.WithAlpha(s.Taper.Alpha), window.WithSlope(slope)}
}

// Grid builds the trial velocity grid.
func (s Settings) Grid() (wavefield.Grid, error) {
	spacing, err := wavefield.ParseSpacing(s.Transform.Spacing)
	if err != nil {
		return wavefield.Grid{}, err
	}
	return wavefield.NewVelocityGrid(s.Transform.VMin, s.Transform.VMax, s.Transform.NVel, spacing)
}

// TransformOptions translates the transform section into wavefield
// options.
func (s Settings) TransformOptions() ([]wavefield.Option, error) {
	t := s.Transform
	method, err := wavefield.ParseMethod(t.Method)
	if err != nil {
		return nil, err
	}
	opts := []wavefield.Option{
		wavefield.WithMethod(method),
		wavefield.WithAmplitudeNormalization(t.Normalize),
	}
	if method == wavefield.FDBF {
		w, err := wavefield.ParseWeighting(t.Weighting)
		if err != nil {
			return nil, err
		}
		st, err := wavefield.ParseSteering(t.Steering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wavefield.WithWeighting(w), wavefield.WithSteering(st))
	}
	if !(t.FMin >= 0 && t.FMax > t.FMin) {
		return nil, fmt.Errorf("frequency range [%v, %v]", t.FMin, t.FMax)
	}
	opts = append(opts, wavefield.WithFrequencyRange(t.FMin, t.FMax))
	if t.Workers < 0 {
		return nil, fmt.Errorf("workers %d", t.Workers)
	}
	if t.Workers > 0 {
		opts = append(opts, wavefield.WithWorkers(t.Workers))
	}
	return opts, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
