package wavefield

import "fmt"

// Method selects the transform.
type Method int

const (
	PhaseShift Method = iota
	FDBF
)

// Weighting selects the FDBF channel weights.
type Weighting int

const (
	WeightNone Weighting = iota
	// WeightSqrt multiplies each channel by the square root of its offset,
	// compensating geometric spreading.
	WeightSqrt
	// WeightInverseAmplitude scales each channel to unit magnitude.
	WeightInverseAmplitude
)

// Steering selects the FDBF steering vector.
type Steering int

const (
	SteerPlane Steering = iota
	// SteerCylindrical uses the phase of the Hankel function H0^(2)(k*x),
	// which models the near-field curvature of a point source.
	SteerCylindrical
)

var (
	methodNames    = []string{"phase-shift", "fdbf"}
	weightingNames = []string{"none", "sqrt", "invamp"}
	steeringNames  = []string{"plane", "cylindrical"}
)

func (m Method) String() string    { return name(methodNames, int(m)) }
func (w Weighting) String() string { return name(weightingNames, int(w)) }
func (s Steering) String() string  { return name(steeringNames, int(s)) }

// ParseMethod maps a method name to its Method.
func ParseMethod(s string) (Method, error) {
	i, err := parse(methodNames, s, "method")
	return Method(i), err
}

// ParseWeighting maps a weighting name to its Weighting.
func ParseWeighting(s string) (Weighting, error) {
	i, err := parse(weightingNames, s, "weighting")
	return Weighting(i), err
}

// ParseSteering maps a steering name to its Steering.
func ParseSteering(s string) (Steering, error) {
	i, err := parse(steeringNames, s, "steering")
	return Steering(i), err
}

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func parse(names []string, s, what string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidOption, what, s)
}
