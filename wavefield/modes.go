package wavefield

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-masw/peaks"
)

// Mode is one local maximum of a frequency row.
type Mode struct {
	Velocity float64
	Power    float64
}

// Modes returns, per frequency, up to n local maxima of the power row
// ordered by decreasing power. Plateaus count once, at their lowest
// velocity; the grid ends count as maxima when they exceed their single
// neighbour.
func (s *Surface) Modes(n int) [][]Mode {
	out := make([][]Mode, len(s.Power))
	for i, row := range s.Power {
		idx := localMaxima(row)
		sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] > row[idx[b]] })
		if len(idx) > n {
			idx = idx[:max(n, 0)]
		}
		modes := make([]Mode, len(idx))
		for k, j := range idx {
			modes[k] = Mode{Velocity: s.Velocities[j], Power: row[j]}
		}
		out[i] = modes
	}
	return out
}

// PeaksByMode splits the ranked maxima of [Surface.Modes] into one curve
// per rank, tagged with the rank as its mode. Rank 0 is the fundamental and
// keeps id; rank r > 0 is named "<id>/<r>". Curve r only contains
// frequencies with at least r+1 maxima; ranks with no points are omitted.
func (s *Surface) PeaksByMode(id string, n int) ([]*peaks.Peaks, error) {
	modes := s.Modes(n)
	var out []*peaks.Peaks
	for r := 0; r < n; r++ {
		var f, v, p []float64
		for i, m := range modes {
			if len(m) <= r {
				continue
			}
			f = append(f, s.Frequencies[i])
			v = append(v, m[r].Velocity)
			p = append(p, m[r].Power)
		}
		if len(f) == 0 {
			continue
		}
		name := id
		if r > peaks.Fundamental {
			name = fmt.Sprintf("%s/%d", id, r)
		}
		curve, err := peaks.NewMode(name, s.Method, r, f, v, p)
		if err != nil {
			return nil, err
		}
		out = append(out, curve)
	}
	return out, nil
}

func localMaxima(row []float64) []int {
	var idx []int
	n := len(row)
	for j := 0; j < n; j++ {
		if j > 0 && row[j-1] >= row[j] {
			continue
		}
		// Walk across a plateau.
		k := j
		for k+1 < n && row[k+1] == row[j] {
			k++
		}
		if k+1 < n && row[k+1] > row[j] {
			continue
		}
		if n == 1 || j > 0 || k+1 < n {
			idx = append(idx, j)
		}
	}
	return idx
}
