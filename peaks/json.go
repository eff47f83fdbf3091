package peaks

import (
	"encoding/json"
	"fmt"
	"io"
)

type curveJSON struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Mode      int       `json:"mode"`
	Frequency []float64 `json:"frequency"`
	Velocity  []float64 `json:"velocity"`
	Power     []float64 `json:"power"`
}

// WriteJSON encodes the suite as an ordered array of curves. Floats are
// written in shortest round-trip form, so [ReadJSON] restores them
// bit-for-bit.
func (s *Suite) WriteJSON(w io.Writer) error {
	doc := make([]curveJSON, len(s.curves))
	for i, p := range s.curves {
		doc[i] = curveJSON{
			ID:        p.ID,
			Method:    p.Method,
			Mode:      p.Mode,
			Frequency: p.Frequency,
			Velocity:  p.Velocity,
			Power:     p.Power,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("peaks: encode json: %w", err)
	}
	return nil
}

// ReadJSON decodes a suite written by [Suite.WriteJSON]. Every curve is
// revalidated.
func ReadJSON(r io.Reader) (*Suite, error) {
	var doc []curveJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("peaks: decode json: %w", err)
	}
	s := &Suite{index: make(map[string]int, len(doc))}
	for _, c := range doc {
		p, err := NewMode(c.ID, c.Method, c.Mode, c.Frequency, c.Velocity, c.Power)
		if err != nil {
			return nil, err
		}
		if err := s.Append(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
