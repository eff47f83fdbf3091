package peaks

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// row is the flat Parquet layout: one row per (frequency, velocity, power)
// triple, tagged with its curve.
type row struct {
	ID        string  `parquet:"id"`
	Method    string  `parquet:"method"`
	Mode      int64   `parquet:"mode"`
	Frequency float64 `parquet:"frequency"`
	Velocity  float64 `parquet:"velocity"`
	Power     float64 `parquet:"power"`
}

const readBatch = 1024

// WriteParquet writes the suite as Snappy-compressed Parquet rows in curve
// order.
func (s *Suite) WriteParquet(w io.Writer) error {
	pw := parquet.NewGenericWriter[row](w, parquet.Compression(&parquet.Snappy))
	for _, p := range s.curves {
		rows := make([]row, p.Len())
		for i := range rows {
			rows[i] = row{
				ID:        p.ID,
				Method:    p.Method,
				Mode:      int64(p.Mode),
				Frequency: p.Frequency[i],
				Velocity:  p.Velocity[i],
				Power:     p.Power[i],
			}
		}
		if _, err := pw.Write(rows); err != nil {
			_ = pw.Close()
			return fmt.Errorf("peaks: write parquet %s: %w", p.ID, err)
		}
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("peaks: close parquet: %w", err)
	}
	return nil
}

// ReadParquet reads rows written by [Suite.WriteParquet]. Rows are grouped
// by ID in order of first appearance.
func ReadParquet(r io.ReaderAt) (*Suite, error) {
	pr := parquet.NewGenericReader[row](r)
	defer pr.Close()

	var (
		order  []string
		curves = make(map[string]*curveJSON)
		batch  = make([]row, readBatch)
	)
	for {
		n, err := pr.Read(batch)
		for _, rw := range batch[:n] {
			c, ok := curves[rw.ID]
			if !ok {
				c = &curveJSON{ID: rw.ID, Method: rw.Method, Mode: int(rw.Mode)}
				curves[rw.ID] = c
				order = append(order, rw.ID)
			} else if c.Method != rw.Method || int64(c.Mode) != rw.Mode {
				return nil, fmt.Errorf("%w: %s has rows with differing method or mode", ErrInvalid, rw.ID)
			}
			c.Frequency = append(c.Frequency, rw.Frequency)
			c.Velocity = append(c.Velocity, rw.Velocity)
			c.Power = append(c.Power, rw.Power)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("peaks: read parquet: %w", err)
		}
	}

	s := &Suite{index: make(map[string]int, len(order))}
	for _, id := range order {
		c := curves[id]
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
