package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-masw/peaks"
)

type statsOptions struct {
	inputs     []string
	fmin       float64
	fmax       float64
	n          int
	logSpacing bool
	median     bool
	minPower   float64
	mode       int
}

func runStats(w io.Writer, o statsOptions) error {
	if len(o.inputs) == 0 {
		return errors.New("at least one --in is required")
	}
	suite, err := peaks.NewSuite()
	if err != nil {
		return err
	}
	for _, path := range o.inputs {
		s, err := readSuite(path)
		if err != nil {
			return err
		}
		for i := 0; i < s.Len(); i++ {
			if err := suite.Append(s.At(i)); err != nil {
				return errors.Wrap(err, path)
			}
		}
	}
	suite = suite.SelectMode(o.mode)
	if suite.Len() == 0 {
		return errors.Wrapf(peaks.ErrNoOverlap, "no mode %d curves", o.mode)
	}
	if o.minPower > 0 {
		if suite, err = suite.FilterPower(o.minPower); err != nil {
			return err
		}
	}

	var grid []float64
	if o.logSpacing {
		grid, err = peaks.LogGrid(o.fmin, o.fmax, o.n)
	} else {
		grid, err = peaks.LinearGrid(o.fmin, o.fmax, o.n)
	}
	if err != nil {
		return err
	}
	combine := peaks.Mean
	if o.median {
		combine = peaks.Median
	}
	st, err := suite.Statistics(grid, combine, peaks.ForMode(o.mode))
	if err != nil {
		return err
	}

	spread := "std"
	if combine == peaks.Median {
		spread = "iqr"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "mode %d, %d curves\n", st.Mode, suite.Len())
	fmt.Fprintf(tw, "frequency\t%s\t%s\tcount\t\n", combine, spread)
	for i := range st.Frequency {
		fmt.Fprintf(tw, "%.3f\t%.2f\t%.2f\t%d\t\n", st.Frequency[i], st.Center[i], st.Spread[i], st.Count[i])
	}
	return tw.Flush()
}
