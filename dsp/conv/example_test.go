package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/conv"
)

func ExampleCorrelate() {
	a := []float64{0, 0, 1, 0}
	b := []float64{0, 1, 0, 0}

	corr, _ := conv.Correlate(a, b)
	idx, _ := conv.FindPeak(corr)
	lag := conv.LagFromIndex(idx, len(b))

	fmt.Println(corr)
	fmt.Println("lag:", lag)
	fmt.Println("aligned:", conv.Shift(b, lag))
	// Output:
	// [0 0 0 0 1 0 0]
	// lag: 1
	// aligned: [0 0 1 0]
}
