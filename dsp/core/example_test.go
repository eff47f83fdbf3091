package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/core"
)

func ExampleZeroExtend() {
	buf := []float64{1, 2}
	buf = core.ZeroExtend(buf, 4)
	fmt.Println(buf)
	// Output:
	// [1 2 0 0]
}

func ExampleIsMultiple() {
	fmt.Println(core.IsMultiple(-0.5, 0.001, 0), core.IsMultiple(0.0015, 0.001, 0))
	// Output:
	// true false
}
