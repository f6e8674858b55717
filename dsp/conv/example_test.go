package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/conv"
)

func ExampleDirect() {
	result, _ := conv.Direct([]float64{1, 2, 3}, []float64{1, 1})

	fmt.Printf("%.0f\n", result)

	// Output:
	// [1 3 5 3]
}

func ExampleDirectTo() {
	a := []float64{1, 2, 3}
	b := []float64{0.5, 0.5}

	dst := make([]float64, len(a)+len(b)-1)
	conv.DirectTo(dst, a, b)

	fmt.Printf("%.1f\n", dst)

	// Output:
	// [0.5 1.5 2.5 1.5]
}
