package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-climgrid/dsp/conv"
)

func ExampleDirect() {
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{1, 1}

	result, _ := conv.Direct(signal, kernel)
	fmt.Println(result)

	// Output:
	// [1 3 5 7 4]
}

func ExampleCausal() {
	// Trailing two-sample sums: every output only sees past and current input.
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{1, 1}

	result, _ := conv.Causal(signal, kernel)
	fmt.Println(result)

	// Output:
	// [1 3 5 7]
}
