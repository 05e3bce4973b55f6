package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-climgrid/stats/smooth"
)

func ExampleRunningMean() {
	out, _ := smooth.RunningMean([]float64{1, 2, 3, 4}, 2)
	fmt.Println(out)

	// Output:
	// [1 1.5 2.5 3.5]
}

func ExampleRunning() {
	r, _ := smooth.NewRunning(3)
	for _, x := range []float64{3, 6, 9, 12} {
		fmt.Printf("%.1f ", r.Process(x))
	}
	fmt.Println()

	// Output:
	// 3.0 4.5 6.0 9.0
}
