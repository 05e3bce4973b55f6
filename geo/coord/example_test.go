package coord_test

import (
	"fmt"

	"github.com/cwbudde/algo-climgrid/geo/coord"
)

func ExampleLonToIndex() {
	i, _ := coord.LonToIndex([]float64{0, 10, 20, 30}, 22)
	fmt.Println(i)

	// Output:
	// 2
}

func ExampleBounds() {
	b, _ := coord.Bounds([]float64{10, 20, 30})
	fmt.Println(b)

	// Output:
	// [5 15 25 35]
}
