package statkit_test

import (
	"fmt"

	"github.com/statsmith/statkit"
)

func ExampleCenters() {
	b, _ := statkit.Centers([]float64{1, 2, 4, 7, 11, 16, 22}, true)
	fmt.Println(b)
	// Output: [0.5 1.5 3 5.5 9 13.5 19 25]
}

func ExampleDownscale() {
	// Four intervals with a constant aggregate reconstruct to a
	// constant series.
	out, _ := statkit.Downscale(
		[]float64{5, 5, 5, 5},
		[]float64{1, 2, 3, 4},
		[]int{2},
	)
	fmt.Println(out)
	// Output: [5 5 5 5 5 5 5 5]
}
