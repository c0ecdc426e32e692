package estat_test

import (
	"fmt"

	"github.com/katalvlaran/emfield/estat"
)

// ExampleChargeNearSphere sets up the image system of a charge outside
// a grounded sphere.
func ExampleChargeNearSphere() {
	s, err := estat.NewChargeNearSphere(1e-9, 0.1, 0.3)
	if err != nil {
		fmt.Println("images:", err)
		return
	}
	fmt.Printf("q' = %.3f nC at %.1f mm\n", s.ImageChargeValue()*1e9, s.ImageDistance()*1e3)
	// Output:
	// q' = -0.333 nC at 33.3 mm
}
