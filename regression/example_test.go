package regression_test

import (
	"fmt"

	"github.com/heatwise/coptrend/dataset"
	"github.com/heatwise/coptrend/regression"
)

// ExampleRobustLinear fits a line over clean, collinear observations.
func ExampleRobustLinear() {
	points := []dataset.Point{
		{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7},
	}

	result := regression.RobustLinear(points)
	fmt.Printf("Slope: %.2f\n", result.Slope)
	fmt.Printf("Intercept: %.2f\n", result.Intercept)
	fmt.Printf("R²: %.2f\n", result.RSquared)

	// Output:
	// Slope: 2.00
	// Intercept: 1.00
	// R²: 1.00
}
