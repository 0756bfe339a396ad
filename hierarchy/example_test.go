package hierarchy_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/hierarchy"
)

// ExampleAggregate combines two criteria (60% / 40%) over two alternatives.
// The second criterion has no matrix yet and falls back to a uniform split.
func ExampleAggregate() {
	criteria := []entity.Entity{{ID: "cost", Name: "Cost"}, {ID: "comfort", Name: "Comfort"}}
	cars := []entity.Entity{{ID: "x", Name: "Car X"}, {ID: "y", Name: "Car Y"}}

	cost, _ := comparison.Build(cars).Set("x", "y", 4) // X is cheaper

	scores, err := hierarchy.Aggregate(
		map[string]float64{"cost": 0.6, "comfort": 0.4},
		map[string]comparison.Matrix{"cost": cost},
		cars, criteria,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.2f y=%.2f\n", scores["x"], scores["y"])
	// Output:
	// x=0.68 y=0.32
}
