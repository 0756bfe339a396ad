// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/matrix"
)

// ExampleScaleCols normalizes the columns of a 2×2 comparison matrix so that
// each one sums to 1.
func ExampleScaleCols() {
	d, _ := matrix.NewDenseFromRows([][]float64{{1, 3}, {1.0 / 3, 1}})
	sums, _ := matrix.ColSums(d)
	inv := []float64{1 / sums[0], 1 / sums[1]}
	n, _ := matrix.ScaleCols(d, inv)
	fmt.Print(n)
	// Output:
	// [0.75, 0.75]
	// [0.25, 0.25]
}
