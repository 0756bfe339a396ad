// Package matrix is the dense numeric kernel behind priority derivation.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/±Inf rejected by default).
//   - Kernels over the Matrix interface: Transpose, ScaleCols, MatVec.
//   - Reductions: RowSums, ColSums, Sum, and the AllClose comparator.
//
// Matrices here are pairwise-comparison sized (n ≤ 15). Loop orders are fixed
// and user input never causes a panic; errors are sentinels matched with errors.Is.
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{1, 3}, {1.0 / 3, 1}})
//	sums, _ := matrix.ColSums(d) // [1.333.., 4]
package matrix
