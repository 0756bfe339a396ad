// Package priority derives AHP priority weights and a consistency verdict
// from a pairwise-comparison matrix.
//
// 🚀 What does it compute?
//
//	Given a completed reciprocal matrix M over n entities, Compute runs the
//	normalized-column approximation of the principal eigenvector:
//
//	  1. column sums        colSum[j] = Σ_i M[i][j]
//	  2. normalization      N[i][j]   = M[i][j] / colSum[j]
//	  3. priority vector    w[i]      = (Σ_j N[i][j]) / n
//	  4. weighted sums      wsv       = M · w
//	  5. principal λ        λmax      = (Σ_i wsv[i] / w[i]) / n
//	  6. consistency index  CI        = (λmax − n) / (n − 1), 0 when n == 1
//	  7. random index       RI        = Saaty table for n (1.59 beyond 15)
//	  8. consistency ratio  CR        = CI / RI, 0 when RI == 0
//	  9. verdict            CR < 0.10 (see WithThreshold)
//
// ⚙️ Usage:
//
//	res, err := priority.Compute(m, criteria)
//	if err != nil {
//	  // ErrInvalidMatrix or ErrDegenerateInput
//	}
//	fmt.Println(res.Weights["c1"], res.Consistency.CR, res.Consistency.IsConsistent)
//
// The engine does not refuse partial matrices: unset (0) cells simply yield
// numerically meaningless weights. Gate on comparison.IsComplete first.
//
// Every call is a pure function of its inputs, so concurrent calls over
// different matrices need no synchronization.
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n²)
package priority
