// SPDX-License-Identifier: MIT

package priority

// randomIndex holds Saaty's Random Index for n = 1..15 (index n-1).
var randomIndex = [...]float64{
	0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49, 1.51, 1.54, 1.56, 1.57, 1.59,
}

// MaxTabulatedN is the largest n with a tabulated Random Index.
const MaxTabulatedN = len(randomIndex)

// DefaultRandomIndexFallback is used for n > MaxTabulatedN. It repeats the
// n = 15 entry; published tables differ beyond that size.
const DefaultRandomIndexFallback = 1.59

// RandomIndex returns the tabulated RI for n, DefaultRandomIndexFallback for
// n > 15 and 0 for n < 1.
func RandomIndex(n int) float64 {
	return randomIndexWith(n, DefaultRandomIndexFallback)
}

func randomIndexWith(n int, fallback float64) float64 {
	switch {
	case n < 1:
		return 0
	case n > MaxTabulatedN:
		return fallback
	default:
		return randomIndex[n-1]
	}
}
