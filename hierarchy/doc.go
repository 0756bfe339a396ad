// Package hierarchy synthesizes global alternative scores across criteria.
//
// For every criterion the alternatives are compared in their own matrix.
// Each matrix runs through priority.Compute to obtain local weights; a
// criterion without a matrix contributes a uniform 1/|alternatives| instead,
// so a partially filled hierarchy still yields a provisional ranking.
//
// The global score of alternative a is the weighted linear combination
//
//	score[a] = Σ_c criteriaWeight[c] · local[c][a]
//
// and is not re-normalized: when the criteria weights and every local vector
// sum to 1, the scores sum to 1 by linearity.
//
// Local computations are independent and run concurrently; the output does
// not depend on scheduling. Inputs are never modified.
package hierarchy
