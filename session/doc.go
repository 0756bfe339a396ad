// Package session drives an AHP analysis through its four steps:
// problem statement, entity definition, pairwise comparison and results.
//
// A State is an immutable snapshot. Every transition (SetCriteriaCount,
// UpdateComparison, Calculate, ...) returns a new State and leaves the
// receiver untouched, so a caller can keep any earlier snapshot as an undo
// point or hand it to another goroutine.
//
// Invariants kept by the transitions:
//   - Changing the criteria or alternatives count rebuilds every affected
//     matrix from scratch (diagonal 1, all else unset).
//   - Any comparison edit drops previously calculated results.
//   - Calculate refuses to run until the criteria matrix is complete
//     (ErrIncompleteMatrix). Incomplete alternative matrices are treated as
//     absent and fall back to uniform local scores; the results are then
//     flagged provisional.
package session
