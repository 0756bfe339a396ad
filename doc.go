// Package ahp is an Analytic Hierarchy Process engine: pairwise comparison
// matrices in, priority weights and a consistency diagnostic out.
//
// What is in the box?
//
//   - Entities with stable ids (c1.., a1..) and editable display names
//   - Reciprocal comparison matrices keyed by id, edited copy-on-write
//   - The normalized-column approximation of the principal eigenvector,
//     with λmax, CI, RI and CR
//   - Two-level synthesis: criteria weights times local alternative scores
//   - An immutable session driver with completeness gating
//   - A CLI that reads YAML problem files
//
// Layout:
//
//	entity/       ids, names, count bounds
//	comparison/   comparison matrices, Saaty scale and slider mapping
//	matrix/       dense row-major kernel (column sums, scaling, M·v)
//	priority/     weights, consistency, ranking
//	hierarchy/    global alternative scores
//	session/      step-by-step analysis state
//	cmd/ahp       command line entry point
//
// Quick example:
//
//	es := []entity.Entity{{ID: "c1", Name: "Price"}, {ID: "c2", Name: "Quality"}}
//	m, _ := comparison.Build(es).Set("c1", "c2", 3)
//	res, _ := priority.Compute(m, es)
//	// res.Weights: c1=0.75, c2=0.25
//
//	go install github.com/katalvlaran/ahp/cmd/ahp@latest
package ahp
