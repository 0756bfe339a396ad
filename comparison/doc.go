// Package comparison holds pairwise-comparison matrices and the Saaty scale.
//
// A Matrix maps a row entity ID to a column entity ID to a Saaty intensity.
// Build creates the initial matrix for an entity set: diagonal 1, every other
// cell Unset (0). Set performs one logical edit, writing M[i][j]=v and its
// reciprocal M[j][i]=1/v together; all edits are copy-on-write so a Matrix
// held by a caller never changes underneath it.
//
// Completeness is judged on the upper triangle in entity order: a matrix is
// complete when every cell (i, j) with i < j holds a nonzero value. The
// priority engine itself accepts partial matrices; gating on IsComplete is
// the caller's job.
//
// Saaty helpers convert between intensities (1/9..9) and the symmetric
// slider positions (-8..8) and render human labels such as
// "Strong Importance for Price".
package comparison
