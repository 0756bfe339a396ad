// Package entity models the things being compared: criteria and alternatives.
//
// An Entity is an {ID, Name} pair. IDs are stable and unique within a Set;
// names are free text the user may edit at any time. Two kinds exist,
// Criterion and Alternative. They are structurally identical but never mixed
// in one comparison matrix.
//
// Sets are generated with sequential IDs ("c1".."cN" for criteria,
// "a1".."aN" for alternatives) and default names ("Criterion 1", ...).
// Count bounds (2..15 criteria, 2..7 alternatives) are checked by NewSet;
// the comparison and priority packages accept any size.
package entity
