// SPDX-License-Identifier: MIT

package hierarchy

import "errors"

var (
	// ErrMissingWeight is returned when a criterion has no entry in criteriaWeights.
	ErrMissingWeight = errors.New("hierarchy: missing criterion weight")

	// ErrUnknownCriterion is returned when a matrix is keyed by an id outside the criteria.
	ErrUnknownCriterion = errors.New("hierarchy: matrix for unknown criterion")

	// ErrNoAlternatives is returned when the alternative list is empty.
	ErrNoAlternatives = errors.New("hierarchy: no alternatives")

	// ErrNoCriteria is returned when the criteria list is empty.
	ErrNoCriteria = errors.New("hierarchy: no criteria")
)
