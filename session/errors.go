// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrIncompleteMatrix is returned by Calculate while some upper-triangular
	// criteria comparison is still unset.
	ErrIncompleteMatrix = errors.New("session: comparison matrix is incomplete")

	// ErrNoCriteria is returned when an operation needs criteria that were never defined.
	ErrNoCriteria = errors.New("session: no criteria defined")

	// ErrUnknownCriterion is returned for an alternatives matrix of an unknown criterion.
	ErrUnknownCriterion = errors.New("session: unknown criterion")
)
