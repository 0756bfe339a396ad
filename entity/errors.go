// SPDX-License-Identifier: MIT

package entity

import "errors"

var (
	// ErrCountOutOfRange is returned when a requested entity count lies outside
	// the bounds for its Kind.
	ErrCountOutOfRange = errors.New("entity: count out of range")

	// ErrUnknownEntity is returned when an ID is not part of the set.
	ErrUnknownEntity = errors.New("entity: unknown id")

	// ErrDuplicateID is returned when a sequence holds the same ID twice.
	ErrDuplicateID = errors.New("entity: duplicate id")

	// ErrUnknownKind is returned for a Kind value outside Criterion/Alternative.
	ErrUnknownKind = errors.New("entity: unknown kind")
)
