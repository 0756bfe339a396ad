// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSet generates count entities of kind k with sequential IDs and default
// names. It enforces the Kind bounds.
//
// Errors: ErrUnknownKind, ErrCountOutOfRange.
// Complexity: O(count).
func NewSet(k Kind, count int) ([]Entity, error) {
	if k != Criterion && k != Alternative {
		return nil, fmt.Errorf("NewSet(%d): %w", k, ErrUnknownKind)
	}
	lo, hi := k.Bounds()
	if count < lo || count > hi {
		return nil, fmt.Errorf("NewSet(%s, %d): want %d..%d: %w", k, count, lo, hi, ErrCountOutOfRange)
	}

	return Generate(k, count), nil
}

// Generate builds count entities of kind k without bound checks.
// Negative counts yield an empty slice.
func Generate(k Kind, count int) []Entity {
	if count < 0 {
		count = 0
	}
	out := make([]Entity, count)
	for i := range out {
		n := strconv.Itoa(i + 1)
		out[i] = Entity{ID: k.prefix() + n, Name: k.label() + " " + n}
	}

	return out
}

// IDs returns the entity IDs in order.
func IDs(es []Entity) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}

	return ids
}

// Index returns the position of id in es, or -1.
func Index(es []Entity, id string) int {
	for i, e := range es {
		if e.ID == id {
			return i
		}
	}

	return -1
}

// Rename returns a copy of es with the entity id renamed.
// The input slice is not modified.
//
// Errors: ErrUnknownEntity.
func Rename(es []Entity, id, name string) ([]Entity, error) {
	i := Index(es, id)
	if i < 0 {
		return nil, fmt.Errorf("Rename(%q): %w", id, ErrUnknownEntity)
	}
	out := make([]Entity, len(es))
	copy(out, es)
	out[i].Name = name

	return out, nil
}

// ValidateUnique fails with ErrDuplicateID when an ID repeats.
func ValidateUnique(es []Entity) error {
	seen := make(map[string]struct{}, len(es))
	for _, e := range es {
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("ValidateUnique(%q): %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}
	}

	return nil
}

// Named reports whether every entity carries a non-blank name.
func Named(es []Entity) bool {
	for _, e := range es {
		if strings.TrimSpace(e.Name) == "" {
			return false
		}
	}

	return true
}
