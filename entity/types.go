// SPDX-License-Identifier: MIT

package entity

// Kind distinguishes criteria from alternatives.
type Kind int

const (
	// Criterion entities are weighed against each other at the top level.
	Criterion Kind = iota
	// Alternative entities are compared once per criterion.
	Alternative
)

// Count bounds per Kind.
const (
	MinCriteria     = 2
	MaxCriteria     = 15
	MinAlternatives = 2
	MaxAlternatives = 7
)

// String returns "criterion" or "alternative".
func (k Kind) String() string {
	switch k {
	case Criterion:
		return "criterion"
	case Alternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// Bounds returns the inclusive count range allowed for k.
func (k Kind) Bounds() (lo, hi int) {
	switch k {
	case Criterion:
		return MinCriteria, MaxCriteria
	case Alternative:
		return MinAlternatives, MaxAlternatives
	default:
		return 0, -1
	}
}

// prefix is the ID prefix for k.
func (k Kind) prefix() string {
	if k == Alternative {
		return "a"
	}

	return "c"
}

// label is the default-name prefix for k.
func (k Kind) label() string {
	if k == Alternative {
		return "Alternative"
	}

	return "Criterion"
}

// Entity is one criterion or alternative.
type Entity struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
