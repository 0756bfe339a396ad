// Package problem reads and writes analysis definitions as YAML and replays
// them onto a session.
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/session"
)

var (
	// ErrUnknownRef is returned when a judgement names no known entity.
	ErrUnknownRef = errors.New("problem: unknown entity reference")
	// ErrAmbiguousRef is returned when a name matches several entities.
	ErrAmbiguousRef = errors.New("problem: ambiguous entity reference")
	// ErrBadIntensity is returned for a value that is neither a number nor "a/b".
	ErrBadIntensity = errors.New("problem: malformed intensity")
	// ErrDuplicateRef is returned when two alternative_comparisons keys name
	// the same criterion.
	ErrDuplicateRef = errors.New("problem: duplicate entity reference")
)

// File is the on-disk form of one analysis.
type File struct {
	// Problem is the free-text decision statement.
	Problem string `yaml:"problem"`

	// Criteria lists criterion names in order; ids c1..cN follow this order.
	Criteria []string `yaml:"criteria"`

	// Alternatives lists alternative names; empty for a criteria-only analysis.
	Alternatives []string `yaml:"alternatives,omitempty"`

	// Comparisons are the criteria judgements.
	Comparisons []Judgement `yaml:"comparisons"`

	// AlternativeComparisons maps a criterion reference to its alternatives judgements.
	AlternativeComparisons map[string][]Judgement `yaml:"alternative_comparisons,omitempty"`
}

// Judgement reads "Row is Value times as important as Col".
// Row and Col may be ids (c1, a2) or names.
type Judgement struct {
	Row   string    `yaml:"row"`
	Col   string    `yaml:"col"`
	Value Intensity `yaml:"value"`
}

// Intensity is a comparison value written either as a number (3, 0.5) or as
// a fraction ("1/3").
type Intensity float64

// UnmarshalYAML accepts numbers and "a/b" fractions.
func (v *Intensity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrBadIntensity)
	}
	f, err := ParseIntensity(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = Intensity(f)

	return nil
}

// MarshalYAML writes exact reciprocals of whole numbers as "1/k" and every
// other value as a number.
func (v Intensity) MarshalYAML() (any, error) {
	f := float64(v)
	if f > 0 && f < 1 {
		if s := comparison.Format(f); strings.HasPrefix(s, "1/") {
			return s, nil
		}
	}

	return f, nil
}

// ParseIntensity parses "3", "0.25" or "1/3".
func ParseIntensity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, fmt.Errorf("%q: %w", s, ErrBadIntensity)
		}
		return n / d, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrBadIntensity)
	}

	return f, nil
}

// Parse decodes one File from r. Unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// Encode writes f as YAML with two-space indentation.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

// Apply replays f onto a fresh session: problem text, counts, names and every
// judgement. The returned state sits on the comparison step.
//
// Alternative judgements are replayed in criterion order.
//
// Errors: entity.ErrCountOutOfRange, ErrUnknownRef, ErrAmbiguousRef,
// ErrDuplicateRef, session.ErrUnknownCriterion and the comparison.Set errors.
func (f *File) Apply(opts ...session.Option) (session.State, error) {
	s := session.New(opts...).SetProblem(f.Problem)

	s, err := s.SetCriteriaCount(len(f.Criteria))
	if err != nil {
		return s, fmt.Errorf("criteria: %w", err)
	}
	if len(f.Alternatives) > 0 {
		if s, err = s.SetAlternativesCount(len(f.Alternatives)); err != nil {
			return s, fmt.Errorf("alternatives: %w", err)
		}
	}
	for i, c := range s.Criteria() {
		if s, err = s.RenameCriterion(c.ID, f.Criteria[i]); err != nil {
			return s, err
		}
	}
	for i, a := range s.Alternatives() {
		if s, err = s.RenameAlternative(a.ID, f.Alternatives[i]); err != nil {
			return s, err
		}
	}

	cs, as := s.Criteria(), s.Alternatives()
	for i, j := range f.Comparisons {
		row, col, err := resolvePair(cs, j)
		if err != nil {
			return s, fmt.Errorf("comparisons[%d]: %w", i, err)
		}
		if s, err = s.UpdateComparison(row, col, float64(j.Value)); err != nil {
			return s, fmt.Errorf("comparisons[%d]: %w", i, err)
		}
	}
	byCrit := make(map[string]string, len(f.AlternativeComparisons))
	for ref := range f.AlternativeComparisons {
		crit, err := resolve(cs, ref)
		if err != nil {
			return s, fmt.Errorf("alternative_comparisons[%s]: %w", ref, err)
		}
		if prev, ok := byCrit[crit]; ok {
			a, b := min(prev, ref), max(prev, ref)
			return s, fmt.Errorf("alternative_comparisons[%s] and [%s]: %q: %w", a, b, crit, ErrDuplicateRef)
		}
		byCrit[crit] = ref
	}
	for _, c := range cs {
		ref, ok := byCrit[c.ID]
		if !ok {
			continue
		}
		for i, j := range f.AlternativeComparisons[ref] {
			row, col, err := resolvePair(as, j)
			if err != nil {
				return s, fmt.Errorf("alternative_comparisons[%s][%d]: %w", ref, i, err)
			}
			if s, err = s.UpdateAlternativeComparison(c.ID, row, col, float64(j.Value)); err != nil {
				return s, fmt.Errorf("alternative_comparisons[%s][%d]: %w", ref, i, err)
			}
		}
	}

	return s.Next().Next(), nil
}

func resolvePair(es []entity.Entity, j Judgement) (row, col string, err error) {
	if row, err = resolve(es, j.Row); err != nil {
		return "", "", err
	}
	if col, err = resolve(es, j.Col); err != nil {
		return "", "", err
	}

	return row, col, nil
}

// resolve maps an id or a unique name to an id. Ids win over names.
func resolve(es []entity.Entity, ref string) (string, error) {
	if entity.Index(es, ref) >= 0 {
		return ref, nil
	}
	id := ""
	for _, e := range es {
		if e.Name != ref {
			continue
		}
		if id != "" {
			return "", fmt.Errorf("%q: %w", ref, ErrAmbiguousRef)
		}
		id = e.ID
	}
	if id == "" {
		return "", fmt.Errorf("%q: %w", ref, ErrUnknownRef)
	}

	return id, nil
}

// Template returns a small, complete example analysis.
func Template() *File {
	return &File{
		Problem:      "Choose a supplier",
		Criteria:     []string{"Price", "Quality", "Delivery"},
		Alternatives: []string{"Acme", "Globex"},
		Comparisons: []Judgement{
			{Row: "Price", Col: "Quality", Value: 3},
			{Row: "Price", Col: "Delivery", Value: 5},
			{Row: "Quality", Col: "Delivery", Value: 3},
		},
		AlternativeComparisons: map[string][]Judgement{
			"Price":    {{Row: "Acme", Col: "Globex", Value: 3}},
			"Quality":  {{Row: "Acme", Col: "Globex", Value: Intensity(1.0 / 5)}},
			"Delivery": {{Row: "Acme", Col: "Globex", Value: 1}},
		},
	}
}
