package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/session"
)

// ErrNoResults is returned by NewReport for a state that was never calculated.
var ErrNoResults = errors.New("cli: state has no results")

// Row is one ranked entity.
type Row struct {
	Rank   int     `json:"rank"`
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// LocalRow summarizes one criterion of the alternatives level.
type LocalRow struct {
	Criterion   string                `json:"criterion"`
	Weight      float64               `json:"weight"`
	Fallback    bool                  `json:"fallback"`
	Scores      map[string]float64    `json:"scores"`
	Consistency *priority.Consistency `json:"consistency,omitempty"`
}

// Report is the compute payload: JSON as is, text through String.
type Report struct {
	Problem      string               `json:"problem,omitempty"`
	Threshold    float64              `json:"threshold"`
	Criteria     []Row                `json:"criteria"`
	Consistency  priority.Consistency `json:"consistency"`
	Alternatives []Row                `json:"alternatives,omitempty"`
	Locals       []LocalRow           `json:"locals,omitempty"`
	Provisional  bool                 `json:"provisional,omitempty"`

	precision int
}

// NewReport flattens a calculated state.
//
// Errors: ErrNoResults.
func NewReport(s session.State, threshold float64, precision int) (*Report, error) {
	res := s.Results()
	if res == nil || res.Criteria == nil {
		return nil, ErrNoResults
	}
	r := &Report{
		Problem:     s.Problem(),
		Threshold:   threshold,
		Criteria:    rows(res.Criteria.Ranking()),
		Consistency: res.Criteria.Consistency,
		precision:   precision,
	}
	if h := res.Hierarchy; h != nil {
		r.Alternatives = rows(h.Ranking)
		r.Provisional = h.Provisional
		for _, l := range h.Locals {
			lr := LocalRow{Criterion: l.Criterion.Name, Weight: l.Weight, Fallback: l.Fallback, Scores: l.Scores}
			if l.Result != nil {
				c := l.Result.Consistency
				lr.Consistency = &c
			}
			r.Locals = append(r.Locals, lr)
		}
	}

	return r, nil
}

func rows(ranked []priority.Ranked) []Row {
	out := make([]Row, len(ranked))
	for i, rk := range ranked {
		out[i] = Row{Rank: rk.Rank, ID: rk.Entity.ID, Name: rk.Entity.Name, Weight: rk.Weight}
	}

	return out
}

// Consistent reports whether the criteria matrix and every computed
// alternatives matrix pass the threshold.
func (r *Report) Consistent() bool {
	if !r.Consistency.IsConsistent {
		return false
	}
	for _, l := range r.Locals {
		if l.Consistency != nil && !l.Consistency.IsConsistent {
			return false
		}
	}

	return true
}

// String renders the report as aligned text.
func (r *Report) String() string {
	var b strings.Builder
	if r.Problem != "" {
		fmt.Fprintf(&b, "Problem: %s\n\n", r.Problem)
	}

	b.WriteString("Criteria\n")
	r.writeRows(&b, r.Criteria)
	c := r.Consistency
	fmt.Fprintf(&b, "lambda_max=%s  CI=%s  RI=%s  CR=%s  %s (threshold %g)\n",
		r.num(c.LambdaMax), r.num(c.CI), r.num(c.RI), r.num(c.CR), verdict(c.IsConsistent), r.Threshold)

	if len(r.Alternatives) == 0 {
		return b.String()
	}

	b.WriteString("\nAlternatives\n")
	r.writeRows(&b, r.Alternatives)
	if r.Provisional {
		b.WriteString("provisional: some criteria have incomplete comparisons and use uniform scores\n")
	}

	b.WriteString("\nBy criterion\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  CRITERION\tWEIGHT\tCR\tSTATUS")
	for _, l := range r.Locals {
		if l.Consistency == nil {
			fmt.Fprintf(tw, "  %s\t%s\t-\tuniform fallback\n", l.Criterion, r.num(l.Weight))
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", l.Criterion, r.num(l.Weight), r.num(l.Consistency.CR), verdict(l.Consistency.IsConsistent))
	}
	_ = tw.Flush()

	return b.String()
}

func (r *Report) writeRows(b *strings.Builder, rs []Row) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  RANK\tID\tNAME\tWEIGHT")
	for _, row := range rs {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", row.Rank, row.ID, row.Name, r.num(row.Weight))
	}
	_ = tw.Flush()
}

func (r *Report) num(v float64) string { return fmt.Sprintf("%.*f", r.precision, v) }

func verdict(ok bool) string {
	if ok {
		return "consistent"
	}

	return "inconsistent"
}
