package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/session"
)

// diagnoseEps is the tolerance for reciprocity and scale checks.
const diagnoseEps = 1e-9

// diagnose checks every matrix of s for reciprocity and logs a warning for
// blank names and for judgements off the Saaty scale.
//
// Errors: comparison.ErrNotReciprocal.
func diagnose(s session.State, logger *slog.Logger) error {
	cs, as := s.Criteria(), s.Alternatives()
	if !entity.Named(cs) {
		logger.Warn("criterion without a name", "ids", blankIDs(cs))
	}
	if len(as) > 0 && !entity.Named(as) {
		logger.Warn("alternative without a name", "ids", blankIDs(as))
	}

	if err := diagnoseMatrix(s.Matrix(), cs, "", logger); err != nil {
		return err
	}
	for _, c := range cs {
		m, ok := s.AlternativeMatrix(c.ID)
		if !ok {
			continue
		}
		if err := diagnoseMatrix(m, as, c.ID, logger); err != nil {
			return err
		}
	}

	return nil
}

func diagnoseMatrix(m comparison.Matrix, es []entity.Entity, criterion string, logger *slog.Logger) error {
	if err := comparison.CheckReciprocal(m, es, diagnoseEps); err != nil {
		if criterion != "" {
			return fmt.Errorf("alternatives under %q: %w", criterion, err)
		}
		return fmt.Errorf("criteria: %w", err)
	}
	for i, row := range es {
		for _, col := range es[i+1:] {
			v, ok := m.At(row.ID, col.ID)
			if !ok || v == comparison.Unset || comparison.IsCanonical(v, diagnoseEps) {
				continue
			}
			logger.Warn("intensity off the Saaty scale",
				"criterion", criterion, "row", row.ID, "col", col.ID, "value", comparison.Format(v))
		}
	}

	return nil
}

func blankIDs(es []entity.Entity) []string {
	var ids []string
	for _, e := range es {
		if !entity.Named([]entity.Entity{e}) {
			ids = append(ids, e.ID)
		}
	}

	return ids
}
