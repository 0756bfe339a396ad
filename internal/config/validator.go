package config

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
)

// ValidFormats lists the accepted output.format values.
var ValidFormats = []string{"text", "json"}

// MaxPrecision bounds output.precision.
const MaxPrecision = 12

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string // e.g. "analysis.threshold"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if t := c.Analysis.Threshold; !(t > 0) || math.IsInf(t, 0) {
		errs = append(errs, ValidationError{"analysis.threshold", t, "must be a positive finite number"})
	}
	if ri := c.Analysis.RandomIndexFallback; !(ri > 0) || math.IsInf(ri, 0) {
		errs = append(errs, ValidationError{"analysis.random_index_fallback", ri, "must be a positive finite number"})
	}
	if !slices.Contains(ValidFormats, c.Output.Format) {
		errs = append(errs, ValidationError{"output.format", c.Output.Format, fmt.Sprintf("must be one of %v", ValidFormats)})
	}
	if p := c.Output.Precision; p < 0 || p > MaxPrecision {
		errs = append(errs, ValidationError{"output.precision", p, fmt.Sprintf("must be between 0 and %d", MaxPrecision)})
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, ValidationError{"logging.level", c.Logging.Level, "must be debug, info, warn or error"})
	}

	return errs
}
