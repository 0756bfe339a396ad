// SPDX-License-Identifier: MIT

package comparison

import (
	"fmt"
	"math"
	"strconv"
)

// Slider bounds: position 0 is equal importance, +8 is 9 in favor of the row,
// -8 is 9 in favor of the column.
const (
	SliderMin = -8
	SliderMax = 8
)

// ScaleEntry is one row of the reference Saaty scale.
type ScaleEntry struct {
	Value string
	Label string
}

// Scale is the reference table shown next to comparison inputs.
var Scale = []ScaleEntry{
	{Value: "1", Label: "Equal Importance"},
	{Value: "3", Label: "Moderate Importance"},
	{Value: "5", Label: "Strong Importance"},
	{Value: "7", Label: "Very Strong Importance"},
	{Value: "9", Label: "Extreme Importance"},
	{Value: "2, 4, 6, 8", Label: "Intermediate values"},
}

// Intensities lists the 17 canonical Saaty values in ascending order:
// 1/9, 1/8, ..., 1/2, 1, 2, ..., 9.
func Intensities() []float64 {
	out := make([]float64, 0, SliderMax-SliderMin+1)
	for s := SliderMin; s <= SliderMax; s++ {
		v, _ := FromSlider(s)
		out = append(out, v)
	}

	return out
}

// FromSlider maps a slider position in -8..8 to an intensity:
// s >= 0 gives s+1, s < 0 gives 1/(|s|+1).
//
// Errors: ErrInvalidIntensity for positions out of range.
func FromSlider(s int) (float64, error) {
	if s < SliderMin || s > SliderMax {
		return 0, fmt.Errorf("FromSlider(%d): %w", s, ErrInvalidIntensity)
	}
	if s >= 0 {
		return float64(s + 1), nil
	}

	return 1 / float64(-s+1), nil
}

// ToSlider maps an intensity back to its nearest slider position.
// Unset maps to 0; values beyond the scale clamp to ±8.
func ToSlider(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	// Clamp before converting: int() of a huge float is undefined.
	if v >= 1 {
		return int(math.Round(min(v, SliderMax+1))) - 1
	}

	return -(int(math.Round(min(1/v, -SliderMin+1))) - 1)
}

// maxReciprocal bounds the k written as "1/k".
const maxReciprocal = 1e9

// Format renders an intensity the way it is displayed in a matrix cell:
// "3" for whole values, "1/3" for exact reciprocals of whole numbers, "-"
// for Unset. Any other value below 1 is written in %g form.
func Format(v float64) string {
	switch {
	case v == Unset:
		return "-"
	case v >= 1:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v > 0 {
		r := 1 / v
		if k := math.Round(r); k <= maxReciprocal && math.Abs(r-k) <= 1e-9*k {
			return "1/" + strconv.Itoa(int(k))
		}
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// IsCanonical reports whether v is one of Intensities within eps.
func IsCanonical(v, eps float64) bool {
	for _, c := range Intensities() {
		if math.Abs(v-c) <= eps {
			return true
		}
	}

	return false
}

// Describe labels a comparison for the given row and column names, e.g.
// "Strong Importance for Price". Values are snapped to the slider first.
func Describe(v float64, rowName, colName string) string {
	s := ToSlider(v)
	if s == 0 {
		return "Equal Importance"
	}
	importance := s
	favored := rowName
	if s < 0 {
		importance = -s
		favored = colName
	}
	importance++

	var desc string
	switch {
	case importance <= 3:
		desc = "Moderate"
	case importance <= 5:
		desc = "Strong"
	case importance <= 7:
		desc = "Very Strong"
	default:
		desc = "Extreme"
	}

	return desc + " Importance for " + favored
}
