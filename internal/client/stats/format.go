package stats

import (
	"math"
	"strconv"
)

// FormatXP renders an XP amount: "999 XP", "15K", "2M".
func FormatXP(v float64) string {
	return formatMagnitude(v, " XP")
}

// FormatPoints renders audit points: "999 pts", "15K", "2M".
func FormatPoints(v float64) string {
	return formatMagnitude(v, " pts")
}

func formatMagnitude(v float64, unit string) string {
	switch {
	case v < 1000:
		return strconv.FormatFloat(v, 'f', -1, 64) + unit
	case v < 1_000_000:
		return strconv.FormatFloat(roundHalfUp(v/1000), 'f', 0, 64) + "K"
	default:
		return strconv.FormatFloat(roundHalfUp(v/1_000_000), 'f', 0, 64) + "M"
	}
}

// FormatKilo renders a profile total as rounded thousands with a lowercase
// "k", or "0" when the total is zero.
func FormatKilo(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(roundHalfUp(v/1000), 'f', 0, 64) + "k"
}

// FormatRatio renders an audit ratio with one decimal.
func FormatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
