package stats

import "math"

// Trend returns the signed whole-number percentage change from previous to
// current. A zero baseline cannot be expressed as a true ratio: any growth
// from zero reports as 100, and zero-to-zero reports as 0.
func Trend(current, previous float64) int {
	if previous > 0 {
		return int(math.Round((current - previous) / previous * 100))
	}
	if current > 0 {
		return 100
	}
	return 0
}
