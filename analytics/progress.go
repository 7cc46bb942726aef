// Package analytics derives dashboard and report views from fetched
// collections. Every function here is pure: no I/O, no retained state,
// inputs are never mutated.
package analytics

import "math"

// ProgressPercent returns the completion percentage rounded to the nearest
// whole number, or 0 when there is nothing to complete.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
