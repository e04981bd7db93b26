package stats

import "time"

// dayBounds returns local midnight of the day containing t and midnight of
// the following day, so date windows are always half-open [start, end).
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
