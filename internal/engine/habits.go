package engine

import "time"

// IsDailyCompleted reports whether lastCompleted falls on the same calendar
// day as now, in now's location. Time of day is ignored.
func IsDailyCompleted(lastCompleted *time.Time, now time.Time) bool {
	if lastCompleted == nil {
		return false
	}
	ly, lm, ld := lastCompleted.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ly == ny && lm == nm && ld == nd
}
