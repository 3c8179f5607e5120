package ledger

import "time"

// Streak returns the number of consecutive days with a positive recorded
// total, ending at today. A day with no record (or a zero total) breaks the
// chain, except for today itself: a streak still in progress is counted from
// yesterday when today has no qualifying entry yet.
func Streak(l *Ledger, today time.Time) int {
	cursor := today
	if !qualifies(l, cursor) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for qualifies(l, cursor) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func qualifies(l *Ledger, day time.Time) bool {
	r, ok := l.Get(DayKey(day))
	return ok && r.Total > 0
}
