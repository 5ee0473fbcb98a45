// Package forecast implements the simulation core: recurrence expansion,
// business-day adjustment, the transaction pipeline, the ledger runner,
// monthly summaries with the safe-surplus figure, scenario overlays, and
// debt payoff projection. Everything here is synchronous and stateless;
// transforming entry points clone their input and mutate only the clone.
package forecast

import "time"

// day normalizes a time to midnight UTC. All forecast math runs on
// day-granular UTC dates.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// date builds a midnight-UTC date.
func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the day count of the given month.
func daysInMonth(year int, month time.Month) int {
	return date(year, month+1, 0).Day()
}

// daysBetween returns b - a in whole days for midnight-UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// monthKey returns the "2006-01" bucket key for a date.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// isoWeekday maps time.Weekday to 0 = Monday through 6 = Sunday.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// today returns the current date at midnight UTC.
func today() time.Time {
	return day(time.Now().UTC())
}
