package forecast

import (
	"time"

	"runway/internal/model"
)

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether the date is a business day under the policy.
// Weekends are the only possible exclusion; there is no holiday table.
func IsBusinessDay(t time.Time, policy model.BusinessDayPolicy) bool {
	if policy.WeekendsAreNonBusinessDays && IsWeekend(t) {
		return false
	}
	return true
}

// AdjustDate moves a date onto a business day according to the mode, walking
// one day at a time. A date already on a business day, or mode none, comes
// back unchanged. Termination is guaranteed because at most two consecutive
// days are non-business under the weekend-only policy.
func AdjustDate(t time.Time, mode model.DateAdjustment, policy model.BusinessDayPolicy) time.Time {
	if mode == "" || mode == model.AdjustNone || IsBusinessDay(t, policy) {
		return t
	}
	step := 1
	if mode == model.AdjustPrevBusinessDay {
		step = -1
	}
	for !IsBusinessDay(t, policy) {
		t = t.AddDate(0, 0, step)
	}
	return t
}
