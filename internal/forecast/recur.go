package forecast

import (
	"sort"
	"time"

	"runway/internal/model"
)

// Expand turns a rule's recurrence into the dates it fires on within
// [windowStart, windowEnd], clamped to the rule's validFrom/validTo bounds.
// A disabled rule, an inverted clamped window, or an unresolvable recurrence
// all expand to nothing. Expansion is pure: identical arguments always yield
// identical output.
func Expand(rule model.Rule, windowStart, windowEnd time.Time, m *model.Model) []time.Time {
	if !rule.IsEnabled() {
		return nil
	}

	rec := resolveRecurrence(rule, m)
	if rec == nil {
		return nil
	}

	start := day(windowStart)
	end := day(windowEnd)
	if rule.ValidFrom != nil && day(*rule.ValidFrom).After(start) {
		start = day(*rule.ValidFrom)
	}
	if rule.ValidTo != nil && day(*rule.ValidTo).Before(end) {
		end = day(*rule.ValidTo)
	}
	if start.After(end) {
		return nil
	}

	switch rec.Type {
	case model.RecurMonthlyDay:
		return expandMonthly(start, end, rec.Day)
	case model.RecurSemimonthly:
		return expandSemimonthly(start, end, rec.Day1, rec.Day2)
	case model.RecurBiweekly:
		return expandBiweekly(start, end, day(rec.Anchor))
	case model.RecurWeekly:
		return expandWeekly(start, end, rec.Weekday)
	default:
		return nil
	}
}

// resolveRecurrence returns the rule's own recurrence, or the one borrowed
// via followsRuleId. Resolution is exactly one hop: a followed rule that
// itself only follows another rule counts as unresolved.
func resolveRecurrence(rule model.Rule, m *model.Model) *model.Recurrence {
	if rule.Recurrence != nil {
		return rule.Recurrence
	}
	if rule.FollowsRule == "" || m == nil {
		return nil
	}
	target := m.Rule(rule.FollowsRule)
	if target == nil {
		return nil
	}
	return target.Recurrence
}

// expandMonthly emits one date per month at min(dayOfMonth, daysInMonth).
// Day overflow clamps to month end and never rolls into the next month.
func expandMonthly(start, end time.Time, dayOfMonth int) []time.Time {
	var out []time.Time
	year, month := start.Year(), start.Month()
	for {
		first := date(year, month, 1)
		if first.After(end) {
			break
		}
		d := dayOfMonth
		if dim := daysInMonth(year, month); d > dim {
			d = dim
		}
		occ := date(year, month, d)
		if !occ.Before(start) && !occ.After(end) {
			out = append(out, occ)
		}
		next := first.AddDate(0, 1, 0)
		year, month = next.Year(), next.Month()
	}
	return out
}

// expandSemimonthly emits both clamped days per month, ordered by date
// within the month.
func expandSemimonthly(start, end time.Time, day1, day2 int) []time.Time {
	if day2 < day1 {
		day1, day2 = day2, day1
	}
	out := append(expandMonthly(start, end, day1), expandMonthly(start, end, day2)...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// expandBiweekly emits every 14th day from the anchor, starting at the first
// anchor-aligned date on/after both the anchor and the window start.
func expandBiweekly(start, end time.Time, anchor time.Time) []time.Time {
	first := anchor
	if first.Before(start) {
		gap := daysBetween(anchor, start)
		steps := gap / 14
		if gap%14 != 0 {
			steps++
		}
		first = anchor.AddDate(0, 0, steps*14)
	}
	var out []time.Time
	for occ := first; !occ.After(end); occ = occ.AddDate(0, 0, 14) {
		out = append(out, occ)
	}
	return out
}

// expandWeekly emits every date on/after the window start whose weekday
// matches (0 = Monday .. 6 = Sunday), stepping 7 days.
func expandWeekly(start, end time.Time, weekday int) []time.Time {
	if weekday < 0 || weekday > 6 {
		return nil
	}
	offset := (weekday - isoWeekday(start) + 7) % 7
	var out []time.Time
	for occ := start.AddDate(0, 0, offset); !occ.After(end); occ = occ.AddDate(0, 0, 7) {
		out = append(out, occ)
	}
	return out
}
