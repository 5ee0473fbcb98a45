package model

import "time"

// RuleKind classifies a rule as income, expense, or transfer.
type RuleKind string

// Rule kinds.
const (
	KindIncome   RuleKind = "income"
	KindExpense  RuleKind = "expense"
	KindTransfer RuleKind = "transfer"
)

// Rank orders kinds within a single day: income lands before transfers,
// transfers before expenses.
func (k RuleKind) Rank() int {
	switch k {
	case KindIncome:
		return 0
	case KindTransfer:
		return 1
	default:
		return 2
	}
}

// DateAdjustment selects how an occurrence date is moved off non-business days.
type DateAdjustment string

// Date adjustment modes.
const (
	AdjustNone            DateAdjustment = "none"
	AdjustNextBusinessDay DateAdjustment = "next_business_day"
	AdjustPrevBusinessDay DateAdjustment = "prev_business_day"
)

// RecurrenceType tags the recurrence variant.
type RecurrenceType string

// Recurrence variants.
const (
	RecurMonthlyDay  RecurrenceType = "monthly_day"
	RecurSemimonthly RecurrenceType = "semimonthly_days"
	RecurBiweekly    RecurrenceType = "biweekly_anchor"
	RecurWeekly      RecurrenceType = "weekly_dow"
)

// Recurrence is a tagged variant; only the fields for its Type are meaningful.
// Weekday is ISO-style: 0 = Monday through 6 = Sunday.
type Recurrence struct {
	Type    RecurrenceType `json:"type"`
	Day     int            `json:"day,omitempty"`
	Day1    int            `json:"day1,omitempty"`
	Day2    int            `json:"day2,omitempty"`
	Anchor  time.Time      `json:"anchor,omitempty"`
	Weekday int            `json:"weekday,omitempty"`
}

// Rule is a recurring income, expense, or transfer definition. A rule either
// owns a Recurrence or borrows one from another rule via FollowsRuleID
// (exactly one hop; a chain beyond that is treated as unresolved).
type Rule struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	AccountID   string         `json:"accountId"`
	ToAccountID string         `json:"toAccountId,omitempty"`
	Kind        RuleKind       `json:"kind"`
	Amount      float64        `json:"amount"`
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Enabled     *bool          `json:"enabled,omitempty"`
	Priority    int            `json:"priority"`
	Adjustment  DateAdjustment `json:"businessDayAdjustment,omitempty"`
	ValidFrom   *time.Time     `json:"validFrom,omitempty"`
	ValidTo     *time.Time     `json:"validTo,omitempty"`
	Recurrence  *Recurrence    `json:"recurrence,omitempty"`
	FollowsRule string         `json:"followsRuleId,omitempty"`
}

// IsEnabled reports whether the rule participates in expansion.
// An absent flag counts as enabled.
func (r *Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}
