package model

import "time"

// Transaction is one dated instance produced by the pipeline: a rule
// occurrence or a one-off, after business-day adjustment. Derived data,
// never persisted.
type Transaction struct {
	Date        time.Time      `json:"date"`
	RuleID      string         `json:"ruleId,omitempty"`
	OneOffID    string         `json:"oneOffId,omitempty"`
	Name        string         `json:"name"`
	AccountID   string         `json:"accountId"`
	ToAccountID string         `json:"toAccountId,omitempty"`
	Kind        RuleKind       `json:"kind"`
	Amount      float64        `json:"amount"`
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Priority    int            `json:"priority"`
	Adjustment  DateAdjustment `json:"businessDayAdjustment,omitempty"`

	OriginalDate time.Time `json:"originalDate"`
	WasAdjusted  bool      `json:"wasAdjusted,omitempty"`
}

// LedgerEntry is a transaction enriched with its signed effect on the
// account and the running balance after application. Synthetic marks the
// "Starting Balance" entry that heads every ledger.
type LedgerEntry struct {
	Transaction

	Signed        float64 `json:"signed"`
	Balance       float64 `json:"balance"`
	DaysSinceLast int     `json:"daysSinceLast"`
	Synthetic     bool    `json:"synthetic,omitempty"`
}

// LedgerSummary holds the aggregates of one ledger run. The identity
// EndBalance = StartingBalance + TotalIncome - TotalExpenses +
// TransfersIn - TransfersOut holds exactly for every run.
type LedgerSummary struct {
	AccountID string    `json:"accountId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	StartingBalance float64   `json:"startingBalance"`
	EndBalance      float64   `json:"endBalance"`
	MinBalance      float64   `json:"minBalance"`
	MinBalanceDate  time.Time `json:"minBalanceDate"`
	MaxBalance      float64   `json:"maxBalance"`
	MaxBalanceDate  time.Time `json:"maxBalanceDate"`

	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	TransfersIn   float64 `json:"transfersIn"`
	TransfersOut  float64 `json:"transfersOut"`
	NetSurplus    float64 `json:"netSurplus"`

	TransactionCount int `json:"transactionCount"`
}

// LedgerResult is the full output of a ledger run.
type LedgerResult struct {
	Entries []LedgerEntry `json:"entries"`
	Summary LedgerSummary `json:"summary"`
}

// MonthSummary buckets one calendar month of a ledger run. Month is the
// "2006-01" key. StartBalance carries forward from the previous month's
// EndBalance; a month with no entries keeps the carried balance throughout.
type MonthSummary struct {
	Month string `json:"month"`

	StartBalance   float64   `json:"startBalance"`
	EndBalance     float64   `json:"endBalance"`
	MinBalance     float64   `json:"minBalance"`
	MinBalanceDate time.Time `json:"minBalanceDate"`
	MaxBalance     float64   `json:"maxBalance"`
	MaxBalanceDate time.Time `json:"maxBalanceDate"`

	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	TransfersIn  float64 `json:"transfersIn"`
	TransfersOut float64 `json:"transfersOut"`

	EntryCount int `json:"entryCount"`
}

// SafeSurplus is the safe-to-withdraw answer for one month.
// IsEstimate marks the floor fallback used at the forecast horizon where no
// following month exists to supply a trough.
type SafeSurplus struct {
	Amount     float64         `json:"amount"`
	Mode       SafeSurplusMode `json:"mode"`
	IsUnsafe   bool            `json:"isUnsafe,omitempty"`
	UnsafeBy   float64         `json:"unsafeBy,omitempty"`
	IsEstimate bool            `json:"isEstimate,omitempty"`
}

// ComparisonLine is one metric compared between base and scenario runs.
type ComparisonLine struct {
	Metric   string  `json:"metric"`
	Base     float64 `json:"base"`
	Scenario float64 `json:"scenario"`
	Diff     float64 `json:"diff"`
}

// Comparison holds base vs effective-model ledger results side by side.
type Comparison struct {
	Base     LedgerSummary    `json:"base"`
	Scenario LedgerSummary    `json:"scenario"`
	Lines    []ComparisonLine `json:"lines"`
}

// DebtPayment is one month of a debt amortization schedule.
type DebtPayment struct {
	Month    time.Time `json:"month"`
	Interest float64   `json:"interest"`
	LumpSum  float64   `json:"lumpSum,omitempty"`
	Payment  float64   `json:"payment"`
	Balance  float64   `json:"balance"`
}

// DebtSchedule is the projected amortization of a single debt.
type DebtSchedule struct {
	DebtID   string        `json:"debtId"`
	DebtName string        `json:"debtName"`
	Payments []DebtPayment `json:"payments"`

	TotalInterest float64 `json:"totalInterest"`
	TotalPaid     float64 `json:"totalPaid"`

	IsPaidOff  bool      `json:"isPaidOff"`
	PayoffDate time.Time `json:"payoffDate,omitzero"`
	Months     int       `json:"months"`
}

// DebtOverview aggregates payoff projections across all debts.
type DebtOverview struct {
	Schedules     []DebtSchedule `json:"schedules"`
	TotalInterest float64        `json:"totalInterest"`
	DebtFreeDate  time.Time      `json:"debtFreeDate,omitzero"`
	AllResolved   bool           `json:"allResolved"`
}
