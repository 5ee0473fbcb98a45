// Package model defines the plan document types runway forecasts over.
package model

import "time"

// AccountType classifies an account.
type AccountType string

// Account types.
const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountReserve  AccountType = "reserve"
)

// Account is a single tracked account. Exactly one checking account is
// expected per model; the ledger uses it as the default account.
type Account struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Type             AccountType `json:"type"`
	IncludeInSurplus bool        `json:"includeInSurplus"`
	Note             string      `json:"note,omitempty"`
}

// StartingBalance anchors an account's balance at a date. An account may
// carry several; the one with the latest date at or before the query date
// is authoritative.
type StartingBalance struct {
	AccountID string    `json:"accountId"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
}

// OneOff is a single non-recurring transaction. The sign of Amount decides
// whether it behaves as income or an expense.
type OneOff struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	AccountID string    `json:"accountId"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
}

// SafeSurplusMode selects the safe-to-withdraw algorithm.
type SafeSurplusMode string

// Safe-surplus modes.
const (
	SurplusNextMonthTrough SafeSurplusMode = "next_month_trough"
	SurplusFloor           SafeSurplusMode = "floor"
)

// SafeSurplusConfig holds the safe-to-withdraw parameters.
type SafeSurplusConfig struct {
	Mode   SafeSurplusMode `json:"mode,omitempty"`
	Buffer float64         `json:"buffer,omitempty"`
	Floor  float64         `json:"floor,omitempty"`
}

// BusinessDayPolicy configures which days count as business days.
// Weekends are the only exclusion in scope; there is no holiday table.
type BusinessDayPolicy struct {
	WeekendsAreNonBusinessDays bool `json:"weekendsAreNonBusinessDays"`
}

// Settings holds model-level forecast settings. Display holds free-form
// presentation preferences the forecast core never interprets.
type Settings struct {
	ForecastHorizonDays int               `json:"forecastHorizonDays,omitempty"`
	SafeSurplus         SafeSurplusConfig `json:"safeSurplus,omitempty"`
	BusinessDays        BusinessDayPolicy `json:"businessDays,omitempty"`
	Display             map[string]any    `json:"display,omitempty"`
}

// Defaults applied when settings are absent or zero.
const (
	DefaultHorizonDays   = 180
	DefaultSurplusBuffer = 300
	DefaultSurplusFloor  = 2000
)

// HorizonDays returns the forecast horizon, defaulted.
func (s Settings) HorizonDays() int {
	if s.ForecastHorizonDays > 0 {
		return s.ForecastHorizonDays
	}
	return DefaultHorizonDays
}

// SurplusConfig returns the safe-surplus config with defaults filled in.
func (s Settings) SurplusConfig() SafeSurplusConfig {
	cfg := s.SafeSurplus
	if cfg.Mode == "" {
		cfg.Mode = SurplusNextMonthTrough
	}
	if cfg.Buffer == 0 {
		cfg.Buffer = DefaultSurplusBuffer
	}
	if cfg.Floor == 0 {
		cfg.Floor = DefaultSurplusFloor
	}
	return cfg
}

// Model is the full plan document: accounts, balances, recurring rules,
// one-offs, debts, and settings. It is the single source of truth; the
// forecast core never mutates a caller's model in place.
type Model struct {
	Accounts         []Account         `json:"accounts"`
	StartingBalances []StartingBalance `json:"startingBalances,omitempty"`
	Rules            []Rule            `json:"rules,omitempty"`
	OneOffs          []OneOff          `json:"oneOffs,omitempty"`
	Debts            []Debt            `json:"debts,omitempty"`
	Settings         Settings          `json:"settings"`
	ModifiedAt       time.Time         `json:"modifiedAt,omitempty"`
}

// Rule returns the rule with the given id, or nil.
func (m *Model) Rule(id string) *Rule {
	for i := range m.Rules {
		if m.Rules[i].ID == id {
			return &m.Rules[i]
		}
	}
	return nil
}

// Account returns the account with the given id, or nil.
func (m *Model) Account(id string) *Account {
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			return &m.Accounts[i]
		}
	}
	return nil
}

// DefaultAccountID picks the ledger's default account: the first checking
// account, else the first account of any type, else the literal "checking".
func (m *Model) DefaultAccountID() string {
	for _, a := range m.Accounts {
		if a.Type == AccountChecking {
			return a.ID
		}
	}
	if len(m.Accounts) > 0 {
		return m.Accounts[0].ID
	}
	return "checking"
}
