package model

import "time"

// LumpSum is a one-time extra payment against a debt.
type LumpSum struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// Debt is a single amortizing balance. APR is an annualized percentage
// (24 means 24%/year, accrued monthly). The minimum payment comes from the
// linked expense rule when set, otherwise from a floor formula.
type Debt struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	APR              float64   `json:"apr"`
	Principal        float64   `json:"principal"`
	MinPaymentRuleID string    `json:"minPaymentRuleId,omitempty"`
	ExtraMonthly     float64   `json:"extraMonthly,omitempty"`
	LumpSums         []LumpSum `json:"lumpSums,omitempty"`
}
