package forecast

import (
	"math"
	"time"

	"runway/internal/model"
)

// DefaultMaxMonths caps a payoff projection when the debt never amortizes.
const DefaultMaxMonths = 360

// ProjectOptions narrows a debt projection. A zero StartDate means today;
// a zero MaxMonths means DefaultMaxMonths.
type ProjectOptions struct {
	StartDate time.Time
	MaxMonths int
}

// ProjectDebt simulates the monthly amortization of one debt: accrue a
// month's interest, apply any lump sum scheduled in that calendar month,
// then the regular payment, clamping the balance at zero. The projection
// never mutates the debt or the model.
func ProjectDebt(m *model.Model, d model.Debt, opts ProjectOptions) model.DebtSchedule {
	start := opts.StartDate
	if start.IsZero() {
		start = today()
	}
	start = day(start)

	maxMonths := opts.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}

	monthlyRate := d.APR / 100 / 12
	minPayment := resolveMinPayment(m, d, monthlyRate)

	lumpByMonth := make(map[string]float64)
	for _, ls := range d.LumpSums {
		lumpByMonth[monthKey(ls.Date)] += ls.Amount
	}

	sched := model.DebtSchedule{DebtID: d.ID, DebtName: d.Name}
	balance := d.Principal
	cursor := date(start.Year(), start.Month(), 1)

	for month := 0; balance > 0 && month < maxMonths; month++ {
		interest := balance * monthlyRate
		balance += interest
		sched.TotalInterest += interest

		pay := model.DebtPayment{Month: cursor, Interest: interest}

		if lump := lumpByMonth[monthKey(cursor)]; lump > 0 {
			applied := math.Min(lump, balance)
			balance -= applied
			pay.LumpSum = applied
			sched.TotalPaid += applied
		}

		if balance > 0 {
			payment := math.Min(minPayment+d.ExtraMonthly, balance)
			balance -= payment
			pay.Payment = payment
			sched.TotalPaid += payment
		}

		if balance < 0 {
			balance = 0
		}
		pay.Balance = balance
		sched.Payments = append(sched.Payments, pay)
		sched.Months++

		if balance == 0 {
			sched.IsPaidOff = true
			sched.PayoffDate = cursor
			break
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	// A debt with no outstanding principal is trivially resolved.
	if balance <= 0 {
		sched.IsPaidOff = true
	}

	return sched
}

// resolveMinPayment takes the linked expense rule's amount when the link
// resolves, otherwise max(25, 1% of principal + one month's interest).
// Either way the payment is capped at the outstanding principal.
func resolveMinPayment(m *model.Model, d model.Debt, monthlyRate float64) float64 {
	var payment float64
	if m != nil && d.MinPaymentRuleID != "" {
		if r := m.Rule(d.MinPaymentRuleID); r != nil {
			payment = math.Abs(r.Amount)
		}
	}
	if payment == 0 {
		payment = math.Max(25, d.Principal*0.01+d.Principal*monthlyRate)
	}
	return math.Min(payment, d.Principal)
}

// ProjectAll projects every debt in the model and aggregates the payoff
// picture: the latest payoff date is the debt-free date, and AllResolved
// reports whether every debt pays off within its horizon.
func ProjectAll(m *model.Model, opts ProjectOptions) model.DebtOverview {
	out := model.DebtOverview{AllResolved: true}
	for _, d := range m.Debts {
		sched := ProjectDebt(m, d, opts)
		out.TotalInterest += sched.TotalInterest
		if !sched.IsPaidOff {
			out.AllResolved = false
		} else if sched.PayoffDate.After(out.DebtFreeDate) {
			out.DebtFreeDate = sched.PayoffDate
		}
		out.Schedules = append(out.Schedules, sched)
	}
	if len(out.Schedules) == 0 {
		out.AllResolved = true
	}
	return out
}
