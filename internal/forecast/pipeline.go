package forecast

import (
	"sort"
	"time"

	"runway/internal/model"
)

// OneOffPriority is the fixed priority assigned to one-off transactions.
const OneOffPriority = 50

// Generate produces the flat, time-ordered transaction list for the window:
// enabled rules expanded and business-day adjusted, one-offs merged in, the
// whole sorted by (date, priority, kind rank) with emission order breaking
// any remaining ties. The ordering is part of the contract; reruns over the
// same model and window yield byte-identical output.
func Generate(m *model.Model, startDate, endDate time.Time) []model.Transaction {
	start := day(startDate)
	end := day(endDate)
	if start.After(end) {
		return nil
	}

	var txs []model.Transaction
	for _, rule := range m.Rules {
		if !rule.IsEnabled() {
			continue
		}
		for _, occ := range Expand(rule, start, end, m) {
			adjusted := AdjustDate(occ, rule.Adjustment, m.Settings.BusinessDays)
			txs = append(txs, model.Transaction{
				Date:         adjusted,
				RuleID:       rule.ID,
				Name:         rule.Name,
				AccountID:    rule.AccountID,
				ToAccountID:  rule.ToAccountID,
				Kind:         rule.Kind,
				Amount:       rule.Amount,
				Category:     rule.Category,
				Tags:         rule.Tags,
				Priority:     rule.Priority,
				Adjustment:   rule.Adjustment,
				OriginalDate: occ,
				WasAdjusted:  !adjusted.Equal(occ),
			})
		}
	}

	for _, oo := range m.OneOffs {
		d := day(oo.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		kind := model.KindIncome
		if oo.Amount < 0 {
			kind = model.KindExpense
		}
		txs = append(txs, model.Transaction{
			Date:         d,
			OneOffID:     oo.ID,
			Name:         oo.Name,
			AccountID:    oo.AccountID,
			Kind:         kind,
			Amount:       oo.Amount,
			Category:     oo.Category,
			Tags:         oo.Tags,
			Priority:     OneOffPriority,
			OriginalDate: d,
		})
	}

	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Kind.Rank() < b.Kind.Rank()
	})

	return txs
}
