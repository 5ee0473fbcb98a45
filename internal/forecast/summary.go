package forecast

import (
	"math"

	"runway/internal/model"
)

// MonthlySummaries buckets a ledger run by calendar month. Every month the
// window touches gets a summary, entries or not; the start balance carries
// forward from the previous month's end balance. The synthetic starting
// entry seeds the first month's start balance but is not counted.
func MonthlySummaries(res model.LedgerResult) []model.MonthSummary {
	sum := res.Summary
	if sum.StartDate.IsZero() || sum.EndDate.Before(sum.StartDate) {
		return nil
	}

	byMonth := make(map[string][]model.LedgerEntry)
	for _, e := range res.Entries {
		if e.Synthetic {
			continue
		}
		byMonth[monthKey(e.Date)] = append(byMonth[monthKey(e.Date)], e)
	}

	var out []model.MonthSummary
	carry := sum.StartingBalance
	cursor := date(sum.StartDate.Year(), sum.StartDate.Month(), 1)
	last := date(sum.EndDate.Year(), sum.EndDate.Month(), 1)

	for !cursor.After(last) {
		key := monthKey(cursor)
		ms := model.MonthSummary{
			Month:        key,
			StartBalance: carry,
			EndBalance:   carry,
			MinBalance:   carry,
			MaxBalance:   carry,
		}

		entries := byMonth[key]
		for i, e := range entries {
			switch e.Kind {
			case model.KindIncome:
				ms.Income += math.Abs(e.Amount)
			case model.KindExpense:
				ms.Expenses += math.Abs(e.Amount)
			case model.KindTransfer:
				if e.Signed < 0 {
					ms.TransfersOut += math.Abs(e.Amount)
				} else {
					ms.TransfersIn += math.Abs(e.Amount)
				}
			}

			if i == 0 || e.Balance < ms.MinBalance {
				ms.MinBalance = e.Balance
				ms.MinBalanceDate = e.Date
			}
			if i == 0 || e.Balance > ms.MaxBalance {
				ms.MaxBalance = e.Balance
				ms.MaxBalanceDate = e.Date
			}
			ms.EndBalance = e.Balance
		}
		ms.EntryCount = len(entries)

		carry = ms.EndBalance
		out = append(out, ms)
		cursor = cursor.AddDate(0, 1, 0)
	}

	return out
}

// SafeToWithdraw computes the safe-surplus figure for the month at index idx.
//
// In next_month_trough mode the answer is the month's end balance minus what
// the following month needs to stay above its trough plus the buffer; a
// shortfall clamps to zero and reports how far short. At the forecast horizon,
// where no following month exists, the floor formula stands in and the result
// is flagged as an estimate. Floor mode is simply end balance minus the floor.
func SafeToWithdraw(months []model.MonthSummary, idx int, cfg model.SafeSurplusConfig) model.SafeSurplus {
	if idx < 0 || idx >= len(months) {
		return model.SafeSurplus{Mode: cfg.Mode}
	}
	m := months[idx]

	if cfg.Mode == model.SurplusFloor {
		return model.SafeSurplus{
			Mode:   model.SurplusFloor,
			Amount: math.Max(0, m.EndBalance-cfg.Floor),
		}
	}

	if idx+1 >= len(months) {
		return model.SafeSurplus{
			Mode:       model.SurplusNextMonthTrough,
			Amount:     math.Max(0, m.EndBalance-cfg.Floor),
			IsEstimate: true,
		}
	}

	required := months[idx+1].MinBalance + cfg.Buffer
	avail := m.EndBalance - required
	if avail < 0 {
		return model.SafeSurplus{
			Mode:     model.SurplusNextMonthTrough,
			Amount:   0,
			IsUnsafe: true,
			UnsafeBy: -avail,
		}
	}
	return model.SafeSurplus{
		Mode:   model.SurplusNextMonthTrough,
		Amount: avail,
	}
}
