package forecast

import (
	"math"
	"time"

	"runway/internal/model"
)

// RunOptions narrows a ledger run. Zero values take defaults: StartDate
// today, EndDate start plus the model's forecast horizon, AccountID the
// model's default account.
type RunOptions struct {
	StartDate time.Time
	EndDate   time.Time
	AccountID string
}

// Run replays the generated transactions against the account's starting
// balance and returns the balance-annotated entries plus aggregates.
func Run(m *model.Model, opts RunOptions) model.LedgerResult {
	start := opts.StartDate
	if start.IsZero() {
		start = today()
	}
	start = day(start)

	end := opts.EndDate
	if end.IsZero() {
		end = start.AddDate(0, 0, m.Settings.HorizonDays())
	}
	end = day(end)

	account := opts.AccountID
	if account == "" {
		account = m.DefaultAccountID()
	}

	// An inverted window is a valid question with an empty answer.
	if end.Before(start) {
		return model.LedgerResult{Summary: model.LedgerSummary{
			AccountID: account,
			StartDate: start,
			EndDate:   end,
		}}
	}

	balance := startingBalanceFor(m, account, start)

	summary := model.LedgerSummary{
		AccountID:       account,
		StartDate:       start,
		EndDate:         end,
		StartingBalance: balance,
		MinBalance:      balance,
		MinBalanceDate:  start,
		MaxBalance:      balance,
		MaxBalanceDate:  start,
	}

	entries := []model.LedgerEntry{{
		Transaction: model.Transaction{
			Date:         start,
			Name:         "Starting Balance",
			AccountID:    account,
			OriginalDate: start,
		},
		Balance:   balance,
		Synthetic: true,
	}}

	lastDate := start
	for _, tx := range Generate(m, start, end) {
		if tx.AccountID != account && tx.ToAccountID != account {
			continue
		}

		signed := signedEffect(tx, account)
		balance += signed

		switch tx.Kind {
		case model.KindIncome:
			summary.TotalIncome += math.Abs(tx.Amount)
		case model.KindExpense:
			summary.TotalExpenses += math.Abs(tx.Amount)
		case model.KindTransfer:
			if signed < 0 {
				summary.TransfersOut += math.Abs(tx.Amount)
			} else {
				summary.TransfersIn += math.Abs(tx.Amount)
			}
		}

		if balance < summary.MinBalance {
			summary.MinBalance = balance
			summary.MinBalanceDate = tx.Date
		}
		if balance > summary.MaxBalance {
			summary.MaxBalance = balance
			summary.MaxBalanceDate = tx.Date
		}

		entries = append(entries, model.LedgerEntry{
			Transaction:   tx,
			Signed:        signed,
			Balance:       balance,
			DaysSinceLast: daysBetween(lastDate, tx.Date),
		})
		lastDate = tx.Date
		summary.TransactionCount++
	}

	summary.EndBalance = balance
	summary.NetSurplus = summary.TotalIncome - summary.TotalExpenses

	return model.LedgerResult{Entries: entries, Summary: summary}
}

// signedEffect computes a transaction's signed impact on the account.
// Income adds, expenses subtract regardless of the stored sign; a transfer
// subtracts when the account is the source and adds when it is the
// destination (source wins for a self-transfer).
func signedEffect(tx model.Transaction, account string) float64 {
	amt := math.Abs(tx.Amount)
	switch tx.Kind {
	case model.KindIncome:
		return amt
	case model.KindExpense:
		return -amt
	case model.KindTransfer:
		if tx.AccountID == account {
			return -amt
		}
		return amt
	default:
		return 0
	}
}

// startingBalanceFor resolves the account's authoritative starting balance:
// the entry with the latest date at or before the start date, later entries
// winning ties. No entry means zero.
func startingBalanceFor(m *model.Model, account string, start time.Time) float64 {
	var (
		best    float64
		bestDay time.Time
		found   bool
	)
	for _, sb := range m.StartingBalances {
		if sb.AccountID != account {
			continue
		}
		d := day(sb.Date)
		if d.After(start) {
			continue
		}
		if !found || !d.Before(bestDay) {
			best = sb.Amount
			bestDay = d
			found = true
		}
	}
	return best
}
