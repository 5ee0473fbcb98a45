package cmd

import (
	"fmt"
	"time"

	"runway/internal/cli"
	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Debt payoff projections",
	RunE:  runDebts,
}

func init() {
	rootCmd.AddCommand(debtsCmd)
}

func runDebts(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	m := s.effective()
	if m == nil {
		printNoModelHint()
		return nil
	}
	if len(m.Debts) == 0 {
		fmt.Println("\n  No debts in the plan.")
		return nil
	}

	var start time.Time
	if flagStart != "" {
		start, err = time.Parse("2006-01-02", flagStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
	}
	ov := forecast.ProjectAll(m, forecast.ProjectOptions{StartDate: start})

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PAYOFF"))
	fmt.Println()

	rows := make([][]string, 0, len(ov.Schedules))
	for _, sched := range ov.Schedules {
		payoff := cli.Warn("not within horizon")
		if sched.IsPaidOff {
			payoff = sched.PayoffDate.Format("Jan 2006")
		}
		rows = append(rows, []string{
			sched.DebtName,
			fmt.Sprintf("%d", sched.Months),
			cli.FormatMoney(sched.TotalInterest),
			cli.FormatMoney(sched.TotalPaid),
			payoff,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Debt", "Months", "Interest", "Paid", "Payoff"},
		Rows:    rows,
	}))

	fmt.Println()
	if ov.AllResolved {
		when := "-"
		if !ov.DebtFreeDate.IsZero() {
			when = ov.DebtFreeDate.Format("Jan 2006")
		}
		fmt.Printf("  Debt-free %s   Total interest %s\n",
			cli.Good(when), cli.FormatMoney(ov.TotalInterest))
	} else {
		fmt.Printf("  %s   Total interest %s\n",
			cli.Warn("Some debts never pay off at current payments"),
			cli.FormatMoney(ov.TotalInterest))
	}

	return nil
}
