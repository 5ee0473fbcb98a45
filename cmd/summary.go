package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly summaries and safe-to-withdraw",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
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

	opts, err := s.runOptions()
	if err != nil {
		return err
	}
	res := forecast.Run(m, opts)
	months := forecast.MonthlySummaries(res)
	if len(months) == 0 {
		fmt.Println("\n  No months in the selected window.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY SUMMARY  %s", res.Summary.AccountID)))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	balances := make([]float64, 0, len(months))
	for _, ms := range months {
		rows = append(rows, []string{
			cli.FormatMonth(ms.Month),
			cli.FormatMoney(ms.Income),
			cli.FormatMoney(ms.Expenses),
			cli.FormatMoney(ms.MinBalance),
			cli.FormatMoney(ms.EndBalance),
		})
		balances = append(balances, ms.EndBalance)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Trough", "End"},
		Rows:    rows,
	}))

	fmt.Printf("\n  End balance  %s\n", cli.RenderSparkline(balances))

	safe := forecast.SafeToWithdraw(months, 0, m.Settings.SurplusConfig())
	switch {
	case safe.IsUnsafe:
		fmt.Printf("\n  Safe to withdraw: %s  (%s short of next month's needs)\n",
			cli.Bad(cli.FormatMoney(0)), cli.FormatMoney(safe.UnsafeBy))
	case safe.IsEstimate:
		fmt.Printf("\n  Safe to withdraw: %s %s\n",
			cli.Good(cli.FormatMoney(safe.Amount)), cli.Muted("(estimate: at forecast horizon)"))
	default:
		fmt.Printf("\n  Safe to withdraw: %s\n", cli.Good(cli.FormatMoney(safe.Amount)))
	}

	return nil
}
