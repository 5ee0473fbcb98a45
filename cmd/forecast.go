package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Day-by-day ledger projection",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
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
	sum := res.Summary

	title := fmt.Sprintf("FORECAST  %s  %s → %s",
		sum.AccountID, cli.FormatDate(sum.StartDate), cli.FormatDate(sum.EndDate))
	if s.scenario != nil && !flagBase {
		title += "  [" + s.scenario.Name + "]"
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		name := e.Name
		if e.WasAdjusted {
			name += " *"
		}
		kind := string(e.Kind)
		if e.Synthetic {
			kind = "-"
		}
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			name,
			kind,
			cli.FormatSignedMoney(e.Signed),
			cli.FormatMoney(e.Balance),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Name", "Kind", "Amount", "Balance"},
		Rows:    rows,
	}))

	fmt.Println()
	low := cli.FormatMoney(sum.MinBalance)
	if sum.MinBalance < 0 {
		low = cli.Bad(low)
	}
	fmt.Printf("  End balance %s   Low %s on %s   Net surplus %s\n",
		cli.FormatMoney(sum.EndBalance),
		low,
		cli.FormatDate(sum.MinBalanceDate),
		cli.FormatSignedMoney(sum.NetSurplus),
	)
	fmt.Println(cli.Muted("  * moved to a business day"))

	return nil
}
