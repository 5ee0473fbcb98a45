package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Accounts and their projected balances",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(_ *cobra.Command, _ []string) error {
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
	if len(m.Accounts) == 0 {
		fmt.Println("\n  No accounts in the plan.")
		return nil
	}

	opts, err := s.runOptions()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACCOUNTS"))
	fmt.Println()

	rows := make([][]string, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		acctOpts := opts
		acctOpts.AccountID = a.ID
		sum := forecast.Run(m, acctOpts).Summary

		surplus := ""
		if a.IncludeInSurplus {
			surplus = "yes"
		}
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			surplus,
			cli.FormatMoney(sum.StartingBalance),
			cli.FormatMoney(sum.EndBalance),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Account", "Type", "Surplus", "Now", "Horizon"},
		Rows:    rows,
	}))

	return nil
}
