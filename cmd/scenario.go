package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Inspect, compare, commit, or discard the active scenario",
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the active scenario's operations",
	RunE:  runScenarioShow,
}

var scenarioCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare base vs scenario forecasts",
	RunE:  runScenarioCompare,
}

var scenarioCommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Make the scenario's changes the new plan",
	RunE:  runScenarioCommit,
}

var scenarioDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Drop the active scenario",
	RunE:  runScenarioDiscard,
}

func init() {
	scenarioCmd.AddCommand(scenarioShowCmd, scenarioCompareCmd, scenarioCommitCmd, scenarioDiscardCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarioShow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.scenario == nil {
		fmt.Println("\n  No active scenario.")
		return nil
	}

	fmt.Printf("\n  Scenario: %s  (created %s)\n\n",
		s.scenario.Name, cli.FormatDate(s.scenario.CreatedAt))
	for i, op := range s.scenario.Ops {
		fmt.Printf("  %2d. %s\n", i+1, forecast.DescribeOperation(op, s.base))
	}
	return nil
}

func runScenarioCompare(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.base == nil {
		printNoModelHint()
		return nil
	}
	if s.scenario == nil {
		fmt.Println("\n  No active scenario.")
		return nil
	}

	opts, err := s.runOptions()
	if err != nil {
		return err
	}
	eff := forecast.ApplyScenario(s.base, s.scenario)
	cmp := forecast.CompareModels(s.base, eff, opts)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BASE vs %s", s.scenario.Name)))
	fmt.Println()

	rows := make([][]string, 0, len(cmp.Lines))
	for _, l := range cmp.Lines {
		diff := cli.FormatSignedMoney(l.Diff)
		if l.Diff > 0 {
			diff = cli.Good(diff)
		} else if l.Diff < 0 {
			diff = cli.Bad(diff)
		}
		rows = append(rows, []string{
			l.Metric,
			cli.FormatMoney(l.Base),
			cli.FormatMoney(l.Scenario),
			diff,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Base", "Scenario", "Diff"},
		Rows:    rows,
	}))

	return nil
}

func runScenarioCommit(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.base == nil {
		printNoModelHint()
		return nil
	}
	if s.scenario == nil {
		fmt.Println("\n  No active scenario.")
		return nil
	}

	committed := forecast.Commit(s.base, s.scenario)
	if err := s.store.SaveModel(committed); err != nil {
		return err
	}
	if err := s.store.DeleteScenario(); err != nil {
		return err
	}

	fmt.Printf("\n  Committed scenario %q (%d operations).\n", s.scenario.Name, len(s.scenario.Ops))
	return nil
}

func runScenarioDiscard(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.scenario == nil {
		fmt.Println("\n  No active scenario.")
		return nil
	}
	if err := s.store.DeleteScenario(); err != nil {
		return err
	}
	fmt.Printf("\n  Discarded scenario %q.\n", s.scenario.Name)
	return nil
}
