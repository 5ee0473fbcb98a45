package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"runway/internal/forecast"

	"github.com/spf13/cobra"
)

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv [file.csv]",
	Short: "Write the forecast ledger as CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExportCSV,
}

func init() {
	rootCmd.AddCommand(exportCSVCmd)
}

func runExportCSV(_ *cobra.Command, args []string) error {
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

	out := os.Stdout
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating %s: %w", args[0], err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{"date", "name", "kind", "category", "amount", "balance", "originalDate", "wasAdjusted"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range res.Entries {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.Name,
			string(e.Kind),
			e.Category,
			strconv.FormatFloat(e.Signed, 'f', 2, 64),
			strconv.FormatFloat(e.Balance, 'f', 2, 64),
			e.OriginalDate.Format("2006-01-02"),
			strconv.FormatBool(e.WasAdjusted),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if len(args) > 0 {
		fmt.Printf("  Wrote %d entries to %s.\n", len(res.Entries), args[0])
	}
	return nil
}
