package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"runway/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Load a plan document into the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Write the stored plan document to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var m model.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	assignMissingIDs(&m)

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.store.SaveModel(&m); err != nil {
		return err
	}
	fmt.Printf("  Imported plan: %d accounts, %d rules, %d one-offs, %d debts.\n",
		len(m.Accounts), len(m.Rules), len(m.OneOffs), len(m.Debts))
	return nil
}

// assignMissingIDs fills in identifiers a hand-written document may omit.
func assignMissingIDs(m *model.Model) {
	for i := range m.Accounts {
		if m.Accounts[i].ID == "" {
			m.Accounts[i].ID = uuid.NewString()
		}
	}
	for i := range m.Rules {
		if m.Rules[i].ID == "" {
			m.Rules[i].ID = uuid.NewString()
		}
	}
	for i := range m.OneOffs {
		if m.OneOffs[i].ID == "" {
			m.OneOffs[i].ID = uuid.NewString()
		}
	}
	for i := range m.Debts {
		if m.Debts[i].ID == "" {
			m.Debts[i].ID = uuid.NewString()
		}
	}
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.base == nil {
		printNoModelHint()
		return nil
	}

	data, err := json.MarshalIndent(s.base, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Printf("  Exported plan to %s.\n", args[0])
	return nil
}
