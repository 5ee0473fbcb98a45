package cmd

import (
	"fmt"

	"runway/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	fmt.Printf("  Data dir:    %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultDays > 0 {
		fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	} else {
		fmt.Println("    Default days: model horizon")
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency symbol: %s\n", cfg.Display.CurrencySymbol)

	return nil
}
