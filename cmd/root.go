// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"runway/internal/cli"
	"runway/internal/config"
	"runway/internal/forecast"
	"runway/internal/model"
	"runway/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays    int
	flagStart   string
	flagAccount string
	flagBase    bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Deterministic personal-finance forecasting",
	Long:  "Project day-by-day account balances from recurring rules, one-offs, and debts.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Forecast window in days (default: model horizon)")
	rootCmd.PersistentFlags().StringVarP(&flagStart, "start", "s", "", "Forecast start date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVarP(&flagAccount, "account", "a", "", "Account id (default: the checking account)")
	rootCmd.PersistentFlags().BoolVar(&flagBase, "base", false, "Ignore the active scenario")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory for the store database")
}

// session bundles the open store with the loaded documents. Editing and
// forecasting commands share this one load path; there is no module-level
// working model.
type session struct {
	cfg      config.Config
	store    *store.Store
	base     *model.Model
	scenario *model.Scenario
}

// openSession loads config, opens the store, and reads the model and any
// active scenario.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Display.CurrencySymbol != "" {
		cli.Currency = cfg.Display.CurrencySymbol
	}

	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}
	st, err := store.Open(filepath.Join(dir, "runway.db"))
	if err != nil {
		return nil, err
	}

	m, err := st.LoadModel()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	sc, err := st.LoadScenario()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &session{cfg: cfg, store: st, base: m, scenario: sc}, nil
}

func (s *session) close() {
	_ = s.store.Close()
}

// effective returns the model the forecast should run on: the base model
// with the active scenario applied, unless --base asked for the raw base.
func (s *session) effective() *model.Model {
	if s.base == nil {
		return nil
	}
	if flagBase || s.scenario == nil {
		return s.base
	}
	return forecast.ApplyScenario(s.base, s.scenario)
}

// runOptions translates the shared flags into ledger run options.
func (s *session) runOptions() (forecast.RunOptions, error) {
	opts := forecast.RunOptions{AccountID: flagAccount}

	if flagStart != "" {
		start, err := time.Parse("2006-01-02", flagStart)
		if err != nil {
			return opts, fmt.Errorf("parsing --start: %w", err)
		}
		opts.StartDate = start
	}

	days := flagDays
	if days == 0 {
		days = s.cfg.General.DefaultDays
	}
	if days > 0 {
		start := opts.StartDate
		if start.IsZero() {
			start = time.Now().UTC()
		}
		opts.EndDate = start.AddDate(0, 0, days)
	}

	return opts, nil
}

func printNoModelHint() {
	fmt.Println("\n  No plan found.")
	fmt.Println("  Import one with `runway import <file.json>`.")
}
