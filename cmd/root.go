// Package cmd implements the xpense CLI commands.
package cmd

import (
	"fmt"
	"os"

	"xpense/internal/cli"
	"xpense/internal/config"
	"xpense/internal/store"
	"xpense/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagStore  string
	flagStrict bool
	flagQuiet  bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "xpense",
	Short: "Personal expense tracker",
	Long:  "Record expenses in a CSV ledger, list them, summarize by category, and export reports.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&flagStore, "store", "s", "", "Store file path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail on malformed store rows")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings on stderr")

	rootCmd.SilenceUsage = true
}

// initConfig loads the config file and applies the theme. Config errors
// are not fatal here; commands run with defaults and a warning.
func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config: %v (using defaults)\n", err)
	}
	theme.SetActive(cfg.Appearance.Theme)
}

// openStore builds the Store from config plus flag overrides.
func openStore() *store.Store {
	path := cfg.General.StoreFile
	if flagStore != "" {
		path = flagStore
	}
	return store.New(path, flagStrict || cfg.General.StrictParse)
}

// warnSkipped reports dropped rows once per command invocation.
func warnSkipped(skipped int) {
	if skipped > 0 && !flagQuiet {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("%d malformed row(s) skipped", skipped)))
	}
}
