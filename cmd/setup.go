package cmd

import (
	"fmt"

	"xpense/internal/config"
	"xpense/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from existing config so re-running keeps prior answers.
	current := cfg

	storeFile := current.General.StoreFile
	exportFile := current.General.ExportFile
	strict := current.General.StrictParse
	themeName := current.Appearance.Theme

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Store file").
				Description("Where expenses are appended").
				Value(&storeFile),
			huh.NewInput().
				Title("Export file").
				Description("Default destination for `xpense export`").
				Value(&exportFile),
			huh.NewConfirm().
				Title("Strict parsing").
				Description("Fail instead of skipping malformed ledger rows").
				Value(&strict),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	current.General.StoreFile = storeFile
	current.General.ExportFile = exportFile
	current.General.StrictParse = strict
	current.Appearance.Theme = themeName

	if err := config.Save(current); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `xpense setup` anytime to reconfigure.")
	return nil
}
