package cmd

import (
	"fmt"

	"xpense/internal/cli"
	"xpense/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [category] [description] [amount]",
	Short: "Record a new expense",
	Long:  "Append one expense to the ledger. With no arguments an interactive form opens.",
	Args:  cobra.RangeArgs(0, 3),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	var rec model.Record

	switch len(args) {
	case 0:
		var err error
		rec, err = promptRecord()
		if err != nil {
			return err
		}
	case 3:
		amount, err := model.ParseAmount(args[2])
		if err != nil {
			return err
		}
		rec = model.Record{
			Category:    args[0],
			Description: args[1],
			Amount:      amount,
		}
	default:
		return fmt.Errorf("expected category, description and amount (or no arguments for the form)")
	}

	if err := openStore().Add(rec); err != nil {
		return err
	}

	fmt.Printf("  Added %s  %s\n", cli.FormatAmount(rec.Amount), rec.Category)
	return nil
}

// promptRecord collects a record through a huh form. The category
// defaults to "Other" when left blank; the amount is validated inline.
func promptRecord() (model.Record, error) {
	var (
		category    string
		description string
		amountStr   string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category").
				Placeholder("Food, Travel, Shopping...").
				Value(&category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&description),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}).
				Value(&amountStr),
		),
	)

	if err := form.Run(); err != nil {
		return model.Record{}, err
	}

	if category == "" {
		category = "Other"
	}
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return model.Record{}, err
	}

	return model.Record{
		Category:    category,
		Description: description,
		Amount:      amount,
	}, nil
}
