package cmd

import (
	"fmt"
	"strconv"

	"xpense/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses in ledger order",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	result, err := openStore().List()
	if err != nil {
		return err
	}
	warnSkipped(result.Skipped)

	if len(result.Records) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Run `xpense add` to record one.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %d record(s)", len(result.Records))))
	fmt.Println()

	rows := make([][]string, 0, len(result.Records)+2)
	var total float64
	for i, rec := range result.Records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.Category,
			cli.Truncate(rec.Description, 40),
			cli.FormatAmount(rec.Amount),
		})
		total += rec.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", "", cli.FormatAmount(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"#", "Category", "Description", "Amount"},
		Rows:       rows,
		RightAlign: []bool{true, false, false, true},
	}))

	return nil
}
