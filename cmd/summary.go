package cmd

import (
	"fmt"
	"strconv"

	"xpense/internal/cli"
	"xpense/internal/report"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending breakdown by category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := openStore().List()
	if err != nil {
		return err
	}
	warnSkipped(result.Skipped)

	if len(result.Records) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	s := report.Summarize(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	maxTotal := s.Categories[0].Total
	rows := make([][]string, 0, len(s.Categories)+2)
	for _, ct := range s.Categories {
		rows = append(rows, []string{
			cli.Truncate(ct.Category, 20),
			strconv.Itoa(ct.Count),
			cli.FormatAmount(ct.Total),
			cli.FormatPercent(ct.SharePercent),
			cli.RenderHorizontalBar(ct.Total, maxTotal, 16),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		strconv.Itoa(s.Records),
		cli.FormatAmount(s.GrandTotal),
		"",
		"",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"Category", "Count", "Amount", "Share", ""},
		Rows:       rows,
		RightAlign: []bool{false, true, true, true, false},
	}))

	return nil
}
