// Package summary handles the per-category summary command.
package summary

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"accountcheck/cmd/root"
	"accountcheck/internal/account"
	"accountcheck/internal/aggregate"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/report"
)

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-category totals and relative shares for one statement",
	Long: `Parse a single PDF statement, group its transactions into credit and
debit categories and report each category's total and its relative share
within its kind-group.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("summary requires --input <statement.pdf>")
	}

	ruleset, err := root.LoadRules()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	acc := account.New(ruleset, pdfext.NewPDFExtractor(), logger)
	st, err := acc.LoadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing statement: %v", err)
	}

	groups := aggregate.Accumulate(st.Entries)
	groups.Finalize()

	var month time.Time
	if last, ok := st.Last(); ok {
		month = last.Month()
	}

	for _, category := range groups.All() {
		fmt.Printf("%-24s %12s  %s\n", category.Name, category.Amount().StringFixed(2), category.Percent())
	}

	if root.SharedFlags.Output != "" {
		rows := report.CategoryRows(groups, month)
		if err := report.WriteCSV(&rows, root.SharedFlags.Output, logger); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
