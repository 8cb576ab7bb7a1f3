// Package months handles the month-series aggregation command.
package months

import (
	"fmt"

	"github.com/spf13/cobra"

	"accountcheck/cmd/root"
	"accountcheck/internal/account"
	"accountcheck/internal/aggregate"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/report"
)

// Cmd represents the months command.
var Cmd = &cobra.Command{
	Use:   "months",
	Short: "Month-by-month category totals across all statements",
	Long: `Load every PDF statement in the statement directory and report the
per-month, per-category totals as a time series.`,
	Run: monthsFunc,
}

func monthsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	dir := root.SharedFlags.Input
	if dir == "" {
		dir = root.AppConfig.Statements.Directory
	}

	ruleset, err := root.LoadRules()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	acc := account.New(ruleset, pdfext.NewPDFExtractor(), logger)
	diagnostics, err := acc.LoadDir(dir)
	if err != nil {
		root.Log.Fatalf("Error loading statements: %v", err)
	}
	for _, diag := range diagnostics {
		root.Log.Warnf("Skipped statement: %s", diag)
	}

	buckets := aggregate.MonthSeries(acc.Entries())
	for _, bucket := range buckets {
		fmt.Printf("%s  %-24s %12s\n", bucket.Month.Format("2006-01"), bucket.Category, bucket.Amount().StringFixed(2))
	}

	if root.SharedFlags.Output != "" {
		rows := report.MonthRows(buckets)
		if err := report.WriteCSV(&rows, root.SharedFlags.Output, logger); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
