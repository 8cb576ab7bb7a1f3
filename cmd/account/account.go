// Package account handles the whole-account commands.
package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"accountcheck/cmd/root"
	acct "accountcheck/internal/account"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/report"
)

// Cmd represents the account command.
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Load a whole statement directory and print the combined ledger",
	Long: `Load every PDF statement in the statement directory, print a one-line
summary per statement and optionally write the combined transaction table
as CSV. Documents that fail to parse are skipped and reported.`,
	Run: accountFunc,
}

func accountFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	dir := root.SharedFlags.Input
	if dir == "" {
		dir = root.AppConfig.Statements.Directory
	}

	ruleset, err := root.LoadRules()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	acc := acct.New(ruleset, pdfext.NewPDFExtractor(), logger)
	diagnostics, err := acc.LoadDir(dir)
	if err != nil {
		root.Log.Fatalf("Error loading statements: %v", err)
	}
	for _, diag := range diagnostics {
		root.Log.Warnf("Skipped statement: %s", diag)
	}

	fmt.Println(acc.String())

	if root.SharedFlags.Output != "" {
		rows := report.TransactionRows(acc.Entries())
		if err := report.WriteCSV(&rows, root.SharedFlags.Output, logger); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
