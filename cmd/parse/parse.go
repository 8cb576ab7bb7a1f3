// Package parse handles single-statement parsing commands.
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"accountcheck/cmd/root"
	"accountcheck/internal/account"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/report"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one PDF statement into a transaction CSV",
	Long: `Parse a single PDF bank statement and write the categorized
transaction table as CSV. Fails if the statement does not match the
configured parse rules.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("parse requires --input <statement.pdf>")
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

	fmt.Println(st.String())

	if root.SharedFlags.Output != "" {
		rows := report.TransactionRows(st.Entries)
		if err := report.WriteCSV(&rows, root.SharedFlags.Output, logger); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
		root.Log.Info("Statement parsed successfully!")
	}
}
