// Package statement implements the core parsing pipeline that turns raw bank
// statement page text into a structured ledger of transactions.
//
// The pipeline is a single deterministic pass per document:
//
//	page text -> CleanLines -> TrimTail -> parseLine -> mergeFragments
//	          -> buildTransactions -> Statement
//
// Parsing is sequential and synchronous; it performs no I/O. Page text comes
// from the pdfext collaborator, rules come from the store.
package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"accountcheck/internal/categorizer"
	"accountcheck/internal/logging"
	"accountcheck/internal/models"
	"accountcheck/internal/parsererror"
)

// Statement owns the ordered transactions parsed from one source document,
// plus the category definitions used to label them. It is immutable after
// parsing except for the one-time categorization pass.
type Statement struct {
	// SourceFile identifies the document the entries came from; it is
	// attached to every parse error for diagnosis.
	SourceFile string
	Entries    []models.Transaction
	Categories []models.CategoryConfig
}

// Parse runs the full pipeline over the ordered page texts of one document.
// Any configuration mismatch (missing stop word, incomplete record start)
// aborts the whole statement; partial results are never returned.
func Parse(pages []string, rules Rules, sourceFile string, logger logging.Logger) (*Statement, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var lines []string
	for _, page := range pages {
		lines = append(lines, CleanLines(page, rules.RemoveWords, rules.RemoveLinesWith)...)
	}

	lines, found := TrimTail(lines, rules.StopWord)
	if !found {
		return nil, &parsererror.StopWordError{FilePath: sourceFile, StopWord: rules.StopWord}
	}

	fragments := make([]fragment, 0, len(lines))
	for _, line := range lines {
		fragments = append(fragments, parseLine(line, rules))
	}

	entries, err := buildTransactions(mergeFragments(fragments), sourceFile)
	if err != nil {
		return nil, err
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: sourceFile},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	).Debug("Parsed statement")

	return &Statement{SourceFile: sourceFile, Entries: entries}, nil
}

// Categorize assigns a category label to every entry using the given ordered
// definitions. It runs exactly once per statement; the definitions are kept
// for later reference by aggregation consumers.
func (s *Statement) Categorize(definitions []models.CategoryConfig, logger logging.Logger) {
	s.Categories = definitions
	cat := categorizer.New(definitions, logger)
	for i := range s.Entries {
		s.Entries[i].Category = cat.Categorize(s.Entries[i])
	}
}

// Credits returns the entries in the credit kind-group, in document order.
func (s *Statement) Credits() []models.Transaction {
	return s.byGroup(models.GroupCredit)
}

// Debits returns the entries in the combined transfer+debit kind-group, in
// document order. Transfers are treated as outflows throughout the system.
func (s *Statement) Debits() []models.Transaction {
	return s.byGroup(models.GroupDebit)
}

func (s *Statement) byGroup(group models.KindGroup) []models.Transaction {
	var entries []models.Transaction
	for _, entry := range s.Entries {
		if models.GroupOf(entry.Kind) == group {
			entries = append(entries, entry)
		}
	}
	return entries
}

// CreditTotal sums the credit kind-group.
func (s *Statement) CreditTotal() decimal.Decimal {
	return models.SumAmounts(s.Credits())
}

// DebitTotal sums the transfer+debit kind-group.
func (s *Statement) DebitTotal() decimal.Decimal {
	return models.SumAmounts(s.Debits())
}

// Profit is the combined ledger effect of the statement.
func (s *Statement) Profit() decimal.Decimal {
	return s.CreditTotal().Add(s.DebitTotal())
}

// First returns the entry with the earliest booking date.
func (s *Statement) First() (models.Transaction, bool) {
	return s.extremum(func(a, b models.Transaction) bool { return a.Date.Before(b.Date) })
}

// Last returns the entry with the latest booking date.
func (s *Statement) Last() (models.Transaction, bool) {
	return s.extremum(func(a, b models.Transaction) bool { return a.Date.After(b.Date) })
}

func (s *Statement) extremum(better func(a, b models.Transaction) bool) (models.Transaction, bool) {
	if len(s.Entries) == 0 {
		return models.Transaction{}, false
	}
	best := s.Entries[0]
	for _, entry := range s.Entries[1:] {
		if better(entry, best) {
			best = entry
		}
	}
	return best, true
}

// String renders a one-line summary of the statement period and totals.
func (s *Statement) String() string {
	first, ok := s.First()
	if !ok {
		return fmt.Sprintf("%s: empty statement", s.SourceFile)
	}
	last, _ := s.Last()
	return fmt.Sprintf("%s - %s\tin:%s\tout:%s\tbalance:%s",
		first.Date.Format("02.01.2006"), last.Date.Format("02.01.2006"),
		s.CreditTotal().StringFixed(2), s.DebitTotal().StringFixed(2), s.Profit().StringFixed(2))
}
