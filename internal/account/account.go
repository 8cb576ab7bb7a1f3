// Package account loads and aggregates the statements of one bank account.
package account

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"accountcheck/internal/logging"
	"accountcheck/internal/models"
	"accountcheck/internal/parsererror"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/statement"
	"accountcheck/internal/store"
)

// Diagnostic reports one document that failed to parse during a directory
// load.
type Diagnostic struct {
	FilePath string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.FilePath, d.Err)
}

// Account owns the ordered statements of one account plus the shared parse
// and categorization rules. Aggregations across statements are computed on
// demand and never cached.
type Account struct {
	Rules      statement.Rules
	Categories []models.CategoryConfig
	Statements []*statement.Statement

	extractor pdfext.Extractor
	logger    logging.Logger
}

// New creates an Account over the given ruleset and page-text extractor.
func New(ruleset *store.Ruleset, extractor pdfext.Extractor, logger logging.Logger) *Account {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = pdfext.NewPDFExtractor()
	}
	return &Account{
		Rules:      ruleset.Parse,
		Categories: ruleset.Categories,
		extractor:  extractor,
		logger:     logger,
	}
}

// LoadDir parses every *.pdf file in dir, in lexical filename order, and
// appends one statement per document.
//
// Failure policy: a document that fails to parse is skipped, not fatal. One
// corrupt download must not take a whole year of statements with it. Skipped
// documents are never swallowed silently — each is logged and returned as a
// Diagnostic so callers can decide how loudly to complain. Only a directory
// that cannot be read at all aborts the load.
func (a *Account) LoadDir(dir string) ([]Diagnostic, error) {
	pattern := filepath.Join(dir, "*.pdf")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, fmt.Errorf("statement directory %s: %w", dir, statErr)
		}
	}
	sort.Strings(files)

	var diagnostics []Diagnostic
	for _, file := range files {
		st, parseErr := a.LoadFile(file)
		if parseErr != nil {
			a.logger.WithError(parseErr).WithField(logging.FieldFile, file).
				Error("Skipping statement that failed to parse")
			diagnostics = append(diagnostics, Diagnostic{FilePath: file, Err: parseErr})
			continue
		}
		a.Statements = append(a.Statements, st)
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldDirectory, Value: dir},
		logging.Field{Key: logging.FieldCount, Value: len(a.Statements)},
	).Info("Loaded account statements")

	return diagnostics, nil
}

// LoadFile parses a single statement document and categorizes its entries.
// The statement is returned but not appended to the account.
func (a *Account) LoadFile(path string) (*statement.Statement, error) {
	pages, err := a.extractor.ExtractPages(path)
	if err != nil {
		return nil, &parsererror.ExtractionError{FilePath: path, Err: err}
	}

	st, err := statement.Parse(pages, a.Rules, path, a.logger)
	if err != nil {
		return nil, &parsererror.ParseError{FilePath: path, Stage: "statement", Err: err}
	}
	st.Categorize(a.Categories, a.logger)
	return st, nil
}

// Entries returns all transactions of all statements, statement order first,
// document order within each statement.
func (a *Account) Entries() []models.Transaction {
	var entries []models.Transaction
	for _, st := range a.Statements {
		entries = append(entries, st.Entries...)
	}
	return entries
}

// String summarizes every statement, one per line.
func (a *Account) String() string {
	lines := make([]string, 0, len(a.Statements))
	for _, st := range a.Statements {
		lines = append(lines, st.String())
	}
	return strings.Join(lines, "\n")
}
