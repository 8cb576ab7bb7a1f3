// Package report projects transactions and category aggregates into tabular
// CSV output for presentation collaborators.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"accountcheck/internal/aggregate"
	"accountcheck/internal/dateutils"
	"accountcheck/internal/logging"
	"accountcheck/internal/models"
)

// Delimiter is the CSV output delimiter, configurable via application config.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// TransactionRow is one transaction projected for tabular output.
type TransactionRow struct {
	Date        string `csv:"date"`
	Month       string `csv:"month"`
	Amount      string `csv:"amount"`
	Target      string `csv:"target"`
	Text        string `csv:"text"`
	Description string `csv:"description"`
	Kind        string `csv:"kind"`
	Category    string `csv:"category"`
}

// TransactionRows projects transactions in order.
func TransactionRows(entries []models.Transaction) []*TransactionRow {
	rows := make([]*TransactionRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, &TransactionRow{
			Date:        dateutils.ToISODate(entry.Date),
			Month:       dateutils.ToISODate(entry.Month()),
			Amount:      entry.Amount.StringFixed(2),
			Target:      entry.Target,
			Text:        entry.Text,
			Description: entry.Description(),
			Kind:        string(entry.Kind),
			Category:    entry.Category,
		})
	}
	return rows
}

// CategoryRow is one category aggregate projected for tabular output. Percent
// is the category's relative share within its kind-group.
type CategoryRow struct {
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
	Month    string `csv:"month"`
	Percent  string `csv:"percent"`
}

// CategoryRows projects finalized category groups. The month column carries
// the given reference month (typically the statement's last booking month);
// it is left empty when the aggregate is not month-scoped.
func CategoryRows(groups *aggregate.Groups, month time.Time) []*CategoryRow {
	var monthStr string
	if !month.IsZero() {
		monthStr = dateutils.ToISODate(dateutils.StartOfMonth(month))
	}
	categories := groups.All()
	rows := make([]*CategoryRow, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, &CategoryRow{
			Category: category.Name,
			Amount:   category.Amount().StringFixed(2),
			Month:    monthStr,
			Percent:  category.Percent(),
		})
	}
	return rows
}

// MonthRow is one (month, category) bucket of the time series.
type MonthRow struct {
	Month    string `csv:"month"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
}

// MonthRows projects month-series buckets in order.
func MonthRows(buckets []*aggregate.MonthBucket) []*MonthRow {
	rows := make([]*MonthRow, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, &MonthRow{
			Month:    dateutils.ToISODate(bucket.Month),
			Category: bucket.Category,
			Amount:   bucket.Amount().StringFixed(2),
		})
	}
	return rows
}

// WriteCSV writes any gocsv-taggable row slice to a file, creating parent
// directories as needed. An empty slice still produces a header-only file.
func WriteCSV(rows interface{}, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close CSV file")
		}
	}()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})
	defer gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		return gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	})

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	logger.WithField(logging.FieldFile, csvFile).Info("Wrote CSV file")
	return nil
}
