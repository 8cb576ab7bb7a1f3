package statement

import (
	"strings"

	"accountcheck/internal/models"
	"accountcheck/internal/parsererror"
)

// buildTransactions converts merged pre-records into immutable transactions.
// A record-start line that matched a type token but is missing its date or
// amount is fatal for the whole statement: it means the remove_words,
// stop_word or type rules are mismatched with the document, and silently
// dropping the record would hide that.
func buildTransactions(records []fragment, filePath string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		if !record.hasDate {
			return nil, &parsererror.IncompleteRecordError{
				FilePath: filePath,
				Field:    "date",
				Target:   record.target,
			}
		}
		if !record.hasAmount {
			return nil, &parsererror.IncompleteRecordError{
				FilePath: filePath,
				Field:    "amount",
				Target:   record.target,
			}
		}
		transactions = append(transactions, models.Transaction{
			Amount: record.amount,
			Date:   record.date,
			Target: record.target,
			Text:   strings.Join(record.words, " "),
			Kind:   record.kind,
		})
	}
	return transactions, nil
}
