// Package dateutils provides the date operations used throughout the
// application.
package dateutils

import "time"

// Date format constants. Statements book dates in the European day.month.year
// form; ISO is used for stable output.
const (
	DateLayoutStatement = "02.01.2006"
	DateLayoutISO       = "2006-01-02"
)

// ParseStatementDate parses a day.month.year token from a statement line.
func ParseStatementDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayoutStatement, s, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
