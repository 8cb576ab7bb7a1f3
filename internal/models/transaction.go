// Package models defines the core data types shared across the statement
// parsing, categorization and aggregation layers.
package models

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry parsed from a bank statement. It is built
// once by the statement parser and never mutated afterwards, with a single
// exception: Category is assigned exactly once during the categorization pass.
type Transaction struct {
	// Amount is the signed ledger effect of the transaction.
	Amount decimal.Decimal
	// Date is the booking date, truncated to midnight UTC.
	Date time.Time
	// Target is the counterparty or reference extracted before the amount.
	Target string
	// Text is the free-text description assembled from continuation lines.
	Text string
	// Kind is never empty; lines without a recognized kind are not promoted
	// to transactions.
	Kind TransactionKind
	// Category is classification metadata, excluded from identity.
	Category string
}

// Month returns the first day of the calendar month containing the booking
// date, used as the bucket key for month-series views.
func (t Transaction) Month() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, t.Date.Location())
}

// Description concatenates target and text for display.
func (t Transaction) Description() string {
	if t.Text == "" {
		return t.Target
	}
	return t.Target + " " + t.Text
}

// Equal reports whether two transactions are the same ledger entry. Category
// is deliberately excluded: it is classification state, not identity, so
// duplicate detection works regardless of categorization progress.
func (t Transaction) Equal(other Transaction) bool {
	return t.Amount.Equal(other.Amount) &&
		t.Date.Equal(other.Date) &&
		t.Target == other.Target &&
		t.Text == other.Text &&
		t.Kind == other.Kind
}

// Hash returns a hash consistent with Equal, over the same identity fields.
func (t Transaction) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s\x00%s",
		t.Amount.String(), t.Date.Unix(), t.Target, t.Text, t.Kind)
	return h.Sum64()
}

// String renders the transaction as a single human-readable line.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %-8s %s %s", t.Date.Format("02.01.2006"), t.Kind, t.Amount.StringFixed(2), t.Description())
}

// SumAmounts adds up the amounts of all given transactions.
func SumAmounts(entries []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total
}
