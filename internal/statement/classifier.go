package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"accountcheck/internal/amount"
	"accountcheck/internal/dateutils"
	"accountcheck/internal/models"
)

// fragment is one classified statement line. A record-start fragment carries
// the typed fields of a new transaction and an empty word list ready to
// accumulate continuation text; a continuation fragment carries only words.
type fragment struct {
	date      time.Time
	hasDate   bool
	kind      models.TransactionKind
	hasKind   bool
	amount    decimal.Decimal
	hasAmount bool
	target    string

	// words is the continuation text of the line. For record-start
	// fragments it starts empty and is filled by the merger.
	words []string
}

// recordStart reports whether this fragment opens a new transaction. The
// recognized type token is the sole discriminator; a date alone does not
// start a record.
func (f fragment) recordStart() bool {
	return f.hasKind
}

// parseLine classifies one cleaned line. Token consumption is strictly
// left-to-right with graceful fallback: statements place the date and type
// token in fixed leading position and the amount in trailing position, with
// the free-text target in between, so no lookahead beyond the first and last
// token is ever needed.
//
//  1. If the first token parses as a day.month.year date, consume it.
//  2. If the next token matches a configured type token, consume it.
//  3. Only when a kind was recorded: if the last token parses as a
//     locale-formatted amount, consume it and join the remaining tokens as
//     the target.
//
// A date-parse miss is not an error; the token simply is not a date and stays
// available for type-token evaluation.
func parseLine(line string, rules Rules) fragment {
	parts := strings.Fields(line)
	var f fragment

	if len(parts) > 0 {
		if date, err := dateutils.ParseStatementDate(parts[0]); err == nil {
			f.date = date
			f.hasDate = true
			parts = parts[1:]
		}
	}

	if len(parts) > 0 {
		if kind, ok := rules.KindFor(parts[0]); ok {
			f.kind = kind
			f.hasKind = true
			parts = parts[1:]
		}
	}

	if f.hasKind {
		if len(parts) > 0 {
			if value, err := amount.Parse(parts[len(parts)-1], rules.Normalize); err == nil {
				f.amount = value
				f.hasAmount = true
				parts = parts[:len(parts)-1]
			}
		}
		f.target = strings.Join(parts, " ")
		return f
	}

	// No recognized kind: the whole line, minus a consumed date if any, is
	// continuation text for the most recently started record.
	f.words = parts
	return f
}
