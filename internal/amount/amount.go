// Package amount handles locale-specific numeric normalization of statement
// amounts. The normalization convention is deliberately a single swappable
// function rather than inlined string replacement, so supporting another
// locale means supplying another Normalizer, not touching the parser.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalizer rewrites a locale-formatted amount token into the canonical
// decimal form understood by decimal.NewFromString.
type Normalizer func(string) string

// NormalizeGerman converts the German statement convention "1.234,56" into
// "1234.56": thousands dots are removed first, then the decimal comma becomes
// a period. The order matters; swapping it would corrupt the value.
func NormalizeGerman(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s
}

// Parse normalizes a raw amount token with the given normalizer and parses it
// into a decimal. A nil normalizer defaults to NormalizeGerman.
func Parse(raw string, normalize Normalizer) (decimal.Decimal, error) {
	if normalize == nil {
		normalize = NormalizeGerman
	}
	return decimal.NewFromString(normalize(raw))
}
