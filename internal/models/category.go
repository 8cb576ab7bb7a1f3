package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FallbackCategory is assigned when no configured keyword matches.
const FallbackCategory = "Sonstige"

// CategoryConfig is one category definition from the rules file: a label and
// the keyword substrings that map a transaction to it. Definitions are kept as
// an ordered list because categorization is first-match-wins; the order in the
// rules file is significant.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Category accumulates the transactions of one label within one kind-group.
// It is built in two phases: entries are appended while the group is being
// bucketed, then RelativeTotal is set once the whole kind-group is known.
// Relative shares cannot be computed earlier because the group's grand total
// is not known until every entry has been seen.
type Category struct {
	Name    string
	Group   KindGroup
	Entries []Transaction

	// RelativeTotal is the grand total of the kind-group this category
	// belongs to. Zero means the finalize pass has not run yet.
	RelativeTotal decimal.Decimal
}

// NewCategory creates an empty accumulator for the given label and kind-group.
func NewCategory(name string, group KindGroup) *Category {
	return &Category{Name: name, Group: group}
}

// Append adds a transaction in encounter order.
func (c *Category) Append(entry Transaction) {
	c.Entries = append(c.Entries, entry)
}

// Amount is the sum of all entry amounts.
func (c *Category) Amount() decimal.Decimal {
	return SumAmounts(c.Entries)
}

// Relative is this category's share of its kind-group total. It is only
// meaningful after the finalize pass has set RelativeTotal.
func (c *Category) Relative() float64 {
	if c.RelativeTotal.IsZero() {
		return 0
	}
	share, _ := c.Amount().Div(c.RelativeTotal).Float64()
	return share
}

// Percent formats the relative share for display, e.g. "42.50%".
func (c *Category) Percent() string {
	return fmt.Sprintf("%.2f%%", c.Relative()*100)
}

func (c *Category) String() string {
	return fmt.Sprintf("%s: %s", c.Name, c.Amount().StringFixed(2))
}
