// Package categorizer assigns spending categories to transactions by keyword
// containment.
//
// Matching is first-match-wins, not best-match: the category definitions are
// iterated in the order they appear in the rules file, and the first category
// with a keyword occurring in the transaction's target or text is assigned.
// Users must order definitions from specific to general; a "SUPERMARKET"
// keyword must be listed before a category matching "SUPER" or it will never
// win. Keyword containment is case-sensitive.
package categorizer

import (
	"strings"

	"accountcheck/internal/logging"
	"accountcheck/internal/models"
)

// Categorizer matches transactions against an ordered list of category
// definitions.
type Categorizer struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// New creates a Categorizer over the given ordered definitions.
func New(categories []models.CategoryConfig, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		categories: categories,
		logger:     logger,
	}
}

// Categorize returns the category label for a transaction. When no keyword of
// any category matches, the fallback label is returned; an unmatched
// transaction is never an error.
func (c *Categorizer) Categorize(tx models.Transaction) string {
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(tx.Target, keyword) || strings.Contains(tx.Text, keyword) {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
				).Debug("Transaction categorized by keyword")
				return category.Name
			}
		}
	}
	return models.FallbackCategory
}

// Apply categorizes every transaction in place.
func (c *Categorizer) Apply(entries []models.Transaction) {
	for i := range entries {
		entries[i].Category = c.Categorize(entries[i])
	}
}
