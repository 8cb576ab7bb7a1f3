package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accountcheck/internal/models"
)

func TestCategorizeFirstMatchWins(t *testing.T) {
	// Definition order is significant: a target containing "SUPERMARKET"
	// must land in "Food" even though "Shopping" matches "SUPER" too.
	categories := []models.CategoryConfig{
		{Name: "Food", Keywords: []string{"SUPERMARKET"}},
		{Name: "Shopping", Keywords: []string{"SUPER"}},
	}
	c := New(categories, nil)

	tx := models.Transaction{Target: "SUPERMARKET MUSTERSTADT", Kind: models.KindDebit}
	assert.Equal(t, "Food", c.Categorize(tx))
}

func TestCategorize(t *testing.T) {
	categories := []models.CategoryConfig{
		{Name: "Wohnen", Keywords: []string{"MIETE", "LANDLORD"}},
		{Name: "Lebensmittel", Keywords: []string{"REWE", "EDEKA"}},
	}
	c := New(categories, nil)

	tests := []struct {
		name     string
		tx       models.Transaction
		expected string
	}{
		{
			name:     "keyword in target",
			tx:       models.Transaction{Target: "LANDLORD GMBH"},
			expected: "Wohnen",
		},
		{
			name:     "keyword in text",
			tx:       models.Transaction{Target: "SEPA", Text: "MIETE Juli"},
			expected: "Wohnen",
		},
		{
			name:     "second category",
			tx:       models.Transaction{Target: "REWE MARKT"},
			expected: "Lebensmittel",
		},
		{
			name:     "no match falls back",
			tx:       models.Transaction{Target: "UNBEKANNT"},
			expected: models.FallbackCategory,
		},
		{
			name:     "matching is case-sensitive",
			tx:       models.Transaction{Target: "rewe markt"},
			expected: models.FallbackCategory,
		},
		{
			name:     "empty transaction falls back",
			tx:       models.Transaction{},
			expected: models.FallbackCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Categorize(tt.tx))
		})
	}
}

func TestCategorizeDeterminism(t *testing.T) {
	categories := []models.CategoryConfig{
		{Name: "A", Keywords: []string{"X"}},
		{Name: "B", Keywords: []string{"X"}},
	}
	c := New(categories, nil)
	tx := models.Transaction{Target: "X"}

	for i := 0; i < 10; i++ {
		assert.Equal(t, "A", c.Categorize(tx))
	}
}

func TestApply(t *testing.T) {
	c := New([]models.CategoryConfig{
		{Name: "Wohnen", Keywords: []string{"MIETE"}},
	}, nil)

	entries := []models.Transaction{
		{Target: "MIETE Juli"},
		{Target: "etwas anderes"},
	}
	c.Apply(entries)

	assert.Equal(t, "Wohnen", entries[0].Category)
	assert.Equal(t, models.FallbackCategory, entries[1].Category)
}

func TestCategorizeNoDefinitions(t *testing.T) {
	c := New(nil, nil)
	assert.Equal(t, models.FallbackCategory, c.Categorize(models.Transaction{Target: "X"}))
}
