package amount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGerman(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"1.234,56", "1234.56"},
		{"1.000.000,00", "1000000.00"},
		{"500,00", "500.00"},
		{"500", "500"},
		{"-1.234,56", "-1234.56"},
		{"0,99", "0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeGerman(tt.raw))
		})
	}
}

func TestParse(t *testing.T) {
	value, err := Parse("1.234,56", nil)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", value.StringFixed(2))

	_, err = Parse("CORP", nil)
	assert.Error(t, err)
}

func TestParseWithCustomNormalizer(t *testing.T) {
	// The normalization convention is swappable; a US-style normalizer
	// only has to strip thousands commas.
	us := func(s string) string { return strings.ReplaceAll(s, ",", "") }

	value, err := Parse("1,234.56", us)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", value.StringFixed(2))
}
