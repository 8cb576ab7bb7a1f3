package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementDate(t *testing.T) {
	date, err := ParseStatementDate("14.02.2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseStatementDate("2023-02-14")
	assert.Error(t, err)
	_, err = ParseStatementDate("Gutschrift")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	date := time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-02-14", ToISODate(date))
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2023, 2, 14, 13, 37, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in       time.Time
		expected time.Time
	}{
		{time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, EndOfMonth(tt.in))
	}
}
