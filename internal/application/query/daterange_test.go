package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeNormalizesToDayBoundaries(t *testing.T) {
	from := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC)

	dr := NewDateRange(from, to)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), dr.From)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999999999, time.UTC), dr.To)
}

func TestContainsRawBoundaries(t *testing.T) {
	dr := NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	tests := []struct {
		value    string
		expected bool
	}{
		{"2024-03-01", true},
		{"2024-03-01T00:00:00", true},
		// any time on the last day still counts
		{"2024-03-31T23:59:59", true},
		{"2024-03-15T12:00:00", true},
		{"2024-02-29", false},
		{"2024-04-01", false},
		{"2024-04-01T00:00:00", false},
		// malformed values are excluded, never an error
		{"pending-send", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, dr.ContainsRaw(tt.value), tt.value)
	}
}

func TestSingleDayRange(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	dr := NewDateRange(day, day)

	assert.True(t, dr.ContainsRaw("2024-03-05T08:00:00"))
	assert.True(t, dr.ContainsRaw("2024-03-05"))
	assert.False(t, dr.ContainsRaw("2024-03-04"))
	assert.False(t, dr.ContainsRaw("2024-03-06"))
}
