package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSAR(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{50000, "50,000 ر.س"},
		{350, "350 ر.س"},
		{1234567.5, "1,234,567.5 ر.س"},
		{16258.12, "16,258.12 ر.س"},
		{0, "0 ر.س"},
		{-862.5, "-862.5 ر.س"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSAR(tt.amount))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05-03-2024", FormatDate("2024-03-05"))
	assert.Equal(t, "05-03-2024", FormatDate("2024-03-05T14:30:00"))

	// unparsable input passes through unchanged
	assert.Equal(t, "pending-send", FormatDate("pending-send"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "05-03-2024 02:30 PM", FormatDateTime("2024-03-05T14:30:00"))
	assert.Equal(t, "05-03-2024 12:00 AM", FormatDateTime("2024-03-05"))
	assert.Equal(t, "not-a-date", FormatDateTime("not-a-date"))
}

func TestParseFlexible(t *testing.T) {
	for _, value := range []string{
		"2024-03-05",
		"2024-03-05T14:30:00",
		"2024-03-05T14:30:00Z",
		"2024-03-05 14:30:00",
	} {
		parsed, err := ParseFlexible(value)
		require.NoError(t, err, value)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, 5, parsed.Day())
	}

	_, err := ParseFlexible("05/03/2024")
	assert.Error(t, err)
}
