// Package format renders dates and amounts exactly the way the admin UI
// displays them: dd-mm-yyyy dates, 12-hour timestamps and SAR amounts with
// en-US thousands grouping.
package format

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing raw date strings from records.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseFlexible parses a date string in any of the accepted layouts.
func ParseFlexible(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// FormatSAR formats an amount as "1,234.56 ر.س". Whole amounts carry no
// decimal part.
func FormatSAR(amount float64) string {
	return groupThousands(amount) + " ر.س"
}

// FormatDate renders a raw date string as dd-mm-yyyy. Unparsable input is
// returned unchanged.
func FormatDate(value string) string {
	t, err := ParseFlexible(value)
	if err != nil {
		return value
	}
	return t.Format("02-01-2006")
}

// FormatDateTime renders a raw timestamp as "dd-mm-yyyy hh:mm AM/PM".
// Unparsable input is returned unchanged.
func FormatDateTime(value string) string {
	t, err := ParseFlexible(value)
	if err != nil {
		return value
	}
	return t.Format("02-01-2006 03:04 PM")
}

func groupThousands(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
