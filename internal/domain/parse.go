package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Accepted date layouts, tried in order. All parsed dates are normalized to
// midnight UTC so day differences are exact multiples of 24h.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
}

// TextOf reads the raw value of a role as text. Unmapped roles, missing
// columns, and nil values all yield "".
func TextOf(rec Record, mapping ColumnMapping, role Role) string {
	col := mapping.Column(role)
	if col == "" {
		return ""
	}
	return rawText(rec[col])
}

// AmountOf reads and parses the amount of a role. Values that are already
// numeric pass through; strings are parsed with the given thousands
// separator. Returns ErrNotParseable for anything else.
func AmountOf(rec Record, mapping ColumnMapping, role Role, sep ThousandsSeparator) (decimal.Decimal, error) {
	col := mapping.Column(role)
	if col == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRoleNotMapped, role)
	}

	switch v := rec[col].(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case decimal.Decimal:
		return v, nil
	case string:
		return ParseAmount(v, sep)
	default:
		return decimal.Zero, fmt.Errorf("%w: column %q", ErrNotParseable, col)
	}
}

// DateOf reads and parses the calendar date of a role.
func DateOf(rec Record, mapping ColumnMapping, role Role) (time.Time, error) {
	col := mapping.Column(role)
	if col == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrRoleNotMapped, role)
	}

	if v, ok := rec[col].(time.Time); ok {
		return truncateToDay(v), nil
	}

	return ParseDate(rawText(rec[col]))
}

// ParseAmount normalizes a raw amount string to a signed decimal. The
// thousands separator is stripped; when the separator is "." the comma
// becomes the decimal point (e.g. "1.234,56" -> 1234.56).
func ParseAmount(raw string, sep ThousandsSeparator) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrNotParseable)
	}

	switch sep {
	case SeparatorDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", ErrNotParseable, raw)
	}

	return d, nil
}

// ParseDate parses a raw date string against the accepted layouts,
// normalized to midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrNotParseable)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: date %q", ErrNotParseable, raw)
}

// DaysBetween returns the absolute whole-day difference between two
// midnight-normalized dates.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func rawText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case decimal.Decimal:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
