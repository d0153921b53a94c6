package domain

import (
	"github.com/shopspring/decimal"
)

// Record is a single row from one side of a reconciliation: an ordered row
// of column name to raw scalar value (string, number, or nil). Records are
// read-only inputs; the engine never mutates field values.
type Record map[string]any

// Role is a semantic column role resolved through a ColumnMapping.
type Role string

const (
	RoleDate        Role = "date"
	RoleDescription Role = "description"
	RoleDebit       Role = "debit"
	RoleCredit      Role = "credit"
	RoleReference   Role = "reference"
)

// ColumnMapping maps semantic roles to source column names for one side of a
// reconciliation. An empty column name means the role is not mapped and must
// never be read.
type ColumnMapping struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Reference   string `json:"reference"`
}

// Column returns the source column name for a role, or "" if unmapped.
func (m ColumnMapping) Column(role Role) string {
	switch role {
	case RoleDate:
		return m.Date
	case RoleDescription:
		return m.Description
	case RoleDebit:
		return m.Debit
	case RoleCredit:
		return m.Credit
	case RoleReference:
		return m.Reference
	default:
		return ""
	}
}

// Has reports whether the role is mapped to a source column.
func (m ColumnMapping) Has(role Role) bool {
	return m.Column(role) != ""
}

// ThousandsSeparator is the grouping character used when parsing amounts.
// When the separator is ".", the comma is treated as the decimal point.
type ThousandsSeparator string

const (
	SeparatorComma ThousandsSeparator = ","
	SeparatorDot   ThousandsSeparator = "."
)

// Tolerances is the strictest (tier 1) matching window supplied by the
// caller. The tolerance tier schedule widens from here.
type Tolerances struct {
	DateDays      int             `json:"date_days"`
	AmountPercent decimal.Decimal `json:"amount_percent"`
}
