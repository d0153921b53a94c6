package domain

import "errors"

var (
	// Field extraction errors
	ErrNotParseable  = errors.New("field value is not parseable")
	ErrRoleNotMapped = errors.New("role is not mapped to a column")

	// Input validation errors
	ErrNegativeDateTolerance   = errors.New("date tolerance must be non-negative")
	ErrNegativeAmountTolerance = errors.New("amount tolerance must be non-negative")
	ErrInvalidSeparator        = errors.New("thousands separator must be \",\" or \".\"")
	ErrInvalidReviewStatus     = errors.New("invalid review status")
)
