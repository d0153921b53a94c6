package domain

import (
	"fmt"
)

// ValidateTolerances validates a caller-supplied base tolerance.
func ValidateTolerances(t Tolerances) error {
	if t.DateDays < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDateTolerance, t.DateDays)
	}

	if t.AmountPercent.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativeAmountTolerance, t.AmountPercent)
	}

	return nil
}

// ValidateSeparator validates a thousands separator. The empty value is
// accepted and treated as ",".
func ValidateSeparator(sep ThousandsSeparator) error {
	switch sep {
	case SeparatorComma, SeparatorDot, "":
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidSeparator, sep)
	}
}

// ValidateReviewStatus validates a review status transition target.
func ValidateReviewStatus(s ReviewStatus) error {
	switch s {
	case StatusUnreviewed, StatusReviewed, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidReviewStatus, s)
	}
}
