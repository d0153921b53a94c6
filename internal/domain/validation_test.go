package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTolerances(t *testing.T) {
	tests := []struct {
		name        string
		tolerances  Tolerances
		expectedErr error
	}{
		{
			name:       "valid",
			tolerances: Tolerances{DateDays: 2, AmountPercent: decimal.NewFromInt(1)},
		},
		{
			name:       "zero is valid",
			tolerances: Tolerances{},
		},
		{
			name:        "negative days",
			tolerances:  Tolerances{DateDays: -1},
			expectedErr: ErrNegativeDateTolerance,
		},
		{
			name:        "negative percent",
			tolerances:  Tolerances{AmountPercent: decimal.NewFromFloat(-0.5)},
			expectedErr: ErrNegativeAmountTolerance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTolerances(tt.tolerances)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestValidateSeparator(t *testing.T) {
	for _, sep := range []ThousandsSeparator{SeparatorComma, SeparatorDot, ""} {
		if err := ValidateSeparator(sep); err != nil {
			t.Errorf("separator %q should be valid: %v", sep, err)
		}
	}

	if err := ValidateSeparator(";"); !errors.Is(err, ErrInvalidSeparator) {
		t.Errorf("expected ErrInvalidSeparator, got %v", err)
	}
}

func TestValidateReviewStatus(t *testing.T) {
	for _, s := range []ReviewStatus{StatusUnreviewed, StatusReviewed, StatusDismissed} {
		if err := ValidateReviewStatus(s); err != nil {
			t.Errorf("status %q should be valid: %v", s, err)
		}
	}

	if err := ValidateReviewStatus("archived"); !errors.Is(err, ErrInvalidReviewStatus) {
		t.Errorf("expected ErrInvalidReviewStatus, got %v", err)
	}
}
