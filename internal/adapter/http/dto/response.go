package dto

import "github.com/iho/bankrecon/internal/domain"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// BenfordResponse wraps the leading-digit distribution.
type BenfordResponse struct {
	Points []domain.BenfordPoint `json:"points"`
}
