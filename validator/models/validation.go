package models

import "time"

// ValidateRequest is the body of POST /validations.
type ValidateRequest struct {
	ExpirationDate string `json:"expiration_date"`
}

// Validation is the outcome of checking one expiration date input.
// ExpiresAt and CardFace are only set for valid dates; Expired marks a
// rejected date whose calendar month has already passed.
type Validation struct {
	Input            string     `json:"input"`
	Valid            bool       `json:"valid"`
	PotentiallyValid bool       `json:"potentially_valid"`
	Expired          bool       `json:"expired,omitempty"`
	Message          string     `json:"message,omitempty"`
	CardFace         string     `json:"card_face,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}
