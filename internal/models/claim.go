package models

import "time"

// Claim represents one insurance claim being processed
type Claim struct {
	ID           string    `json:"id"`
	ClaimNumber  string    `json:"claim_number"`
	PolicyTypeID string    `json:"policy_type_id"`
	Status       string    `json:"status"` // SUBMITTED, UNDER_SURVEY, ASSESSED, APPROVED, REJECTED, SETTLED, CLOSED
	Amount       float64   `json:"amount"`
	FormData     string    `json:"form_data"` // JSON blob, see FormData
	Version      int64     `json:"version"`   // incremented on every form_data write
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PolicyType represents an insurance product line (Marine, Fire, Motor, ...)
type PolicyType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Status constants
const (
	StatusSubmitted   = "SUBMITTED"
	StatusUnderSurvey = "UNDER_SURVEY"
	StatusAssessed    = "ASSESSED"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
	StatusSettled     = "SETTLED"
	StatusClosed      = "CLOSED"
)

// ValidStatuses lists every lifecycle state a claim may hold
var ValidStatuses = []string{
	StatusSubmitted,
	StatusUnderSurvey,
	StatusAssessed,
	StatusApproved,
	StatusRejected,
	StatusSettled,
	StatusClosed,
}

// IsValidStatus reports whether s is a known lifecycle state
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
