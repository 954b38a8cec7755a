package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for all stored records
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase assigns a fresh identifier and creation timestamps
func NewBase() Base {
	now := time.Now()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Urgency levels shared by organ records and medical requests
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

func ValidUrgency(u string) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"
