package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationRecord is a completed donation in a donor's history
type DonationRecord struct {
	ID       uuid.UUID `json:"id"`
	DonorID  uuid.UUID `json:"donor_id"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Amount   string    `json:"amount"`
	Location string    `json:"location"`
}

// DonationOpportunity is a nearby drive or urgent appeal donors can
// register for.
type DonationOpportunity struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Date             string      `json:"date"`
	Time             string      `json:"time"`
	Location         string      `json:"location"`
	Distance         string      `json:"distance"`
	Urgent           bool        `json:"urgent"`
	Type             string      `json:"type"`
	RegisteredDonors []uuid.UUID `json:"registered_donors"`
}

// Eligibility is a donor's computed permission to donate again, gated by the
// minimum interval since the last donation.
type Eligibility struct {
	LastDonation  time.Time `json:"last_donation"`
	EligibleOn    time.Time `json:"eligible_on"`
	Eligible      bool      `json:"eligible"`
	DaysRemaining int       `json:"days_remaining"`
}
