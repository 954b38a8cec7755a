package model

import "time"

// Stock type constants
const (
	StockTypeBlood     = "Blood"
	StockTypePlasma    = "Plasma"
	StockTypePlatelets = "Platelets"
)

func ValidStockType(t string) bool {
	return t == StockTypeBlood || t == StockTypePlasma || t == StockTypePlatelets
}

// BloodGroups is the set of accepted ABO/Rh groups
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodGroup(g string) bool {
	for _, bg := range BloodGroups {
		if bg == g {
			return true
		}
	}
	return false
}

// StockItem is a quantity of a transfusable blood product of a given group.
// Quantity is in whole units and never negative.
type StockItem struct {
	Base
	Type       string    `json:"type"`
	BloodGroup string    `json:"blood_group"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	HospitalID string    `json:"hospital_id,omitempty"`
}

// CreateStockRequest represents stock creation parameters
type CreateStockRequest struct {
	Type       string `json:"type" binding:"required,oneof=Blood Plasma Platelets" validate:"required,oneof=Blood Plasma Platelets"`
	BloodGroup string `json:"blood_group" binding:"required" validate:"required"`
	Quantity   int    `json:"quantity" binding:"min=0" validate:"min=0"`
	ExpiryDate string `json:"expiry_date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	HospitalID string `json:"hospital_id"`
}

// UpdateStockRequest represents partial stock update parameters; nil fields
// are left unchanged.
type UpdateStockRequest struct {
	Type       *string `json:"type" binding:"omitempty,oneof=Blood Plasma Platelets" validate:"omitempty,oneof=Blood Plasma Platelets"`
	BloodGroup *string `json:"blood_group" validate:"omitempty"`
	Quantity   *int    `json:"quantity" binding:"omitempty,min=0" validate:"omitempty,min=0"`
	ExpiryDate *string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02" validate:"omitempty,datetime=2006-01-02"`
	HospitalID *string `json:"hospital_id"`
}
