package model

// Medical request status constants
const (
	RequestStatusPending   = "Pending"
	RequestStatusApproved  = "Approved"
	RequestStatusCompleted = "Completed"
)

func ValidRequestStatus(s string) bool {
	return s == RequestStatusPending || s == RequestStatusApproved || s == RequestStatusCompleted
}

// Requirement constants
const (
	RequirementBlood     = "Blood"
	RequirementPlasma    = "Plasma"
	RequirementPlatelets = "Platelets"
	RequirementOrgan     = "Organ"
)

// statusTransitions is the allowed forward progression. A pending request
// may be completed directly when an operator fulfils it in one step.
var statusTransitions = map[string][]string{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusCompleted},
	RequestStatusApproved: {RequestStatusCompleted},
}

// CanTransition reports whether a request status may move from one state
// to another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MedicalRequest is a patient/family-submitted ask for a blood product or
// organ, tracked through the Pending/Approved/Completed lifecycle. A request
// is associated with a user only informally, by ContactNumber matching the
// user's phone.
type MedicalRequest struct {
	Base
	PatientName   string `json:"patient_name"`
	Requirement   string `json:"requirement"`
	BloodGroup    string `json:"blood_group,omitempty"`
	OrganType     string `json:"organ_type,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Urgency       string `json:"urgency"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
	HospitalName  string `json:"hospital_name,omitempty"`
	Notes         string `json:"notes,omitempty"`
	HospitalID    string `json:"hospital_id,omitempty"`
}

// CreateRequestRequest represents medical request submission parameters.
// Status is always assigned server-side (Pending) and CreatedAt at creation.
type CreateRequestRequest struct {
	PatientName   string `json:"patient_name" binding:"required" validate:"required"`
	Requirement   string `json:"requirement" binding:"required,oneof=Blood Plasma Platelets Organ" validate:"required,oneof=Blood Plasma Platelets Organ"`
	BloodGroup    string `json:"blood_group" validate:"omitempty"`
	OrganType     string `json:"organ_type"`
	Quantity      int    `json:"quantity" binding:"min=0" validate:"min=0"`
	Urgency       string `json:"urgency" binding:"required,oneof=Low Medium High" validate:"required,oneof=Low Medium High"`
	Location      string `json:"location" binding:"required" validate:"required"`
	ContactNumber string `json:"contact_number" binding:"required" validate:"required"`
	HospitalID    string `json:"hospital_id"`
}

// EmergencyRequestRequest represents an emergency submission. Urgency is not
// accepted from the caller; emergencies are always High.
type EmergencyRequestRequest struct {
	PatientName   string `json:"patient_name" binding:"required" validate:"required"`
	Requirement   string `json:"requirement" binding:"required,oneof=Blood Plasma Platelets Organ" validate:"required,oneof=Blood Plasma Platelets Organ"`
	BloodGroup    string `json:"blood_group" validate:"omitempty"`
	OrganType     string `json:"organ_type"`
	Quantity      int    `json:"quantity" binding:"min=0" validate:"min=0"`
	Location      string `json:"location" binding:"required" validate:"required"`
	ContactNumber string `json:"contact_number" binding:"required" validate:"required"`
	HospitalName  string `json:"hospital_name"`
	Notes         string `json:"notes"`
}

// UpdateRequestStatusRequest represents a status change
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Completed" validate:"required,oneof=Pending Approved Completed"`
}

// DashboardStats are the derived dashboard counters, computed on read.
type DashboardStats struct {
	TotalStockUnits   int `json:"total_stock_units"`
	PendingRequests   int `json:"pending_requests"`
	CompletedRequests int `json:"completed_requests"`
}
