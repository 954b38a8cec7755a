package model

// OrganRecord is an entry indicating availability and urgency for a named
// organ type. Type is free text.
type OrganRecord struct {
	Base
	Type       string `json:"type"`
	Available  bool   `json:"available"`
	Urgency    string `json:"urgency"`
	HospitalID string `json:"hospital_id,omitempty"`
}

// CreateOrganRequest represents organ record creation parameters
type CreateOrganRequest struct {
	Type       string `json:"type" binding:"required" validate:"required"`
	Available  bool   `json:"available"`
	Urgency    string `json:"urgency" binding:"required,oneof=Low Medium High" validate:"required,oneof=Low Medium High"`
	HospitalID string `json:"hospital_id"`
}

// UpdateOrganRequest represents partial organ record update parameters
type UpdateOrganRequest struct {
	Type       *string `json:"type" validate:"omitempty"`
	Available  *bool   `json:"available"`
	Urgency    *string `json:"urgency" binding:"omitempty,oneof=Low Medium High" validate:"omitempty,oneof=Low Medium High"`
	HospitalID *string `json:"hospital_id"`
}
