package dto

import "time"

// CreateClaimRequest is the body of POST /claims.
type CreateClaimRequest struct {
	ReportID int64   `json:"report" validate:"required,gt=0"`
	Message  *string `json:"message" validate:"omitempty,max=2000"`
}

// UpdateClaimRequest applies a partial update to a claim. received_from,
// supervised_by and verified_by are read-only.
type UpdateClaimRequest struct {
	Message      *string    `json:"message" validate:"omitempty,max=2000"`
	Received     *bool      `json:"received"`
	DateReceived *time.Time `json:"date_received"`
}

// ClaimQuery binds the GET /claims query string.
type ClaimQuery struct {
	ReportID *int64 `form:"report"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
