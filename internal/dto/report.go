package dto

// CreateReportRequest is the multipart or JSON body of POST /reports. The
// location and date fields that apply depend on Type.
type CreateReportRequest struct {
	Type             string `form:"type" json:"type" validate:"required,oneof=lost found"`
	ItemName         string `form:"item_name" json:"item_name" validate:"required,max=255"`
	Description      string `form:"description" json:"description" validate:"required"`
	Category         string `form:"category" json:"category" validate:"required,max=100"`
	LocationLastSeen string `form:"location_last_seen" json:"location_last_seen" validate:"max=255"`
	LocationFound    string `form:"location_found" json:"location_found" validate:"max=255"`
	DateLost         string `form:"date_lost" json:"date_lost" validate:"omitempty,datetime=2006-01-02"`
	DateFound        string `form:"date_found" json:"date_found" validate:"omitempty,datetime=2006-01-02"`
	SupervisedBy     string `form:"supervised_by" json:"supervised_by" validate:"omitempty,uuid"`
}

// PhotoUpload carries an optional image attached to a report.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// UpdateReportRequest applies a partial update; nil fields are left untouched.
type UpdateReportRequest struct {
	Type             *string `form:"type" json:"type"`
	Status           *string `form:"status" json:"status" validate:"omitempty,oneof=pending approved rejected resolved"`
	ItemName         *string `form:"item_name" json:"item_name" validate:"omitempty,min=1,max=255"`
	Description      *string `form:"description" json:"description" validate:"omitempty,min=1"`
	Category         *string `form:"category" json:"category" validate:"omitempty,min=1,max=100"`
	LocationLastSeen *string `form:"location_last_seen" json:"location_last_seen" validate:"omitempty,max=255"`
	LocationFound    *string `form:"location_found" json:"location_found" validate:"omitempty,max=255"`
	DateLost         *string `form:"date_lost" json:"date_lost" validate:"omitempty,datetime=2006-01-02"`
	DateFound        *string `form:"date_found" json:"date_found" validate:"omitempty,datetime=2006-01-02"`
	SupervisedBy     *string `form:"supervised_by" json:"supervised_by" validate:"omitempty,uuid"`
}

// ReportQuery binds the GET /reports query string.
type ReportQuery struct {
	Type     string `form:"type"`
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ActionMessageRequest is the optional body of claim_item and item_found.
type ActionMessageRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// ActionResponse acknowledges a report workflow action.
type ActionResponse struct {
	Status  string `json:"status"`
	ClaimID *int64 `json:"claim_id,omitempty"`
}

// LogQuery binds activity and resolution log listings and exports.
type LogQuery struct {
	Action   string `form:"action"`
	UserID   string `form:"user"`
	Format   string `form:"format"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
