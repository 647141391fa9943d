package models

import "time"

// Activity actions written by the report, claim and auth workflows.
const (
	ActivityReportCreate   = "REPORT_CREATE"
	ActivityReportUpdate   = "REPORT_UPDATE"
	ActivityReportDelete   = "REPORT_DELETE"
	ActivityReportApprove  = "REPORT_APPROVE"
	ActivityReportReject   = "REPORT_REJECT"
	ActivityReportClaim    = "REPORT_CLAIM"
	ActivityReportResolved = "REPORT_ITEM_FOUND"
	ActivityUserRegister   = "USER_REGISTER"
	ActivityLogin          = "LOGIN"
	ActivityLogout         = "LOGOUT"
)

// ActivityLog is an append-only trail of user actions.
type ActivityLog struct {
	ID           int64     `db:"id" json:"id"`
	UserID       *string   `db:"user_id" json:"user_id"`
	UserFullName *string   `db:"user_full_name" json:"user_full_name"`
	Action       string    `db:"action" json:"action"`
	ReportID     *int64    `db:"report_id" json:"report_id"`
	ItemName     *string   `db:"item_name" json:"item_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ResolutionLog records a report being resolved through item_found.
type ResolutionLog struct {
	ID           int64       `db:"id" json:"id"`
	ReportID     *int64      `db:"report_id" json:"report_id"`
	ReportTitle  string      `db:"report_title" json:"report_title"`
	ResolvedByID string      `db:"resolved_by" json:"-"`
	ResolvedBy   UserSummary `db:"-" json:"resolved_by"`
	ReceiverName string      `db:"receiver_name" json:"receiver_name"`
	GiverName    string      `db:"giver_name" json:"giver_name"`
	DateResolved time.Time   `db:"date_resolved" json:"date_resolved"`
}

// LogFilter narrows activity and resolution log listings.
type LogFilter struct {
	Action   string
	UserID   string
	Page     int
	PageSize int
}
