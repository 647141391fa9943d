package models

import "time"

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID              int64      `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"user"`
	Message         string     `db:"message" json:"message"`
	DetailedMessage *string    `db:"detailed_message" json:"detailed_message"`
	RelatedReportID *int64     `db:"related_report_id" json:"-"`
	RelatedReport   *ReportRef `db:"-" json:"related_report"`
	IsRead          bool       `db:"is_read" json:"is_read"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// NotificationFilter narrows a recipient's feed.
type NotificationFilter struct {
	UserID   string
	IsRead   *bool
	Page     int
	PageSize int
}
