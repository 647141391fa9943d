package models

import "time"

// Comment is a message in a report's thread.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	ReportID  int64     `db:"report_id" json:"report"`
	UserID    string    `db:"user_id" json:"-"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentDetail is a comment joined with its author.
type CommentDetail struct {
	Comment
	User UserSummary `json:"user"`
}

// CommentFilter narrows comment listings.
type CommentFilter struct {
	ReportID *int64
	Page     int
	PageSize int
}
