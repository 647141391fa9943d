package models

import (
	"fmt"
	"strings"
	"time"
)

// ReportType distinguishes lost from found reports.
type ReportType string

const (
	ReportTypeLost  ReportType = "lost"
	ReportTypeFound ReportType = "found"
)

// ParseReportType accepts only "lost" or "found".
func ParseReportType(raw string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(raw)))
	if t != ReportTypeLost && t != ReportTypeFound {
		return "", fmt.Errorf("unknown report type %q", raw)
	}
	return t, nil
}

// ReportStatus is the moderation/resolution state of a report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
	ReportStatusResolved ReportStatus = "resolved"
)

// ParseReportStatus accepts the four known statuses.
func ParseReportStatus(raw string) (ReportStatus, error) {
	s := ReportStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected, ReportStatusResolved:
		return s, nil
	}
	return "", fmt.Errorf("unknown report status %q", raw)
}

// Report is the owning record for a lost or found item.
type Report struct {
	ID         int64        `db:"id" json:"id"`
	Type       ReportType   `db:"type" json:"type"`
	Status     ReportStatus `db:"status" json:"status"`
	DateTime   time.Time    `db:"date_time" json:"date_time"`
	ReportedBy string       `db:"reported_by" json:"-"`
}

// LostItem holds the item details of a lost report.
type LostItem struct {
	ID               int64      `db:"id" json:"id"`
	ReportID         int64      `db:"report_id" json:"report"`
	ItemName         string     `db:"item_name" json:"item_name"`
	Description      string     `db:"description" json:"description"`
	Category         string     `db:"category" json:"category"`
	LocationLastSeen string     `db:"location_last_seen" json:"location_last_seen"`
	PhotoURL         *string    `db:"photo_url" json:"photo_url"`
	DateLost         *time.Time `db:"date_lost" json:"date_lost"`
}

// FoundItem holds the item details of a found report.
type FoundItem struct {
	ID            int64      `db:"id" json:"id"`
	ReportID      int64      `db:"report_id" json:"report"`
	ItemName      string     `db:"item_name" json:"item_name"`
	Description   string     `db:"description" json:"description"`
	Category      string     `db:"category" json:"category"`
	LocationFound string     `db:"location_found" json:"location_found"`
	PhotoURL      *string    `db:"photo_url" json:"photo_url"`
	DateFound     *time.Time `db:"date_found" json:"date_found"`
	SupervisedBy  *string    `db:"supervised_by" json:"supervised_by"`
}

// ReportDetail is a report joined with its reporter and sub-item.
// Exactly one of LostItem and FoundItem is set, matching Type.
type ReportDetail struct {
	Report
	Reporter  UserSummary `json:"reported_by"`
	LostItem  *LostItem   `json:"lost_item"`
	FoundItem *FoundItem  `json:"found_item"`
}

// ItemName returns the sub-item's name, or an empty string.
func (d *ReportDetail) ItemName() string {
	switch {
	case d.LostItem != nil:
		return d.LostItem.ItemName
	case d.FoundItem != nil:
		return d.FoundItem.ItemName
	}
	return ""
}

// PhotoURL returns the sub-item's photo, if any.
func (d *ReportDetail) PhotoURL() *string {
	switch {
	case d.LostItem != nil:
		return d.LostItem.PhotoURL
	case d.FoundItem != nil:
		return d.FoundItem.PhotoURL
	}
	return nil
}

// ReportRef is the compact report shape embedded in notifications.
type ReportRef struct {
	ID       int64        `json:"id"`
	Type     ReportType   `json:"type"`
	Status   ReportStatus `json:"status"`
	DateTime time.Time    `json:"date_time"`
}

// Report ordering values accepted by the list endpoint.
const (
	OrderDateTimeAsc  = "date_time"
	OrderDateTimeDesc = "-date_time"
)

// ReportFilter captures list criteria for reports.
type ReportFilter struct {
	Type       ReportType
	Status     ReportStatus
	Category   string
	Search     string
	ReportedBy string
	Ordering   string
	Page       int
	PageSize   int
}

// CacheKey renders a stable key for the filter; the list cache is keyed on it.
func (f ReportFilter) CacheKey() string {
	page, size := NormalizePage(f.Page, f.PageSize)
	ordering := f.Ordering
	if ordering != OrderDateTimeAsc {
		ordering = OrderDateTimeDesc
	}
	return fmt.Sprintf("reports:list:t=%s:s=%s:c=%s:q=%s:u=%s:o=%s:p=%d:n=%d",
		f.Type, f.Status, strings.ToLower(f.Category), strings.ToLower(f.Search), f.ReportedBy, ordering, page, size)
}
