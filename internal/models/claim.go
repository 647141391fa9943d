package models

import "time"

// Claim records a user's assertion of ownership over a found item.
type Claim struct {
	ID           int64      `db:"id" json:"id"`
	ReportID     int64      `db:"report_id" json:"report"`
	ClaimedBy    string     `db:"claimed_by" json:"-"`
	Message      *string    `db:"message" json:"message"`
	Received     bool       `db:"received" json:"received"`
	DateClaimed  time.Time  `db:"date_claimed" json:"date_claimed"`
	DateReceived *time.Time `db:"date_received" json:"date_received"`
	ReceivedFrom *string    `db:"received_from" json:"received_from"`
	SupervisedBy *string    `db:"supervised_by" json:"supervised_by"`
	VerifiedBy   *string    `db:"verified_by" json:"verified_by"`
}

// ClaimDetail is a claim joined with its claimant.
type ClaimDetail struct {
	Claim
	Claimant UserSummary `json:"claimed_by"`
}

// ClaimFilter narrows claim listings. An empty ClaimedBy lists every claim.
type ClaimFilter struct {
	ClaimedBy string
	ReportID  *int64
	Page      int
	PageSize  int
}
