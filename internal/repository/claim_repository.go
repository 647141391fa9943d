package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lostfound-api/internal/models"
)

const claimSelect = `SELECT cl.id, cl.report_id, cl.claimed_by, cl.message, cl.received, cl.date_claimed, cl.date_received, cl.received_from, cl.supervised_by, cl.verified_by, ` +
	`u.id AS "claimant.id", u.username AS "claimant.username", u.email AS "claimant.email", u.first_name AS "claimant.first_name", u.last_name AS "claimant.last_name", u.profile_avatar_url AS "claimant.profile_avatar_url" ` +
	`FROM claims cl JOIN users u ON u.id = cl.claimed_by`

// ClaimRepository persists claims on found reports.
type ClaimRepository struct {
	db *sqlx.DB
}

// NewClaimRepository constructs the repository.
func NewClaimRepository(db *sqlx.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create inserts a claim and fills in its id.
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	if claim.DateClaimed.IsZero() {
		claim.DateClaimed = time.Now().UTC()
	}
	const query = `INSERT INTO claims (report_id, claimed_by, message, received, date_claimed, date_received, received_from, supervised_by, verified_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		claim.ReportID, claim.ClaimedBy, claim.Message, claim.Received, claim.DateClaimed,
		claim.DateReceived, claim.ReceivedFrom, claim.SupervisedBy, claim.VerifiedBy,
	).Scan(&claim.ID); err != nil {
		return fmt.Errorf("create claim: %w", err)
	}
	return nil
}

// FindByID returns a claim with its claimant.
func (r *ClaimRepository) FindByID(ctx context.Context, id int64) (*models.ClaimDetail, error) {
	var claim models.ClaimDetail
	if err := r.db.GetContext(ctx, &claim, claimSelect+` WHERE cl.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find claim: %w", err)
	}
	return &claim, nil
}

// List returns claims newest first.
func (r *ClaimRepository) List(ctx context.Context, filter models.ClaimFilter) ([]models.ClaimDetail, int, error) {
	var conditions []string
	var args []interface{}
	if filter.ClaimedBy != "" {
		args = append(args, filter.ClaimedBy)
		conditions = append(conditions, fmt.Sprintf("cl.claimed_by = $%d", len(args)))
	}
	if filter.ReportID != nil {
		args = append(args, *filter.ReportID)
		conditions = append(conditions, fmt.Sprintf("cl.report_id = $%d", len(args)))
	}
	where := whereClause(conditions)
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	query := fmt.Sprintf("%s%s ORDER BY cl.date_claimed DESC, cl.id DESC LIMIT %d OFFSET %d", claimSelect, where, pageSize, (page-1)*pageSize)
	var claims []models.ClaimDetail
	if err := r.db.SelectContext(ctx, &claims, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list claims: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM claims cl"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count claims: %w", err)
	}
	return claims, total, nil
}

// Update writes the mutable claim fields. Claimant and report never change.
func (r *ClaimRepository) Update(ctx context.Context, claim *models.Claim) error {
	const query = `UPDATE claims SET message = :message, received = :received, date_received = :date_received, received_from = :received_from, supervised_by = :supervised_by, verified_by = :verified_by WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a claim.
func (r *ClaimRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	return expectAffected(res)
}
