package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lostfound-api/internal/models"
)

// ActivityRepository stores the activity and resolution trails.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs the repository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// CreateActivity appends an activity entry.
func (r *ActivityRepository) CreateActivity(ctx context.Context, entry *models.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO activity_logs (user_id, action, report_id, item_name, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, entry.UserID, entry.Action, entry.ReportID, entry.ItemName, entry.CreatedAt).Scan(&entry.ID); err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// ListActivity returns activity entries newest first.
func (r *ActivityRepository) ListActivity(ctx context.Context, filter models.LogFilter) ([]models.ActivityLog, int, error) {
	var conditions []string
	var args []interface{}
	if filter.Action != "" {
		args = append(args, filter.Action)
		conditions = append(conditions, fmt.Sprintf("a.action = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", len(args)))
	}
	where := whereClause(conditions)
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT a.id, a.user_id, NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), '') AS user_full_name, a.action, a.report_id, a.item_name, a.created_at `+
		`FROM activity_logs a LEFT JOIN users u ON u.id = a.user_id%s ORDER BY a.created_at DESC, a.id DESC LIMIT %d OFFSET %d`, where, pageSize, (page-1)*pageSize)
	var entries []models.ActivityLog
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM activity_logs a"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}
	return entries, total, nil
}

// CreateResolution appends a resolution entry.
func (r *ActivityRepository) CreateResolution(ctx context.Context, entry *models.ResolutionLog) error {
	if entry.DateResolved.IsZero() {
		entry.DateResolved = time.Now().UTC()
	}
	const query = `INSERT INTO resolution_logs (report_id, report_title, resolved_by, receiver_name, giver_name, date_resolved) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, entry.ReportID, entry.ReportTitle, entry.ResolvedByID, entry.ReceiverName, entry.GiverName, entry.DateResolved).Scan(&entry.ID); err != nil {
		return fmt.Errorf("create resolution log: %w", err)
	}
	return nil
}

type resolutionRow struct {
	models.ResolutionLog
	ResolverUsername  string `db:"resolver_username"`
	ResolverEmail     string `db:"resolver_email"`
	ResolverFirstName string `db:"resolver_first_name"`
	ResolverLastName  string `db:"resolver_last_name"`
	ResolverAvatar    string `db:"resolver_avatar"`
}

// ListResolution returns resolution entries newest first.
func (r *ActivityRepository) ListResolution(ctx context.Context, filter models.LogFilter) ([]models.ResolutionLog, int, error) {
	var conditions []string
	var args []interface{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("rl.resolved_by = $%d", len(args)))
	}
	where := whereClause(conditions)
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT rl.id, rl.report_id, rl.report_title, rl.resolved_by, rl.receiver_name, rl.giver_name, rl.date_resolved, `+
		`u.username AS resolver_username, u.email AS resolver_email, u.first_name AS resolver_first_name, u.last_name AS resolver_last_name, u.profile_avatar_url AS resolver_avatar `+
		`FROM resolution_logs rl JOIN users u ON u.id = rl.resolved_by%s ORDER BY rl.date_resolved DESC, rl.id DESC LIMIT %d OFFSET %d`, where, pageSize, (page-1)*pageSize)
	var rows []resolutionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list resolution logs: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM resolution_logs rl"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count resolution logs: %w", err)
	}

	entries := make([]models.ResolutionLog, 0, len(rows))
	for _, row := range rows {
		entry := row.ResolutionLog
		entry.ResolvedBy = models.UserSummary{
			ID:               row.ResolvedByID,
			Username:         row.ResolverUsername,
			Email:            row.ResolverEmail,
			FirstName:        row.ResolverFirstName,
			LastName:         row.ResolverLastName,
			ProfileAvatarURL: row.ResolverAvatar,
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
