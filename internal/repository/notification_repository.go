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

const notificationSelect = `SELECT n.id, n.user_id, n.message, n.detailed_message, n.related_report_id, n.is_read, n.created_at, ` +
	`r.type AS report_type, r.status AS report_status, r.date_time AS report_date_time ` +
	`FROM notifications n LEFT JOIN reports r ON r.id = n.related_report_id`

type notificationRow struct {
	models.Notification
	ReportType     sql.NullString `db:"report_type"`
	ReportStatus   sql.NullString `db:"report_status"`
	ReportDateTime sql.NullTime   `db:"report_date_time"`
}

func (row notificationRow) notification() models.Notification {
	n := row.Notification
	if n.RelatedReportID != nil && row.ReportType.Valid {
		n.RelatedReport = &models.ReportRef{
			ID:       *n.RelatedReportID,
			Type:     models.ReportType(row.ReportType.String),
			Status:   models.ReportStatus(row.ReportStatus.String),
			DateTime: row.ReportDateTime.Time,
		}
	}
	return n
}

// NotificationRepository persists per-user notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository constructs the repository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification and fills in its id.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO notifications (user_id, message, detailed_message, related_report_id, is_read, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, n.UserID, n.Message, n.DetailedMessage, n.RelatedReportID, n.IsRead, n.CreatedAt).Scan(&n.ID); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// FindByID returns a notification with its related report reference.
func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	var row notificationRow
	if err := r.db.GetContext(ctx, &row, notificationSelect+` WHERE n.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}
	n := row.notification()
	return &n, nil
}

// List returns a recipient's notifications newest first.
func (r *NotificationRepository) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, int, error) {
	args := []interface{}{filter.UserID}
	conditions := []string{"n.user_id = $1"}
	if filter.IsRead != nil {
		args = append(args, *filter.IsRead)
		conditions = append(conditions, fmt.Sprintf("n.is_read = $%d", len(args)))
	}
	where := whereClause(conditions)
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	query := fmt.Sprintf("%s%s ORDER BY n.created_at DESC, n.id DESC LIMIT %d OFFSET %d", notificationSelect, where, pageSize, (page-1)*pageSize)
	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM notifications n"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	result := make([]models.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.notification())
	}
	return result, total, nil
}

// SetRead toggles the read flag.
func (r *NotificationRepository) SetRead(ctx context.Context, id int64, read bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = $2 WHERE id = $1`, id, read)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a notification.
func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return expectAffected(res)
}
