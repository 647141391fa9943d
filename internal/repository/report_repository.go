package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lostfound-api/internal/models"
)

// The sub-item columns are coalesced across lost_items and found_items; exactly
// one side of the LEFT JOINs is populated for any report.
const (
	reportSelect = `SELECT r.id, r.type, r.status, r.date_time, r.reported_by, ` +
		`u.username AS reporter_username, u.email AS reporter_email, u.first_name AS reporter_first_name, u.last_name AS reporter_last_name, u.profile_avatar_url AS reporter_avatar, ` +
		`COALESCE(li.id, fi.id) AS item_id, COALESCE(li.item_name, fi.item_name) AS item_name, COALESCE(li.description, fi.description) AS item_description, ` +
		`COALESCE(li.category, fi.category) AS item_category, COALESCE(li.location_last_seen, fi.location_found) AS item_location, ` +
		`COALESCE(li.photo_url, fi.photo_url) AS item_photo_url, COALESCE(li.date_lost, fi.date_found) AS item_date, fi.supervised_by AS item_supervised_by`
	reportFrom = ` FROM reports r JOIN users u ON u.id = r.reported_by LEFT JOIN lost_items li ON li.report_id = r.id LEFT JOIN found_items fi ON fi.report_id = r.id`
)

type reportRow struct {
	models.Report
	ReporterUsername  string         `db:"reporter_username"`
	ReporterEmail     string         `db:"reporter_email"`
	ReporterFirstName string         `db:"reporter_first_name"`
	ReporterLastName  string         `db:"reporter_last_name"`
	ReporterAvatar    string         `db:"reporter_avatar"`
	ItemID            sql.NullInt64  `db:"item_id"`
	ItemName          sql.NullString `db:"item_name"`
	ItemDescription   sql.NullString `db:"item_description"`
	ItemCategory      sql.NullString `db:"item_category"`
	ItemLocation      sql.NullString `db:"item_location"`
	ItemPhotoURL      sql.NullString `db:"item_photo_url"`
	ItemDate          sql.NullTime   `db:"item_date"`
	ItemSupervisedBy  sql.NullString `db:"item_supervised_by"`
}

func (row reportRow) detail() models.ReportDetail {
	detail := models.ReportDetail{
		Report: row.Report,
		Reporter: models.UserSummary{
			ID:               row.ReportedBy,
			Username:         row.ReporterUsername,
			Email:            row.ReporterEmail,
			FirstName:        row.ReporterFirstName,
			LastName:         row.ReporterLastName,
			ProfileAvatarURL: row.ReporterAvatar,
		},
	}
	if !row.ItemID.Valid {
		return detail
	}
	photo := nullString(row.ItemPhotoURL)
	date := nullTime(row.ItemDate)
	switch row.Type {
	case models.ReportTypeLost:
		detail.LostItem = &models.LostItem{
			ID:               row.ItemID.Int64,
			ReportID:         row.ID,
			ItemName:         row.ItemName.String,
			Description:      row.ItemDescription.String,
			Category:         row.ItemCategory.String,
			LocationLastSeen: row.ItemLocation.String,
			PhotoURL:         photo,
			DateLost:         date,
		}
	case models.ReportTypeFound:
		detail.FoundItem = &models.FoundItem{
			ID:            row.ItemID.Int64,
			ReportID:      row.ID,
			ItemName:      row.ItemName.String,
			Description:   row.ItemDescription.String,
			Category:      row.ItemCategory.String,
			LocationFound: row.ItemLocation.String,
			PhotoURL:      photo,
			DateFound:     date,
			SupervisedBy:  nullString(row.ItemSupervisedBy),
		}
	}
	return detail
}

// ReportRepository persists reports together with their lost/found sub-items.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts the report and its single sub-item in one transaction.
// Exactly one of lost and found must be non-nil and match report.Type.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report, lost *models.LostItem, found *models.FoundItem) (err error) {
	if (lost == nil) == (found == nil) {
		return fmt.Errorf("create report: exactly one sub-item required")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create report: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertReport = `INSERT INTO reports (type, status, date_time, reported_by) VALUES ($1, $2, $3, $4) RETURNING id`
	if err = tx.QueryRowxContext(ctx, insertReport, report.Type, report.Status, report.DateTime, report.ReportedBy).Scan(&report.ID); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	if lost != nil {
		lost.ReportID = report.ID
		const insertLost = `INSERT INTO lost_items (report_id, item_name, description, category, location_last_seen, photo_url, date_lost) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		if err = tx.QueryRowxContext(ctx, insertLost, lost.ReportID, lost.ItemName, lost.Description, lost.Category, lost.LocationLastSeen, lost.PhotoURL, lost.DateLost).Scan(&lost.ID); err != nil {
			return fmt.Errorf("insert lost item: %w", err)
		}
	} else {
		found.ReportID = report.ID
		const insertFound = `INSERT INTO found_items (report_id, item_name, description, category, location_found, photo_url, date_found, supervised_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		if err = tx.QueryRowxContext(ctx, insertFound, found.ReportID, found.ItemName, found.Description, found.Category, found.LocationFound, found.PhotoURL, found.DateFound, found.SupervisedBy).Scan(&found.ID); err != nil {
			return fmt.Errorf("insert found item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create report: %w", err)
	}
	return nil
}

// FindByID returns the report with reporter and sub-item.
func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*models.ReportDetail, error) {
	var row reportRow
	if err := r.db.GetContext(ctx, &row, reportSelect+reportFrom+` WHERE r.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	detail := row.detail()
	return &detail, nil
}

// List returns filtered, ordered and paginated reports with the total count.
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.ReportDetail, int, error) {
	var conditions []string
	var args []interface{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("r.type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("LOWER(COALESCE(li.category, fi.category)) = LOWER($%d)", len(args)))
	}
	if filter.ReportedBy != "" {
		args = append(args, filter.ReportedBy)
		conditions = append(conditions, fmt.Sprintf("r.reported_by = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, containsPattern(search))
		conditions = append(conditions, ilikeAny(len(args), "li.item_name", "fi.item_name", "li.description", "fi.description"))
	}
	where := whereClause(conditions)

	order := "r.date_time DESC, r.id DESC"
	if filter.Ordering == models.OrderDateTimeAsc {
		order = "r.date_time ASC, r.id ASC"
	}
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	listQuery := fmt.Sprintf("%s%s%s ORDER BY %s LIMIT %d OFFSET %d", reportSelect, reportFrom, where, order, pageSize, (page-1)*pageSize)
	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*)"+reportFrom+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	details := make([]models.ReportDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.detail())
	}
	return details, total, nil
}

// UpdateStatus sets the report status unconditionally.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reports SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}
	return expectAffected(res)
}

// UpdateLostItem writes the mutable lost item fields.
func (r *ReportRepository) UpdateLostItem(ctx context.Context, item *models.LostItem) error {
	const query = `UPDATE lost_items SET item_name = :item_name, description = :description, category = :category, location_last_seen = :location_last_seen, photo_url = :photo_url, date_lost = :date_lost WHERE report_id = :report_id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update lost item: %w", err)
	}
	return expectAffected(res)
}

// UpdateFoundItem writes the mutable found item fields.
func (r *ReportRepository) UpdateFoundItem(ctx context.Context, item *models.FoundItem) error {
	const query = `UPDATE found_items SET item_name = :item_name, description = :description, category = :category, location_found = :location_found, photo_url = :photo_url, date_found = :date_found, supervised_by = :supervised_by WHERE report_id = :report_id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update found item: %w", err)
	}
	return expectAffected(res)
}

// Delete removes the report; sub-item, comments and claims cascade.
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return expectAffected(res)
}
