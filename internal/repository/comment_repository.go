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

const commentSelect = `SELECT c.id, c.report_id, c.user_id, c.content, c.created_at, ` +
	`u.id AS "user.id", u.username AS "user.username", u.email AS "user.email", u.first_name AS "user.first_name", u.last_name AS "user.last_name", u.profile_avatar_url AS "user.profile_avatar_url" ` +
	`FROM comments c JOIN users u ON u.id = c.user_id`

// CommentRepository persists report comments.
type CommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository constructs the repository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and fills in its id and timestamp.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO comments (report_id, user_id, content, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, comment.ReportID, comment.UserID, comment.Content, comment.CreatedAt).Scan(&comment.ID); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// FindByID returns a comment with its author.
func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*models.CommentDetail, error) {
	var comment models.CommentDetail
	if err := r.db.GetContext(ctx, &comment, commentSelect+` WHERE c.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &comment, nil
}

// List returns comments oldest first, optionally for one report.
func (r *CommentRepository) List(ctx context.Context, filter models.CommentFilter) ([]models.CommentDetail, int, error) {
	var conditions []string
	var args []interface{}
	if filter.ReportID != nil {
		args = append(args, *filter.ReportID)
		conditions = append(conditions, fmt.Sprintf("c.report_id = $%d", len(args)))
	}
	where := whereClause(conditions)
	page, pageSize := models.NormalizePage(filter.Page, filter.PageSize)

	query := fmt.Sprintf("%s%s ORDER BY c.created_at ASC, c.id ASC LIMIT %d OFFSET %d", commentSelect, where, pageSize, (page-1)*pageSize)
	var comments []models.CommentDetail
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM comments c"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}
	return comments, total, nil
}

// UpdateContent rewrites the comment body. Author and report never change.
func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE comments SET content = $2 WHERE id = $1`, id, content)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return expectAffected(res)
}
