package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type commentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.CommentDetail, error)
	List(ctx context.Context, filter models.CommentFilter) ([]models.CommentDetail, int, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

// CommentService manages report comment threads.
type CommentService struct {
	repo      commentRepository
	reports   reportLookup
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCommentService constructs a CommentService.
func NewCommentService(repo commentRepository, reports reportLookup, validate *validator.Validate, logger *zap.Logger) *CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CommentService{repo: repo, reports: reports, validator: validate, logger: logger, now: time.Now}
}

// Create posts a comment authored by actor.
func (s *CommentService) Create(ctx context.Context, actor policy.Actor, req dto.CreateCommentRequest) (*models.CommentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "content must not be blank")
	}
	if _, err := s.reports.FindByID(ctx, req.ReportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "report does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}

	comment := &models.Comment{ReportID: req.ReportID, UserID: actor.ID, Content: content, CreatedAt: s.now().UTC()}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create comment")
	}
	return s.Get(ctx, comment.ID)
}

// List returns comments, optionally for a single report.
func (s *CommentService) List(ctx context.Context, query dto.CommentQuery) ([]models.CommentDetail, *models.Pagination, error) {
	comments, total, err := s.repo.List(ctx, models.CommentFilter{ReportID: query.ReportID, Page: query.Page, PageSize: query.PageSize})
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list comments")
	}
	return comments, models.NewPagination(query.Page, query.PageSize, total), nil
}

// Get returns a comment by id.
func (s *CommentService) Get(ctx context.Context, id int64) (*models.CommentDetail, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "comment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load comment")
	}
	return comment, nil
}

// Update rewrites a comment. Allowed for its author and the report owner.
func (s *CommentService) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateCommentRequest) (*models.CommentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "content must not be blank")
	}
	comment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateContent(ctx, id, content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "comment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update comment")
	}
	comment.Content = content
	return comment, nil
}

// Delete removes a comment. Allowed for its author and the report owner.
func (s *CommentService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "comment not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete comment")
	}
	return nil
}

func (s *CommentService) authorize(ctx context.Context, actor policy.Actor, id int64) (*models.CommentDetail, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var report *models.Report
	if detail, err := s.reports.FindByID(ctx, comment.ReportID); err == nil {
		report = &detail.Report
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}
	if !policy.CanMutateComment(actor, &comment.Comment, report) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the comment author or the report owner can modify this comment")
	}
	return comment, nil
}
