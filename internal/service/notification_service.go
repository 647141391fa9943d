package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	"github.com/noah-isme/lostfound-api/internal/realtime"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type notificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id int64) (*models.Notification, error)
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, int, error)
	SetRead(ctx context.Context, id int64, read bool) error
	Delete(ctx context.Context, id int64) error
}

// NotificationPublisher pushes events to a user's live connections.
type NotificationPublisher interface {
	Publish(userID, event string, data interface{}) error
}

// notifier is how workflow services emit notifications.
type notifier interface {
	Notify(ctx context.Context, n *models.Notification) error
}

// NotificationService manages a recipient's feed.
type NotificationService struct {
	repo      notificationRepository
	publisher NotificationPublisher
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs a NotificationService. publisher may be nil
// when realtime delivery is disabled.
func NewNotificationService(repo notificationRepository, publisher NotificationPublisher, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NotificationService{repo: repo, publisher: publisher, metrics: metrics, validator: validate, logger: logger}
}

// Notify persists a notification and pushes it to the recipient's open connections.
func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notification")
	}
	s.metrics.IncNotification("created")

	if s.publisher == nil {
		return nil
	}
	payload := n
	if stored, err := s.repo.FindByID(ctx, n.ID); err == nil {
		payload = stored
	}
	if err := s.publisher.Publish(n.UserID, realtime.EventNotification, payload); err != nil {
		s.logger.Warn("failed to push notification", zap.Int64("notification_id", n.ID), zap.Error(err))
		return nil
	}
	s.metrics.IncNotification("pushed")
	return nil
}

// List returns the actor's own notifications.
func (s *NotificationService) List(ctx context.Context, actor policy.Actor, query dto.NotificationQuery) ([]models.Notification, *models.Pagination, error) {
	filter := models.NotificationFilter{UserID: actor.ID, IsRead: query.IsRead, Page: query.Page, PageSize: query.PageSize}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	return items, models.NewPagination(query.Page, query.PageSize, total), nil
}

// Get returns one of the actor's notifications; anyone else's is NotFound.
func (s *NotificationService) Get(ctx context.Context, actor policy.Actor, id int64) (*models.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notification not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notification")
	}
	if !policy.CanMutateNotification(actor, n) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	return n, nil
}

// Update marks a notification read or unread.
func (s *NotificationService) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	n, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetRead(ctx, id, *req.IsRead); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update notification")
	}
	n.IsRead = *req.IsRead
	return n, nil
}

// Delete removes one of the actor's notifications.
func (s *NotificationService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notification")
	}
	return nil
}
