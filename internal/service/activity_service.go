package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/models"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
	"github.com/noah-isme/lostfound-api/pkg/export"
)

type activityRepository interface {
	CreateActivity(ctx context.Context, entry *models.ActivityLog) error
	ListActivity(ctx context.Context, filter models.LogFilter) ([]models.ActivityLog, int, error)
	CreateResolution(ctx context.Context, entry *models.ResolutionLog) error
	ListResolution(ctx context.Context, filter models.LogFilter) ([]models.ResolutionLog, int, error)
}

// activityRecorder is the write side used by the workflow services.
type activityRecorder interface {
	Record(ctx context.Context, actorID, action string, reportID *int64, itemName string)
	RecordResolution(ctx context.Context, entry models.ResolutionLog)
}

const exportPageSize = 100

// ActivityService records and lists the activity and resolution trails.
type ActivityService struct {
	repo   activityRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewActivityService constructs an ActivityService.
func NewActivityService(repo activityRepository, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, logger: logger, now: time.Now}
}

// Record appends an activity entry. Failures are logged, never returned.
func (s *ActivityService) Record(ctx context.Context, actorID, action string, reportID *int64, itemName string) {
	entry := &models.ActivityLog{Action: action, ReportID: reportID, CreatedAt: s.now().UTC()}
	if actorID != "" {
		entry.UserID = &actorID
	}
	if itemName != "" {
		entry.ItemName = &itemName
	}
	if err := s.repo.CreateActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", zap.String("action", action), zap.Error(err))
	}
}

// RecordResolution appends a resolution entry. Failures are logged, never returned.
func (s *ActivityService) RecordResolution(ctx context.Context, entry models.ResolutionLog) {
	if entry.DateResolved.IsZero() {
		entry.DateResolved = s.now().UTC()
	}
	if err := s.repo.CreateResolution(ctx, &entry); err != nil {
		s.logger.Warn("failed to record resolution", zap.String("report_title", entry.ReportTitle), zap.Error(err))
	}
}

// ListActivity returns a page of the activity trail.
func (s *ActivityService) ListActivity(ctx context.Context, filter models.LogFilter) ([]models.ActivityLog, *models.Pagination, error) {
	entries, total, err := s.repo.ListActivity(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activity logs")
	}
	return entries, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// ListResolution returns a page of the resolution trail.
func (s *ActivityService) ListResolution(ctx context.Context, filter models.LogFilter) ([]models.ResolutionLog, *models.Pagination, error) {
	entries, total, err := s.repo.ListResolution(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resolution logs")
	}
	return entries, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// ExportResolution renders the whole resolution trail as CSV or PDF.
func (s *ActivityService) ExportResolution(ctx context.Context, rawFormat string) ([]byte, export.Format, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	var all []models.ResolutionLog
	for page := 1; ; page++ {
		entries, total, err := s.repo.ListResolution(ctx, models.LogFilter{Page: page, PageSize: exportPageSize})
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resolution logs")
		}
		all = append(all, entries...)
		if len(entries) < exportPageSize || len(all) >= total {
			break
		}
	}

	data := export.Dataset{Headers: []string{"ID", "Report", "Resolved By", "Receiver", "Giver", "Date Resolved"}}
	for _, entry := range all {
		data.Rows = append(data.Rows, map[string]string{
			"ID":            strconv.FormatInt(entry.ID, 10),
			"Report":        entry.ReportTitle,
			"Resolved By":   fullName(entry.ResolvedBy),
			"Receiver":      entry.ReceiverName,
			"Giver":         entry.GiverName,
			"Date Resolved": entry.DateResolved.UTC().Format(time.RFC3339),
		})
	}

	content, err := export.Render(format, data, "Resolution Log")
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to render %s export", format))
	}
	return content, format, nil
}

func fullName(u models.UserSummary) string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
