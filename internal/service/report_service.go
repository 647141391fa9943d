package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
	"github.com/noah-isme/lostfound-api/pkg/jobs"
	"github.com/noah-isme/lostfound-api/pkg/storage"
)

const (
	reportListCachePattern = "reports:list:*"
	// JobTypeMediaCleanup deletes an orphaned photo from media storage.
	JobTypeMediaCleanup = "media-cleanup"
	dateLayout          = "2006-01-02"
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type reportRepository interface {
	Create(ctx context.Context, report *models.Report, lost *models.LostItem, found *models.FoundItem) error
	FindByID(ctx context.Context, id int64) (*models.ReportDetail, error)
	List(ctx context.Context, filter models.ReportFilter) ([]models.ReportDetail, int, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) error
	UpdateLostItem(ctx context.Context, item *models.LostItem) error
	UpdateFoundItem(ctx context.Context, item *models.FoundItem) error
	Delete(ctx context.Context, id int64) error
}

type claimWriter interface {
	Create(ctx context.Context, claim *models.Claim) error
}

type reportCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

type cleanupQueue interface {
	Enqueue(job jobs.Job) error
}

// ReportServiceOptions wires the optional collaborators of ReportService.
type ReportServiceOptions struct {
	Uploader       storage.Uploader
	Cache          reportCache
	Cleanup        cleanupQueue
	Metrics        *MetricsService
	MaxUploadBytes int64
	CacheTTL       time.Duration
}

// ReportPage is a cached page of the report listing.
type ReportPage struct {
	Items      []models.ReportDetail `json:"items"`
	Pagination models.Pagination     `json:"pagination"`
}

// ReportService implements the lost/found report workflow.
type ReportService struct {
	repo      reportRepository
	claims    claimWriter
	notifier  notifier
	activity  activityRecorder
	opts      ReportServiceOptions
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(repo reportRepository, claims claimWriter, notifier notifier, activity activityRecorder, validate *validator.Validate, logger *zap.Logger, opts ReportServiceOptions) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 5 * 1024 * 1024
	}
	return &ReportService{
		repo:      repo,
		claims:    claims,
		notifier:  notifier,
		activity:  activity,
		opts:      opts,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Create stores a report with its lost or found sub-item owned by actor.
func (s *ReportService) Create(ctx context.Context, actor policy.Actor, req dto.CreateReportRequest, photo *dto.PhotoUpload) (*models.ReportDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report payload")
	}
	reportType, err := models.ParseReportType(req.Type)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "type must be lost or found")
	}

	if name := blankField(
		requiredField{"item_name", &req.ItemName},
		requiredField{"description", &req.Description},
		requiredField{"category", &req.Category},
	); name != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, name+" must not be blank")
	}

	var lost *models.LostItem
	var found *models.FoundItem
	switch reportType {
	case models.ReportTypeLost:
		if strings.TrimSpace(req.LocationLastSeen) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "location_last_seen is required for lost reports")
		}
		lost = &models.LostItem{
			ItemName:         strings.TrimSpace(req.ItemName),
			Description:      req.Description,
			Category:         strings.TrimSpace(req.Category),
			LocationLastSeen: strings.TrimSpace(req.LocationLastSeen),
			DateLost:         parseDate(req.DateLost),
		}
	case models.ReportTypeFound:
		if strings.TrimSpace(req.LocationFound) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "location_found is required for found reports")
		}
		found = &models.FoundItem{
			ItemName:      strings.TrimSpace(req.ItemName),
			Description:   req.Description,
			Category:      strings.TrimSpace(req.Category),
			LocationFound: strings.TrimSpace(req.LocationFound),
			DateFound:     parseDate(req.DateFound),
			SupervisedBy:  optionalString(req.SupervisedBy),
		}
	}

	photoURL, err := s.storePhoto(ctx, photo)
	if err != nil {
		return nil, err
	}
	if lost != nil {
		lost.PhotoURL = photoURL
	} else {
		found.PhotoURL = photoURL
	}

	report := &models.Report{
		Type:       reportType,
		Status:     models.ReportStatusPending,
		DateTime:   s.now().UTC(),
		ReportedBy: actor.ID,
	}
	if err := s.repo.Create(ctx, report, lost, found); err != nil {
		s.scheduleCleanup(photoURL)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create report")
	}

	s.opts.Metrics.IncReportCreated(string(reportType))
	s.activity.Record(ctx, actor.ID, models.ActivityReportCreate, &report.ID, req.ItemName)
	s.invalidateList(ctx)

	return s.load(ctx, report.ID)
}

// List returns reports matching the query, served from cache when possible.
// The boolean reports a cache hit.
func (s *ReportService) List(ctx context.Context, query dto.ReportQuery) (*ReportPage, bool, error) {
	filter, err := reportFilter(query)
	if err != nil {
		return nil, false, err
	}

	key := filter.CacheKey()
	if s.opts.Cache != nil {
		var cached ReportPage
		if hit, err := s.opts.Cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reports")
	}
	if items == nil {
		items = []models.ReportDetail{}
	}
	page := &ReportPage{Items: items, Pagination: *models.NewPagination(filter.Page, filter.PageSize, total)}

	if s.opts.Cache != nil {
		_ = s.opts.Cache.Set(ctx, key, page, s.opts.CacheTTL)
	}
	return page, false, nil
}

// Get returns a report by id.
func (s *ReportService) Get(ctx context.Context, id int64) (*models.ReportDetail, error) {
	return s.load(ctx, id)
}

// Update applies a partial update. Owners and admins may edit item fields;
// only admins may change status. Type and owner never change.
func (s *ReportService) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateReportRequest) (*models.ReportDetail, error) {
	detail, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateReport(actor, &detail.Report) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the report owner or an admin can modify this report")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report payload")
	}
	if name := blankField(
		requiredField{"item_name", req.ItemName},
		requiredField{"description", req.Description},
		requiredField{"category", req.Category},
		requiredField{"location_last_seen", req.LocationLastSeen},
		requiredField{"location_found", req.LocationFound},
	); name != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, name+" must not be blank")
	}
	if req.Type != nil && !strings.EqualFold(strings.TrimSpace(*req.Type), string(detail.Type)) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "report type cannot be changed")
	}

	var status models.ReportStatus
	if req.Status != nil {
		if !actor.IsAdmin() {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "only admins can change report status")
		}
		status, err = models.ParseReportStatus(*req.Status)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
	}

	switch detail.Type {
	case models.ReportTypeLost:
		if req.LocationFound != nil || req.DateFound != nil || req.SupervisedBy != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "found item fields do not apply to lost reports")
		}
		if item := detail.LostItem; item != nil && applyLostUpdate(item, req) {
			if err := s.repo.UpdateLostItem(ctx, item); err != nil {
				return nil, s.writeError(err, "failed to update lost item")
			}
		}
	case models.ReportTypeFound:
		if req.LocationLastSeen != nil || req.DateLost != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "lost item fields do not apply to found reports")
		}
		if item := detail.FoundItem; item != nil && applyFoundUpdate(item, req) {
			if err := s.repo.UpdateFoundItem(ctx, item); err != nil {
				return nil, s.writeError(err, "failed to update found item")
			}
		}
	}

	if status != "" {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, s.writeError(err, "failed to update report status")
		}
	}

	s.activity.Record(ctx, actor.ID, models.ActivityReportUpdate, &id, detail.ItemName())
	s.invalidateList(ctx)
	return s.load(ctx, id)
}

// Delete removes a report regardless of status. The photo is removed asynchronously.
func (s *ReportService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	detail, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateReport(actor, &detail.Report) {
		return appErrors.Clone(appErrors.ErrForbidden, "only the report owner or an admin can delete this report")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.writeError(err, "failed to delete report")
	}

	s.scheduleCleanup(detail.PhotoURL())
	s.activity.Record(ctx, actor.ID, models.ActivityReportDelete, nil, detail.ItemName())
	s.invalidateList(ctx)
	return nil
}

// Approve sets status approved. Admin-only and idempotent.
func (s *ReportService) Approve(ctx context.Context, actor policy.Actor, id int64) (*dto.ActionResponse, error) {
	return s.moderate(ctx, actor, id, models.ReportStatusApproved, models.ActivityReportApprove)
}

// Reject sets status rejected. Admin-only and idempotent.
func (s *ReportService) Reject(ctx context.Context, actor policy.Actor, id int64) (*dto.ActionResponse, error) {
	return s.moderate(ctx, actor, id, models.ReportStatusRejected, models.ActivityReportReject)
}

func (s *ReportService) moderate(ctx context.Context, actor policy.Actor, id int64, status models.ReportStatus, action string) (*dto.ActionResponse, error) {
	if !actor.IsAdmin() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only admins can moderate reports")
	}
	detail, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, s.writeError(err, "failed to update report status")
	}

	s.opts.Metrics.IncReportAction(strings.ToLower(string(status)))
	s.activity.Record(ctx, actor.ID, action, &id, detail.ItemName())
	s.invalidateList(ctx)
	return &dto.ActionResponse{Status: string(status)}, nil
}

// ClaimItem records actor's claim on a found report and notifies its owner.
func (s *ReportService) ClaimItem(ctx context.Context, actor policy.Actor, id int64, req dto.ActionMessageRequest) (*dto.ActionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid claim payload")
	}
	detail, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Type != models.ReportTypeFound {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Only found reports can be claimed.")
	}

	claim := &models.Claim{
		ReportID:    id,
		ClaimedBy:   actor.ID,
		Message:     optionalString(req.Message),
		DateClaimed: s.now().UTC(),
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create claim")
	}

	// The claim stands even if the owner could not be notified.
	if err := s.notifier.Notify(ctx, claimNotification(actor, detail, claim.Message)); err != nil {
		s.logger.Warn("failed to notify report owner of claim", zap.Int64("report_id", id), zap.Int64("claim_id", claim.ID), zap.Error(err))
	}

	s.opts.Metrics.IncReportAction("claim")
	s.activity.Record(ctx, actor.ID, models.ActivityReportClaim, &id, detail.ItemName())
	return &dto.ActionResponse{Status: "claim created", ClaimID: &claim.ID}, nil
}

// ItemFound tells a lost report's owner their item was found and resolves the report.
func (s *ReportService) ItemFound(ctx context.Context, actor policy.Actor, id int64, req dto.ActionMessageRequest) (*dto.ActionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid item found payload")
	}
	detail, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Type != models.ReportTypeLost {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Only lost reports can be marked found.")
	}

	reportID := id
	if err := s.notifier.Notify(ctx, &models.Notification{
		UserID:          detail.ReportedBy,
		Message:         fmt.Sprintf("%s reported finding your lost item.", actor.Username),
		DetailedMessage: optionalString(req.Message),
		RelatedReportID: &reportID,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ReportStatusResolved); err != nil {
		return nil, s.writeError(err, "failed to resolve report")
	}

	s.opts.Metrics.IncReportAction("item_found")
	s.activity.RecordResolution(ctx, models.ResolutionLog{
		ReportID:     &reportID,
		ReportTitle:  detail.ItemName(),
		ResolvedByID: actor.ID,
		ReceiverName: detail.Reporter.Username,
		GiverName:    actor.Username,
	})
	s.activity.Record(ctx, actor.ID, models.ActivityReportResolved, &reportID, detail.ItemName())
	s.invalidateList(ctx)
	return &dto.ActionResponse{Status: "item found notification sent"}, nil
}

// CleanupMedia is the media-cleanup queue handler.
func (s *ReportService) CleanupMedia(ctx context.Context, job jobs.Job) error {
	url, ok := job.Payload.(string)
	if !ok || url == "" {
		return nil
	}
	if s.opts.Uploader == nil {
		return nil
	}
	return s.opts.Uploader.Delete(ctx, url)
}

func (s *ReportService) load(ctx context.Context, id int64) (*models.ReportDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}
	return detail, nil
}

// writeError maps a vanished row to NotFound and anything else to Internal.
func (s *ReportService) writeError(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func (s *ReportService) storePhoto(ctx context.Context, photo *dto.PhotoUpload) (*string, error) {
	if photo == nil || len(photo.Data) == 0 {
		return nil, nil
	}
	if int64(len(photo.Data)) > s.opts.MaxUploadBytes {
		s.opts.Metrics.IncUpload("rejected")
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("photo exceeds %d bytes", s.opts.MaxUploadBytes))
	}
	kind, err := filetype.Match(photo.Data)
	if err != nil || !allowedPhotoTypes[kind.MIME.Value] {
		s.opts.Metrics.IncUpload("rejected")
		return nil, appErrors.Clone(appErrors.ErrValidation, "photo must be a JPEG, PNG, GIF or WebP image")
	}
	if s.opts.Uploader == nil {
		return nil, appErrors.Clone(appErrors.ErrUploadFailed, "media storage is not configured")
	}

	url, err := s.opts.Uploader.Upload(ctx, storage.Object{
		Key:         storage.ObjectKey("reports", kind.Extension, s.now()),
		ContentType: kind.MIME.Value,
		Size:        int64(len(photo.Data)),
		Body:        bytes.NewReader(photo.Data),
	})
	if err != nil {
		s.opts.Metrics.IncUpload("failed")
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, "failed to upload photo")
	}
	s.opts.Metrics.IncUpload("ok")
	return &url, nil
}

func (s *ReportService) scheduleCleanup(photoURL *string) {
	if photoURL == nil || *photoURL == "" || s.opts.Cleanup == nil {
		return
	}
	job := jobs.Job{ID: uuid.NewString(), Type: JobTypeMediaCleanup, Payload: *photoURL}
	if err := s.opts.Cleanup.Enqueue(job); err != nil {
		s.logger.Warn("failed to enqueue media cleanup", zap.String("url", *photoURL), zap.Error(err))
	}
}

func (s *ReportService) invalidateList(ctx context.Context) {
	if s.opts.Cache == nil {
		return
	}
	_ = s.opts.Cache.Invalidate(ctx, reportListCachePattern)
}

func reportFilter(query dto.ReportQuery) (models.ReportFilter, error) {
	filter := models.ReportFilter{
		Category: strings.TrimSpace(query.Category),
		Search:   strings.TrimSpace(query.Search),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Type != "" {
		t, err := models.ParseReportType(query.Type)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		filter.Type = t
	}
	if query.Status != "" {
		st, err := models.ParseReportStatus(query.Status)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		filter.Status = st
	}
	switch query.Ordering {
	case "", models.OrderDateTimeDesc:
		filter.Ordering = models.OrderDateTimeDesc
	case models.OrderDateTimeAsc:
		filter.Ordering = models.OrderDateTimeAsc
	default:
		return filter, appErrors.Clone(appErrors.ErrValidation, "ordering must be date_time or -date_time")
	}
	filter.Page, filter.PageSize = models.NormalizePage(filter.Page, filter.PageSize)
	return filter, nil
}

func claimNotification(actor policy.Actor, detail *models.ReportDetail, message *string) *models.Notification {
	reportID := detail.ID
	return &models.Notification{
		UserID:          detail.ReportedBy,
		Message:         fmt.Sprintf("%s wants to claim your found item.", actor.Username),
		DetailedMessage: message,
		RelatedReportID: &reportID,
	}
}

func applyLostUpdate(item *models.LostItem, req dto.UpdateReportRequest) bool {
	changed := applyCommon(&item.ItemName, &item.Description, &item.Category, req)
	if req.LocationLastSeen != nil {
		item.LocationLastSeen = strings.TrimSpace(*req.LocationLastSeen)
		changed = true
	}
	if req.DateLost != nil {
		item.DateLost = parseDate(*req.DateLost)
		changed = true
	}
	return changed
}

func applyFoundUpdate(item *models.FoundItem, req dto.UpdateReportRequest) bool {
	changed := applyCommon(&item.ItemName, &item.Description, &item.Category, req)
	if req.LocationFound != nil {
		item.LocationFound = strings.TrimSpace(*req.LocationFound)
		changed = true
	}
	if req.DateFound != nil {
		item.DateFound = parseDate(*req.DateFound)
		changed = true
	}
	if req.SupervisedBy != nil {
		item.SupervisedBy = optionalString(*req.SupervisedBy)
		changed = true
	}
	return changed
}

func applyCommon(name, description, category *string, req dto.UpdateReportRequest) bool {
	changed := false
	if req.ItemName != nil {
		*name = strings.TrimSpace(*req.ItemName)
		changed = true
	}
	if req.Description != nil {
		*description = *req.Description
		changed = true
	}
	if req.Category != nil {
		*category = strings.TrimSpace(*req.Category)
		changed = true
	}
	return changed
}

type requiredField struct {
	name  string
	value *string
}

// blankField returns the name of the first supplied field that is empty after trimming.
func blankField(fields ...requiredField) string {
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return f.name
		}
	}
	return ""
}

// parseDate reads a YYYY-MM-DD value already checked by the validator; blank means unset.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
