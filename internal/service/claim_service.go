package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type claimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	FindByID(ctx context.Context, id int64) (*models.ClaimDetail, error)
	List(ctx context.Context, filter models.ClaimFilter) ([]models.ClaimDetail, int, error)
	Update(ctx context.Context, claim *models.Claim) error
	Delete(ctx context.Context, id int64) error
}

type reportLookup interface {
	FindByID(ctx context.Context, id int64) (*models.ReportDetail, error)
}

// ClaimService manages claims on found reports.
type ClaimService struct {
	repo      claimRepository
	reports   reportLookup
	notifier  notifier
	activity  activityRecorder
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewClaimService constructs a ClaimService.
func NewClaimService(repo claimRepository, reports reportLookup, notifier notifier, activity activityRecorder, validate *validator.Validate, logger *zap.Logger) *ClaimService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClaimService{repo: repo, reports: reports, notifier: notifier, activity: activity, validator: validate, logger: logger, now: time.Now}
}

// Create files a claim by actor on a found report and notifies the owner.
func (s *ClaimService) Create(ctx context.Context, actor policy.Actor, req dto.CreateClaimRequest) (*models.ClaimDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid claim payload")
	}
	report, err := s.reports.FindByID(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "report does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}
	if report.Type != models.ReportTypeFound {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Only found reports can be claimed.")
	}

	var message *string
	if req.Message != nil {
		message = optionalString(*req.Message)
	}
	claim := &models.Claim{ReportID: report.ID, ClaimedBy: actor.ID, Message: message, DateClaimed: s.now().UTC()}
	if err := s.repo.Create(ctx, claim); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create claim")
	}
	if err := s.notifier.Notify(ctx, claimNotification(actor, report, message)); err != nil {
		s.logger.Warn("failed to notify report owner of claim", zap.Int64("report_id", report.ID), zap.Int64("claim_id", claim.ID), zap.Error(err))
	}
	s.activity.Record(ctx, actor.ID, models.ActivityReportClaim, &report.ID, report.ItemName())

	return s.load(ctx, claim.ID)
}

// List returns every claim for admins and only the actor's own otherwise.
func (s *ClaimService) List(ctx context.Context, actor policy.Actor, query dto.ClaimQuery) ([]models.ClaimDetail, *models.Pagination, error) {
	filter := models.ClaimFilter{ReportID: query.ReportID, Page: query.Page, PageSize: query.PageSize}
	if !actor.IsAdmin() {
		filter.ClaimedBy = actor.ID
	}
	return s.list(ctx, filter)
}

// MyClaims returns the actor's own claims regardless of role.
func (s *ClaimService) MyClaims(ctx context.Context, actor policy.Actor, query dto.ClaimQuery) ([]models.ClaimDetail, *models.Pagination, error) {
	return s.list(ctx, models.ClaimFilter{ClaimedBy: actor.ID, ReportID: query.ReportID, Page: query.Page, PageSize: query.PageSize})
}

func (s *ClaimService) list(ctx context.Context, filter models.ClaimFilter) ([]models.ClaimDetail, *models.Pagination, error) {
	claims, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list claims")
	}
	return claims, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns a claim visible to actor; others' claims are NotFound for non-admins.
func (s *ClaimService) Get(ctx context.Context, actor policy.Actor, id int64) (*models.ClaimDetail, error) {
	claim, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && claim.ClaimedBy != actor.ID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "claim not found")
	}
	return claim, nil
}

// Update applies a partial update. Only the claimant may edit a claim.
func (s *ClaimService) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateClaimRequest) (*models.ClaimDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid claim payload")
	}
	detail, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	claim := detail.Claim

	if !policy.CanMutateClaim(actor, &claim) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the claimant can modify this claim")
	}

	if req.Message != nil {
		claim.Message = optionalString(*req.Message)
	}
	if req.Received != nil {
		claim.Received = *req.Received
		if claim.Received && claim.DateReceived == nil && req.DateReceived == nil {
			now := s.now().UTC()
			claim.DateReceived = &now
		}
	}
	if req.DateReceived != nil {
		claim.DateReceived = req.DateReceived
	}

	if err := s.repo.Update(ctx, &claim); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "claim not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update claim")
	}
	detail.Claim = claim
	return detail, nil
}

// Delete withdraws a claim. Only the claimant may do so.
func (s *ClaimService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	detail, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateClaim(actor, &detail.Claim) {
		return appErrors.Clone(appErrors.ErrForbidden, "only the claimant can delete this claim")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "claim not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete claim")
	}
	return nil
}

func (s *ClaimService) load(ctx context.Context, id int64) (*models.ClaimDetail, error) {
	claim, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "claim not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load claim")
	}
	return claim, nil
}
