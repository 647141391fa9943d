package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/middleware"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	"github.com/noah-isme/lostfound-api/internal/service"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
	"github.com/noah-isme/lostfound-api/pkg/export"
	"github.com/noah-isme/lostfound-api/pkg/response"
)

const photoField = "photo"

type reportService interface {
	Create(ctx context.Context, actor policy.Actor, req dto.CreateReportRequest, photo *dto.PhotoUpload) (*models.ReportDetail, error)
	List(ctx context.Context, query dto.ReportQuery) (*service.ReportPage, bool, error)
	Get(ctx context.Context, id int64) (*models.ReportDetail, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateReportRequest) (*models.ReportDetail, error)
	Delete(ctx context.Context, actor policy.Actor, id int64) error
	Approve(ctx context.Context, actor policy.Actor, id int64) (*dto.ActionResponse, error)
	Reject(ctx context.Context, actor policy.Actor, id int64) (*dto.ActionResponse, error)
	ClaimItem(ctx context.Context, actor policy.Actor, id int64, req dto.ActionMessageRequest) (*dto.ActionResponse, error)
	ItemFound(ctx context.Context, actor policy.Actor, id int64, req dto.ActionMessageRequest) (*dto.ActionResponse, error)
}

type activityLogService interface {
	ListActivity(ctx context.Context, filter models.LogFilter) ([]models.ActivityLog, *models.Pagination, error)
	ListResolution(ctx context.Context, filter models.LogFilter) ([]models.ResolutionLog, *models.Pagination, error)
	ExportResolution(ctx context.Context, rawFormat string) ([]byte, export.Format, error)
}

// ReportHandler exposes the report workflow and its audit trails.
type ReportHandler struct {
	service        reportService
	activity       activityLogService
	maxUploadBytes int64
}

// NewReportHandler constructs a report handler. maxUploadBytes bounds how much of
// a photo part is read before the service rejects it.
func NewReportHandler(svc reportService, activity activityLogService, maxUploadBytes int64) *ReportHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 * 1024 * 1024
	}
	return &ReportHandler{service: svc, activity: activity, maxUploadBytes: maxUploadBytes}
}

// List godoc
// @Summary List reports
// @Description Public listing with filters, search and ordering
// @Tags Reports
// @Produce json
// @Param type query string false "lost or found"
// @Param status query string false "pending, approved, rejected or resolved"
// @Param category query string false "Category (case-insensitive)"
// @Param search query string false "Search item name and description"
// @Param ordering query string false "date_time or -date_time"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	var query dto.ReportQuery
	if !bindQuery(c, &query) {
		return
	}

	page, hit, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, page.Items, &page.Pagination, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Create report
// @Description Create a lost or found report; multipart requests may attach a photo
// @Tags Reports
// @Accept json,mpfd
// @Produce json
// @Param payload body dto.CreateReportRequest true "Report payload"
// @Param photo formData file false "Item photo (jpeg, png, gif, webp)"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	var photo *dto.PhotoUpload
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid report payload"))
			return
		}
		var err error
		if photo, err = h.readPhoto(c); err != nil {
			response.Error(c, err)
			return
		}
	} else if !bindJSON(c, &req, "invalid report payload") {
		return
	}

	detail, err := h.service.Create(c.Request.Context(), actor, req, photo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, detail)
}

// Get godoc
// @Summary Get report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail, nil)
}

// Update godoc
// @Summary Update report
// @Description Partial update by the owner or an admin; only admins change status
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body dto.UpdateReportRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id} [patch]
func (h *ReportHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateReportRequest
	if !bindJSON(c, &req, "invalid report payload") {
		return
	}

	detail, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail, nil)
}

// Delete godoc
// @Summary Delete report
// @Description Owner or admin, regardless of status
// @Tags Reports
// @Param id path int true "Report ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Approve godoc
// @Summary Approve report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id}/approve [patch]
func (h *ReportHandler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve)
}

// Reject godoc
// @Summary Reject report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id}/reject [patch]
func (h *ReportHandler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject)
}

func (h *ReportHandler) moderate(c *gin.Context, action func(context.Context, policy.Actor, int64) (*dto.ActionResponse, error)) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	res, err := action(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}

// ClaimItem godoc
// @Summary Claim a found item
// @Description Creates a claim and notifies the report owner
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body dto.ActionMessageRequest false "Optional message"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id}/claim_item [post]
func (h *ReportHandler) ClaimItem(c *gin.Context) {
	h.action(c, http.StatusCreated, h.service.ClaimItem)
}

// ItemFound godoc
// @Summary Report a lost item as found
// @Description Notifies the owner and resolves the report
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body dto.ActionMessageRequest false "Optional message"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/{id}/item_found [post]
func (h *ReportHandler) ItemFound(c *gin.Context) {
	h.action(c, http.StatusOK, h.service.ItemFound)
}

func (h *ReportHandler) action(c *gin.Context, status int, fn func(context.Context, policy.Actor, int64, dto.ActionMessageRequest) (*dto.ActionResponse, error)) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.ActionMessageRequest
	if !bindOptionalJSON(c, &req, "invalid payload") {
		return
	}

	res, err := fn(c.Request.Context(), actor, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, status, res, nil)
}

// ActivityLogs godoc
// @Summary List activity logs
// @Tags Reports
// @Produce json
// @Param action query string false "Action filter"
// @Param user query string false "User ID filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/activity-logs [get]
func (h *ReportHandler) ActivityLogs(c *gin.Context) {
	var query dto.LogQuery
	if !bindQuery(c, &query) {
		return
	}

	entries, pagination, err := h.activity.ListActivity(c.Request.Context(), logFilter(query))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entries, pagination)
}

// ResolutionLogs godoc
// @Summary List resolution logs
// @Tags Reports
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/resolution-logs [get]
func (h *ReportHandler) ResolutionLogs(c *gin.Context) {
	var query dto.LogQuery
	if !bindQuery(c, &query) {
		return
	}

	entries, pagination, err := h.activity.ListResolution(c.Request.Context(), logFilter(query))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entries, pagination)
}

// ExportResolutionLogs godoc
// @Summary Export resolution logs
// @Tags Reports
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/resolution-logs/export [get]
func (h *ReportHandler) ExportResolutionLogs(c *gin.Context) {
	content, format, err := h.activity.ExportResolution(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resolution-logs.%s"`, format))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, format.ContentType(), content)
}

func (h *ReportHandler) readPhoto(c *gin.Context) (*dto.PhotoUpload, error) {
	header, err := c.FormFile(photoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid photo upload")
	}
	file, err := header.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid photo upload")
	}
	defer file.Close()

	// one byte past the limit lets the service report the oversize
	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid photo upload")
	}
	return &dto.PhotoUpload{Filename: header.Filename, Data: data}, nil
}

func logFilter(query dto.LogQuery) models.LogFilter {
	return models.LogFilter{
		Action:   strings.TrimSpace(query.Action),
		UserID:   strings.TrimSpace(query.UserID),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
}
