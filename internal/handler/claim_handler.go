package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	"github.com/noah-isme/lostfound-api/pkg/response"
)

type claimService interface {
	Create(ctx context.Context, actor policy.Actor, req dto.CreateClaimRequest) (*models.ClaimDetail, error)
	List(ctx context.Context, actor policy.Actor, query dto.ClaimQuery) ([]models.ClaimDetail, *models.Pagination, error)
	MyClaims(ctx context.Context, actor policy.Actor, query dto.ClaimQuery) ([]models.ClaimDetail, *models.Pagination, error)
	Get(ctx context.Context, actor policy.Actor, id int64) (*models.ClaimDetail, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateClaimRequest) (*models.ClaimDetail, error)
	Delete(ctx context.Context, actor policy.Actor, id int64) error
}

// ClaimHandler exposes claims on found items.
type ClaimHandler struct {
	service claimService
}

// NewClaimHandler constructs a claim handler.
func NewClaimHandler(svc claimService) *ClaimHandler {
	return &ClaimHandler{service: svc}
}

// List godoc
// @Summary List claims
// @Description Admins see every claim, students their own
// @Tags Claims
// @Produce json
// @Param report query int false "Report ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /claims [get]
func (h *ClaimHandler) List(c *gin.Context) {
	h.list(c, h.service.List)
}

// MyClaims godoc
// @Summary List my claims
// @Tags Claims
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /claims/my-claims [get]
func (h *ClaimHandler) MyClaims(c *gin.Context) {
	h.list(c, h.service.MyClaims)
}

func (h *ClaimHandler) list(c *gin.Context, fn func(context.Context, policy.Actor, dto.ClaimQuery) ([]models.ClaimDetail, *models.Pagination, error)) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var query dto.ClaimQuery
	if !bindQuery(c, &query) {
		return
	}

	claims, pagination, err := fn(c.Request.Context(), actor, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, claims, pagination)
}

// Create godoc
// @Summary Create claim
// @Description Claim a found report and notify its owner
// @Tags Claims
// @Accept json
// @Produce json
// @Param payload body dto.CreateClaimRequest true "Claim payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /claims [post]
func (h *ClaimHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateClaimRequest
	if !bindJSON(c, &req, "invalid claim payload") {
		return
	}

	claim, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, claim)
}

// Get godoc
// @Summary Get claim
// @Tags Claims
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /claims/{id} [get]
func (h *ClaimHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	claim, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, claim, nil)
}

// Update godoc
// @Summary Update claim
// @Description The claimant edits the claim; admins set supervision fields
// @Tags Claims
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param payload body dto.UpdateClaimRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /claims/{id} [patch]
func (h *ClaimHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClaimRequest
	if !bindJSON(c, &req, "invalid claim payload") {
		return
	}

	claim, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, claim, nil)
}

// Delete godoc
// @Summary Withdraw claim
// @Tags Claims
// @Param id path int true "Claim ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /claims/{id} [delete]
func (h *ClaimHandler) Delete(c *gin.Context) {
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
