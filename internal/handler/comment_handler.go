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

type commentService interface {
	Create(ctx context.Context, actor policy.Actor, req dto.CreateCommentRequest) (*models.CommentDetail, error)
	List(ctx context.Context, query dto.CommentQuery) ([]models.CommentDetail, *models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.CommentDetail, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateCommentRequest) (*models.CommentDetail, error)
	Delete(ctx context.Context, actor policy.Actor, id int64) error
}

// CommentHandler exposes report comment threads.
type CommentHandler struct {
	service commentService
}

// NewCommentHandler constructs a comment handler.
func NewCommentHandler(svc commentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// List godoc
// @Summary List comments
// @Tags Comments
// @Produce json
// @Param report query int false "Report ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	var query dto.CommentQuery
	if !bindQuery(c, &query) {
		return
	}

	comments, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, comments, pagination)
}

// Create godoc
// @Summary Post comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param payload body dto.CreateCommentRequest true "Comment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req, "invalid comment payload") {
		return
	}

	comment, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, comment)
}

// Get godoc
// @Summary Get comment
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /comments/{id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	comment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, comment, nil)
}

// Update godoc
// @Summary Edit comment
// @Description Comment author or report owner
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param payload body dto.UpdateCommentRequest true "Comment payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /comments/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if !bindJSON(c, &req, "invalid comment payload") {
		return
	}

	comment, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, comment, nil)
}

// Delete godoc
// @Summary Delete comment
// @Description Comment author or report owner
// @Tags Comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
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
