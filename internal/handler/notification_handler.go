package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	"github.com/noah-isme/lostfound-api/internal/realtime"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
	"github.com/noah-isme/lostfound-api/pkg/response"
)

type notificationService interface {
	List(ctx context.Context, actor policy.Actor, query dto.NotificationQuery) ([]models.Notification, *models.Pagination, error)
	Get(ctx context.Context, actor policy.Actor, id int64) (*models.Notification, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateNotificationRequest) (*models.Notification, error)
	Delete(ctx context.Context, actor policy.Actor, id int64) error
}

// NotificationHandler exposes the caller's notification feed and its live stream.
type NotificationHandler struct {
	service  notificationService
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewNotificationHandler constructs a notification handler. hub may be nil when
// realtime delivery is disabled. allowedOrigins gates websocket upgrades from
// browsers; an empty list accepts any origin.
func NewNotificationHandler(svc notificationService, hub *realtime.Hub, allowedOrigins []string, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{
		service: svc,
		hub:     hub,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// List godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Param is_read query bool false "Read filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var query dto.NotificationQuery
	if !bindQuery(c, &query) {
		return
	}

	items, pagination, err := h.service.List(c.Request.Context(), actor, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items, pagination)
}

// Get godoc
// @Summary Get notification
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /notifications/{id} [get]
func (h *NotificationHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	n, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, n, nil)
}

// Update godoc
// @Summary Mark notification read or unread
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path int true "Notification ID"
// @Param payload body dto.UpdateNotificationRequest true "Read flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /notifications/{id} [patch]
func (h *NotificationHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNotificationRequest
	if !bindJSON(c, &req, "invalid notification payload") {
		return
	}

	n, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, n, nil)
}

// Delete godoc
// @Summary Delete notification
// @Tags Notifications
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
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

// Stream godoc
// @Summary Live notification stream
// @Description Websocket upgrade; each new notification arrives as {"type":"notification.created","data":{...}}. Browsers may pass the access token as ?token=
// @Tags Notifications
// @Param token query string false "Access token"
// @Success 101
// @Failure 401 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Security BearerAuth
// @Router /notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	if h.hub == nil {
		response.Error(c, appErrors.New("REALTIME_DISABLED", http.StatusServiceUnavailable, "realtime notifications are disabled"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Debug("websocket upgrade failed", zap.String("user_id", actor.ID), zap.Error(err))
		return
	}
	realtime.NewClient(conn, h.hub, actor.ID).Serve()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		set[strings.TrimRight(strings.ToLower(origin), "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		_, ok := set[strings.ToLower(u.Scheme+"://"+u.Host)]
		return ok
	}
}
