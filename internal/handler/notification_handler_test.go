package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/middleware"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	"github.com/noah-isme/lostfound-api/internal/realtime"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type notificationServiceMock struct {
	lastQuery  dto.NotificationQuery
	lastUpdate dto.UpdateNotificationRequest
	lastActor  policy.Actor
	err        error
}

func (m *notificationServiceMock) List(ctx context.Context, actor policy.Actor, query dto.NotificationQuery) ([]models.Notification, *models.Pagination, error) {
	m.lastActor, m.lastQuery = actor, query
	return []models.Notification{{ID: 1, Message: "hello"}}, &models.Pagination{Page: 1, PageSize: 20, TotalCount: 1}, m.err
}

func (m *notificationServiceMock) Get(ctx context.Context, actor policy.Actor, id int64) (*models.Notification, error) {
	m.lastActor = actor
	if m.err != nil {
		return nil, m.err
	}
	return &models.Notification{ID: id}, nil
}

func (m *notificationServiceMock) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateNotificationRequest) (*models.Notification, error) {
	m.lastActor, m.lastUpdate = actor, req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Notification{ID: id, IsRead: *req.IsRead}, nil
}

func (m *notificationServiceMock) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	m.lastActor = actor
	return m.err
}

func TestNotificationHandlerListReadFilter(t *testing.T) {
	svc := &notificationServiceMock{}
	h := NewNotificationHandler(svc, nil, nil, nil)

	c, w := newRequestContext(http.MethodGet, "/notifications?is_read=false", "", studentClaims)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastQuery.IsRead)
	assert.False(t, *svc.lastQuery.IsRead)
	assert.Equal(t, "owner", svc.lastActor.ID)
}

func TestNotificationHandlerUpdate(t *testing.T) {
	svc := &notificationServiceMock{}
	h := NewNotificationHandler(svc, nil, nil, nil)

	c, w := newRequestContext(http.MethodPatch, "/notifications/2", `{"is_read":true}`, studentClaims, idParam("2"))
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_read"])
}

func TestNotificationHandlerForeignNotificationIsNotFound(t *testing.T) {
	svc := &notificationServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "notification not found")}
	h := NewNotificationHandler(svc, nil, nil, nil)

	c, w := newRequestContext(http.MethodGet, "/notifications/2", "", studentClaims, idParam("2"))
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newRequestContext(http.MethodDelete, "/notifications/2", "", studentClaims, idParam("2"))
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandlerStreamDisabled(t *testing.T) {
	h := NewNotificationHandler(&notificationServiceMock{}, nil, nil, nil)

	c, w := newRequestContext(http.MethodGet, "/notifications/ws", "", studentClaims)
	h.Stream(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "REALTIME_DISABLED", errorCode(t, w))
}

func TestNotificationHandlerStreamRequiresAuth(t *testing.T) {
	hub := realtime.NewHub(nil, nil)
	h := NewNotificationHandler(&notificationServiceMock{}, hub, nil, nil)

	c, w := newRequestContext(http.MethodGet, "/notifications/ws", "", nil)
	h.Stream(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationHandlerStreamDeliversEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub(nil, nil)
	go hub.Run(ctx)

	h := NewNotificationHandler(&notificationServiceMock{}, hub, nil, nil)
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, studentClaims)
		c.Next()
	}, h.Stream)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, hub.Publish("owner", realtime.EventNotification, map[string]interface{}{"message": "found it"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, realtime.EventNotification, event["type"])
	assert.Equal(t, "found it", event["data"].(map[string]interface{})["message"])
}

func TestOriginChecker(t *testing.T) {
	request := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		return req
	}

	open := originChecker(nil)
	assert.True(t, open(request("https://evil.example")))

	check := originChecker([]string{"https://app.example.com/"})
	assert.True(t, check(request("https://APP.example.com")))
	assert.True(t, check(request("")))
	assert.False(t, check(request("https://evil.example")))

	wildcard := originChecker([]string{"*"})
	assert.True(t, wildcard(request("https://anything.example")))
}
