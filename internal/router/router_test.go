package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/handler"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/service"
	"github.com/noah-isme/lostfound-api/pkg/config"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type staticTokens map[string]*models.JWTClaims

func (s staticTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, appErrors.ErrUnauthorized
}

// newTestEngine mounts handlers without services; every request exercised here
// is answered by middleware or request binding before a service is reached.
func newTestEngine(t *testing.T, env string, authLimit int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := staticTokens{
		"student-token": {UserID: "owner", Username: "bob", Role: models.RoleStudent},
		"admin-token":   {UserID: "admin", Username: "ada", Role: models.RoleAdmin},
	}
	auth := handler.NewAuthHandler(nil)
	metrics := service.NewMetricsService()
	return New(Options{
		Env:             env,
		APIPrefix:       "/api",
		AuthRateLimit:   authLimit,
		RateLimitPeriod: time.Minute,
		Metrics:         metrics,
		Tokens:          tokens,
	}, Handlers{
		Auth:         auth,
		User:         handler.NewUserHandler(nil, auth),
		Report:       handler.NewReportHandler(nil, nil, 0),
		Claim:        handler.NewClaimHandler(nil),
		Comment:      handler.NewCommentHandler(nil),
		Notification: handler.NewNotificationHandler(nil, nil, nil, nil),
		Metrics:      handler.NewMetricsHandler(metrics, nil),
	})
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterOperationalEndpoints(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 0)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ready", "").Code)

	w := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/health"`)

	w = serve(r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterDocsHiddenInProduction(t *testing.T) {
	r := newTestEngine(t, config.EnvProduction, 0)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/docs/index.html", "").Code)
	gin.SetMode(gin.TestMode)
}

func TestRouterProtectedRoutesNeedToken(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 0)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/reports"},
		{http.MethodPatch, "/api/reports/1"},
		{http.MethodDelete, "/api/reports/1"},
		{http.MethodPost, "/api/reports/1/claim_item"},
		{http.MethodGet, "/api/claims"},
		{http.MethodGet, "/api/claims/my-claims"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodGet, "/api/notifications/ws"},
		{http.MethodPost, "/api/comments"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/auth/user"},
	} {
		w := serve(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/claims", "forged").Code)
}

func TestRouterAdminRoutesRejectStudents(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 0)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/api/reports/1/approve"},
		{http.MethodPatch, "/api/reports/1/reject"},
		{http.MethodGet, "/api/reports/activity-logs"},
		{http.MethodGet, "/api/reports/resolution-logs"},
		{http.MethodGet, "/api/reports/resolution-logs/export"},
		{http.MethodGet, "/api/users"},
		{http.MethodDelete, "/api/users/other"},
	} {
		w := serve(r, tc.method, tc.path, "student-token")
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterTrailingSlashRedirects(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 0)

	w := serve(r, http.MethodGet, "/api/claims/", "student-token")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/claims", w.Header().Get("Location"))
}

func TestRouterRealtimeDisabled(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 0)

	w := serve(r, http.MethodGet, "/api/notifications/ws?token=student-token", "")
	// the query token is only honoured on websocket upgrades
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/api/notifications/ws", "student-token")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouterRateLimitsAuth(t *testing.T) {
	r := newTestEngine(t, config.EnvDevelopment, 2)

	// empty bodies fail binding, so no service is needed
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/auth/login", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/auth/login", "").Code)

	w := serve(r, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
