package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/service"
)

func TestMetricsHandlerHealth(t *testing.T) {
	h := NewMetricsHandler(nil, nil)

	c, w := newRequestContext(http.MethodGet, "/health", "", nil)
	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeEnvelope(t, w)["status"])
}

func TestMetricsHandlerReady(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	h := NewMetricsHandler(nil, map[string]Pinger{"database": ok})
	c, w := newRequestContext(http.MethodGet, "/ready", "", nil)
	h.Ready(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", decodeEnvelope(t, w)["status"])

	h = NewMetricsHandler(nil, map[string]Pinger{"database": ok, "redis": down})
	c, w = newRequestContext(http.MethodGet, "/ready", "", nil)
	h.Ready(c)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeEnvelope(t, w)
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["database"])
	assert.Equal(t, "connection refused", checks["redis"])
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	c, w := newRequestContext(http.MethodGet, "/metrics", "", nil)
	NewMetricsHandler(nil, nil).Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	metrics := service.NewMetricsService()
	metrics.IncReportCreated("lost")
	c, w = newRequestContext(http.MethodGet, "/metrics", "", nil)
	NewMetricsHandler(metrics, nil).Prometheus(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lostfound_reports_created_total")
}
