package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/dto"
)

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.IncReportCreated("lost")
	m.SetWSConnections(3)
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsServiceCountsWorkflow(t *testing.T) {
	metrics := NewMetricsService()
	w := newWorkflow()
	w.reportSvc.opts.Metrics = metrics
	ctx := context.Background()

	detail, err := w.reportSvc.Create(ctx, actorOf(studentOwner), foundRequest("Mug"), &dto.PhotoUpload{Data: pngHeader})
	require.NoError(t, err)
	_, err = w.reportSvc.Approve(ctx, actorOf(adminUser), detail.ID)
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportsCreated.WithLabelValues("found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportActions.WithLabelValues("approved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.uploads.WithLabelValues("ok")))

	metrics.SetWSConnections(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.wsConnections))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "lostfound_reports_created_total")
}
