package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	reportsCreated  *prometheus.CounterVec
	reportActions   *prometheus.CounterVec
	uploads         *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	wsConnections   prometheus.Gauge
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	reportsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_reports_created_total",
		Help: "Reports created, by type",
	}, []string{"type"})

	reportActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_report_actions_total",
		Help: "Report workflow actions, by action",
	}, []string{"action"})

	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_photo_uploads_total",
		Help: "Photo uploads, by result",
	}, []string{"result"})

	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_notifications_total",
		Help: "Notifications created and pushed, by stage",
	}, []string{"stage"})

	wsConnections := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lostfound_ws_connections",
		Help: "Open notification websocket connections",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHits, cacheMisses,
		reportsCreated, reportActions, uploads, notifications, wsConnections, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		reportsCreated:  reportsCreated,
		reportActions:   reportActions,
		uploads:         uploads,
		notifications:   notifications,
		wsConnections:   wsConnections,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request latency and count.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records a cache lookup.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// ObserveCacheWrite tracks the duration of cache writes.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// IncReportCreated counts a persisted report.
func (m *MetricsService) IncReportCreated(reportType string) {
	if m == nil {
		return
	}
	m.reportsCreated.WithLabelValues(reportType).Inc()
}

// IncReportAction counts approve, reject, claim and item-found actions.
func (m *MetricsService) IncReportAction(action string) {
	if m == nil {
		return
	}
	m.reportActions.WithLabelValues(action).Inc()
}

// IncUpload counts photo uploads by "ok", "rejected" or "failed".
func (m *MetricsService) IncUpload(result string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
}

// IncNotification counts notifications at the "created" or "pushed" stage.
func (m *MetricsService) IncNotification(stage string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(stage).Inc()
}

// SetWSConnections sets the open websocket gauge.
func (m *MetricsService) SetWSConnections(n int) {
	if m == nil {
		return
	}
	m.wsConnections.Set(float64(n))
}
