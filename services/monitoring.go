package services

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "deepfind_backend"
	DEFAULT_PROMETHEUS_PORT = 2112
)

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Pipeline Metrics
var (
	analysisRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_runs_total",
			Help: "Total video-analysis pipeline runs by terminal state",
		},
		[]string{"status"},
	)

	analysisRunDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_run_duration_seconds",
			Help:    "Wall-clock duration of one pipeline run",
			Buckets: []float64{0.5, 1, 2.5, 5, 7.5, 10, 15, 30},
		},
	)
)

// System Metrics
var (
	heapAllocBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "heap_alloc_bytes",
			Help: "Heap memory allocated in bytes",
		},
	)

	gcTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gc_total",
			Help: "Total number of garbage collections",
		},
	)
)

func observeAnalysisRun(ok bool, elapsed time.Duration) {
	status := "completed"
	if !ok {
		status = "error"
	}
	analysisRunsTotal.WithLabelValues(status).Inc()
	analysisRunDurationSeconds.Observe(elapsed.Seconds())
}

type MonitoringService struct {
	context.DefaultService

	port     int
	registry *prometheus.Registry
	server   *http.Server
}

func (svc MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *context.Context) error {
	svc.port = DEFAULT_PROMETHEUS_PORT
	if raw := os.Getenv("PROMETHEUS_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			svc.port = port
		}
	}

	svc.registry = prometheus.NewRegistry()
	svc.registry.MustRegister(
		collectors.NewGoCollector(),
		httpRequestsTotal,
		httpRequestDurationSeconds,
		analysisRunsTotal,
		analysisRunDurationSeconds,
		heapAllocBytes,
		gcTotal,
	)

	return svc.DefaultService.Configure(ctx)
}

func (svc *MonitoringService) Start() error {
	go svc.collectSystemMetrics()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(svc.registry, promhttp.HandlerOpts{}))

	svc.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", svc.port),
		Handler: mux,
	}

	go func() {
		log.Info().Int("port", svc.port).Str("service", SERVICE_NAME).Msg("Prometheus metrics listening")
		if err := svc.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server stopped")
		}
	}()

	return nil
}

func (svc *MonitoringService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Close()
	}
}

// FiberMiddleware records per-endpoint request counts and latencies.
func (svc *MonitoringService) FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()

		err := c.Next()

		status := strconv.Itoa(c.Response().StatusCode())
		endpoint := c.Route().Path
		method := c.Method()

		httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(time.Since(started).Seconds())

		return err
	}
}

func (svc *MonitoringService) collectSystemMetrics() {
	var lastGC uint32

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		heapAllocBytes.Set(float64(stats.HeapAlloc))
		if stats.NumGC > lastGC {
			gcTotal.Add(float64(stats.NumGC - lastGC))
			lastGC = stats.NumGC
		}
	}
}
