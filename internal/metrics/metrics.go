// Package metrics declares the Prometheus collectors shared by the service
// and its transports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Creation paths.
const (
	PathFactory   = "factory"
	PathBuilder   = "builder"
	PathPrototype = "prototype"
)

var (
	ProductsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_products_created_total",
			Help: "Total number of products created, by creation path and variant",
		},
		[]string{"path", "variant"},
	)

	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_registrations_total",
			Help: "Total number of products added to the inventory registry",
		},
	)

	NoticesPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_notices_published_total",
			Help: "Total number of registration notices published",
		},
	)

	NoticePublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_notice_publish_failures_total",
			Help: "Total number of registration notices that failed to publish",
		},
	)

	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factory_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)
)
