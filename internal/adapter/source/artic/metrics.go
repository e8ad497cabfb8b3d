package artic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Error classes for gallery_catalog_errors_total
const (
	errorClassNetwork = "network"
	errorClassStatus  = "status"
	errorClassDecode  = "decode"
)

var (
	// catalogRequestsTotal tracks catalog requests by endpoint and HTTP status
	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_catalog_requests_total",
			Help: "Total catalog API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// catalogRequestDuration tracks catalog request latency
	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gallery_catalog_request_duration_seconds",
			Help:    "Catalog API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// catalogErrorsTotal tracks failed requests by class
	catalogErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_catalog_errors_total",
			Help: "Catalog API errors by class (network, status, decode)",
		},
		[]string{"class"},
	)
)
