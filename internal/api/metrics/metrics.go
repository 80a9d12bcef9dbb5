// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings. Request-level metrics come from the echoprometheus
// middleware; only domain-specific metrics live here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// UpstreamRequestsTotal counts calls forwarded to the external backend.
// Labels:
//   - method: HTTP method of the forwarded call
//   - path: upstream resource path (e.g. "/member/login")
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of calls forwarded to the upstream backend.",
	},
	[]string{"method", "path"},
)

// UpstreamErrorsTotal counts forwarded calls that failed before an envelope
// could be relayed.
// Label:
//   - reason: "network" (transport failure or timeout) or "decode" (body not
//     an envelope)
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of upstream calls that failed, by reason.",
	},
	[]string{"reason"},
)

// UploadsTotal counts image upload attempts.
// Label:
//   - result: "accepted", "rejected_missing", "rejected_type", "rejected_size"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by result.",
	},
	[]string{"result"},
)

// UploadSizeBytes observes the size of accepted uploads.
var UploadSizeBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Size distribution of accepted image uploads.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 6), // 1KiB .. 1MiB
	},
)
