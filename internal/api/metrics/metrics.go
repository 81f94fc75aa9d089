// Package metrics defines and registers all custom Prometheus metrics for the
// fedhealth dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fedhealth"

// HospitalsRegisteredTotal counts hospitals created through POST /api/hospitals.
var HospitalsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hospitals_registered_total",
		Help:      "Total number of hospitals registered via the API.",
	},
)

// UserUpsertsTotal counts user upserts.
// Label:
//   - result: "created" (first upsert for an email) or "updated" (subsequent)
var UserUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_upserts_total",
		Help:      "Total number of user upserts, labelled by outcome.",
	},
	[]string{"result"},
)

// DashboardReadsTotal counts dashboard read-model requests.
// Label:
//   - view: "metrics", "history", or "participation"
var DashboardReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_reads_total",
		Help:      "Total number of dashboard read-model requests, by view.",
	},
	[]string{"view"},
)

// HealthCheckFailuresTotal counts /health probes that could not reach the store.
var HealthCheckFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_check_failures_total",
		Help:      "Total number of liveness probes that failed the store round-trip.",
	},
)
