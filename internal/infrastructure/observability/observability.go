// Package observability exposes the service's Prometheus instruments.
// Counters are package-level promauto vars so any layer can record without
// plumbing a registry around.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EstimatesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crm_estimates_created_total",
	Help: "Number of estimate documents created.",
})

var RevisionsAppended = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crm_estimate_revisions_total",
	Help: "Number of revision entries appended to estimate change logs.",
})

var PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "crm_payments_recorded_total",
	Help: "Number of payments recorded, by method.",
}, []string{"method"})

var VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crm_estimate_version_conflicts_total",
	Help: "Number of estimate writes rejected by the optimistic lock.",
})

var ClientViews = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crm_client_estimate_views_total",
	Help: "Number of token-based client views of estimates.",
})
