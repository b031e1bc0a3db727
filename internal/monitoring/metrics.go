package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_record_mutations_total",
			Help: "Create, update and delete operations per entity",
		},
		[]string{"entity", "operation", "status"},
	)

	searches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_searches_total",
			Help: "Name searches per entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	rateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

// TrackMutation counts a create/update/delete attempt and whether it committed.
func TrackMutation(entity, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	recordMutations.WithLabelValues(entity, operation, status).Inc()
}

// TrackSearch counts a search by outcome: no_term, no_match, match or error.
func TrackSearch(entity string, matches int, err error) {
	outcome := "match"
	switch {
	case err != nil:
		outcome = "error"
	case matches == 0:
		outcome = "no_match"
	}
	searches.WithLabelValues(entity, outcome).Inc()
}

func TrackSearchWithoutTerm(entity string) {
	searches.WithLabelValues(entity, "no_term").Inc()
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func TrackRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}
