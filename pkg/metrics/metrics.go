package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "cadaster", Name: "submissions_accepted_total", Help: "Number of registration submissions persisted."},
	)
	SubmissionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cadaster", Name: "submissions_rejected_total", Help: "Number of rejected registration submissions by reason."},
		[]string{"reason"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cadaster", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cadaster", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SubmissionsAccepted)
	reg.MustRegister(SubmissionsRejected)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
