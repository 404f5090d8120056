package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the auth-subsystem counters. Reuse detection gets its
// own counter because it is the one signal operators alert on.
type Metrics struct {
	Logins        *prometheus.CounterVec
	Rotations     prometheus.Counter
	Revocations   prometheus.Counter
	ReuseDetected prometheus.Counter
}

// New registers the counters with the given registerer. Tests pass a
// fresh prometheus.NewRegistry to stay independent.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Successful logins by auth provider.",
		}, []string{"provider"}),
		Rotations: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_refresh_rotations_total",
			Help: "Successful refresh token rotations.",
		}),
		Revocations: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_refresh_revocations_total",
			Help: "Refresh tokens revoked via logout.",
		}),
		ReuseDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_refresh_reuse_detected_total",
			Help: "Presentations of an already-revoked refresh token.",
		}),
	}
}
