package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskscout_ticket_transitions_total",
			Help: "Ticket lifecycle transitions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	bidDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskscout_bid_decisions_total",
			Help: "Organization decisions on vendor bids",
		},
		[]string{"decision"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskscout_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordTransition counts one lifecycle attempt. outcome is "ok", "denied"
// or "error".
func RecordTransition(action, outcome string) {
	ticketTransitions.WithLabelValues(action, outcome).Inc()
}

func RecordBidDecision(decision string) {
	bidDecisions.WithLabelValues(decision).Inc()
}

// Middleware observes request latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
