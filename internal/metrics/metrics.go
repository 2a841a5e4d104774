package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_bookings_total",
			Help: "Appointment booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	availabilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_availability_checks_total",
			Help: "Availability checks by result",
		},
		[]string{"available"},
	)
)

func ObserveBooking(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

func ObserveAvailability(available bool) {
	availabilityChecks.WithLabelValues(strconv.FormatBool(available)).Inc()
}

// Middleware registra contagem e latência por rota (template, não o path cru).
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
