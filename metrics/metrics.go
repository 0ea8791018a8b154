package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		},
		[]string{"currency"},
	)

	ordersCreatedAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_amount_total",
			Help: "Total amount of created orders in the smallest currency unit",
		},
		[]string{"currency"},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total number of payments reaching a terminal state",
		},
		[]string{"method", "status"},
	)

	paymentsAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_amount_total",
			Help: "Total amount of terminal payments in the smallest currency unit",
		},
		[]string{"method", "status", "currency"},
	)

	paymentProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_processing_duration_seconds",
			Help:    "Time spent in simulated settlement per payment",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s, 1s, 2s ... 64s
		},
		[]string{"method", "status"},
	)

	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API error responses by error code",
		},
		[]string{"code"},
	)
)

// RecordOrderCreated records a successfully created order
func RecordOrderCreated(currency string, amount int64) {
	ordersCreatedTotal.WithLabelValues(currency).Inc()
	ordersCreatedAmountTotal.WithLabelValues(currency).Add(float64(amount))
}

// RecordPaymentProcessed records a payment that reached a terminal state
func RecordPaymentProcessed(method, status, currency string, amount int64, durationSeconds float64) {
	paymentsTotal.WithLabelValues(method, status).Inc()
	paymentsAmountTotal.WithLabelValues(method, status, currency).Add(float64(amount))
	paymentProcessingDuration.WithLabelValues(method, status).Observe(durationSeconds)
}

// RecordAPIError records an error response by wire code
func RecordAPIError(code string) {
	apiErrorsTotal.WithLabelValues(code).Inc()
}
