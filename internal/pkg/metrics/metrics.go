package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

var (
	once sync.Once

	checkoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout attempts by final status.",
		},
		[]string{"status"},
	)

	checkoutItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_items_total",
			Help:      "Count of checkout line items by terminal state and failing step.",
		},
		[]string{"state", "step"},
	)

	backendCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Latency of calls to backend services by transport, operation and result.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transport", "operation", "result"},
	)

	cartSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_items",
			Help:      "Number of line items in a cart after each change.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of handled HTTP requests by route and status code.",
		},
		[]string{"method", "route", "code"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(checkoutTotal, checkoutItems, backendCalls, cartSize, httpRequests)
	})
}

func IncCheckout(status string) {
	checkoutTotal.WithLabelValues(status).Inc()
}

func IncCheckoutItem(state, step string) {
	checkoutItems.WithLabelValues(state, step).Inc()
}

func ObserveBackendCall(transport, operation string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	backendCalls.WithLabelValues(transport, operation, result).Observe(d.Seconds())
}

func ObserveCartSize(n int) {
	cartSize.Observe(float64(n))
}

func IncHTTPRequest(method, route string, code int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}
