package httpx

import (
	"net/http"
	"strconv"

	"mashupapi/internal/metrics"
)

// MetricsMiddleware counts requests per route pattern and status code.
// The route label is the registered pattern, not the raw path, to keep
// cardinality bounded.
func MetricsMiddleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rw.statusCode)).Inc()
	})
}
