package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records in-flight requests, request counts and latency labelled by
// the chi route pattern rather than the raw path.
func Metrics(m requestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			done := m.RequestStarted()
			defer done()

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			m.ObserveRequest(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}
