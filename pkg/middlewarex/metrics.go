package middlewarex

import (
	"cmp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zenazn/goji/web/mutil"
)

// Metrics counts served requests by method, route pattern and status. The
// route pattern is read after the handler ran, once chi has resolved it.
func Metrics(requests *prometheus.CounterVec) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lw := mutil.WrapWriter(w)

			next.ServeHTTP(lw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			status := cmp.Or(lw.Status(), http.StatusOK)

			requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		})
	}
}
