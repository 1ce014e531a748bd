package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"gamedeals/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID reuses the caller's X-Trace-Id or mints one, and echoes it back.
// Overlong ids are replaced.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))))
	})
}
