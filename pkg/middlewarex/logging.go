package middlewarex

import (
	"bytes"
	"cmp"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"gamedeals/pkg/logx"
)

// Logging writes one line for the incoming request and one for the response.
// Dumps go through masker and are cut to maxLen bytes; zero keeps them whole.
// Multipart bodies are not dumped.
func Logging(masker logx.SensitiveDataMaskerInterface, maxLen int) func(next http.Handler) http.Handler {
	prepare := func(dump []byte) string {
		return string(logx.Truncate(masker.Mask(dump), maxLen))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			reqDump, err := httputil.DumpRequest(r, dumpBody)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, prepare(reqDump)),
				logx.Error(err),
			)

			// mutil.WrapWriter keeps the optional interfaces (Flusher,
			// Hijacker) of the underlying writer.
			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			var headers bytes.Buffer

			if err := w.Header().WriteSubset(&headers, nil); err != nil {
				logger(ctx).Error("header.WriteSubset", logx.Error(err))
			}

			// Status stays 0 when the handler only wrote a body.
			status := cmp.Or(lw.Status(), http.StatusOK)

			logger(ctx).Info(
				logx.FieldHTTPResponse,
				slog.Int(logx.FieldResponseStatus, status),
				slog.String(logx.FieldResponseHeaders, prepare(headers.Bytes())),
				slog.String(logx.FieldResponseBody, prepare(body.Bytes())),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}
