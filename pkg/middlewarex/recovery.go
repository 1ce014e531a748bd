package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/httpx/reply"
	"gamedeals/pkg/logx"
)

// Recovery turns a handler panic into a 500 with the usual error body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,err113
				panic(rec)
			}

			logger(ctx).Error("panic in handler", slog.String(logx.FieldStack, string(debug.Stack())))

			reply.ErrorWithStatus(ctx, w,
				http.StatusInternalServerError,
				errcodes.InternalServerError,
				"internal server error",
				fmt.Errorf("panic: %v", rec), //nolint:err113
			)
		}()

		next.ServeHTTP(w, r)
	})
}
