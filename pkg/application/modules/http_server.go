package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"gamedeals/pkg/logx"
)

const readHeaderTimeout = 5 * time.Second

// HTTPServer serves handler on address until ctx is done, then shuts down
// gracefully within ShutdownTimeout. Name only labels the log lines.
type HTTPServer struct {
	Name            string
	ShutdownTimeout time.Duration
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	address string,
	handler http.Handler,
) {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	log := logger(ctx).With(slog.String("server", h.Name), slog.String("address", address))

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("server.Shutdown", logx.Error(err))
			}
		}()

		log.Info("http server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: ListenAndServe: %w", h.Name, err)
		}

		log.Info("http server stopped")

		return nil
	})
}
