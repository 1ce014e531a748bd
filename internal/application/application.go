package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"gamedeals/internal/config"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/infrastructure/cheapshark"
	"gamedeals/internal/infrastructure/notifier"
	"gamedeals/internal/infrastructure/rawg"
	"gamedeals/internal/server"
	"gamedeals/internal/transport/bot"
	"gamedeals/internal/transport/bot/handler"
	"gamedeals/internal/worker"
	"gamedeals/pkg/application/modules"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/httpx"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/metrics"
	"gamedeals/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const alertsBuffer = 100

// Run wires the catalog with its upstream clients and serves it through the
// JSON API and, when a token is configured, the Telegram bot. It blocks until
// ctx is done or one of the modules fails.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	dealsClient := cheapshark.NewClient(cfg.CheapShark, newHTTPClient(cfg, "cheapshark", ""))
	metadataClient := rawg.NewClient(cfg.Rawg, newHTTPClient(cfg, "rawg", cfg.Rawg.APIKey))

	svc := catalog.NewService(dealsClient, metadataClient, catalog.NewStore()).
		WithPreferHighResArt(cfg.Rawg.PreferHighRes)

	if _, err := svc.Load(ctx); err != nil {
		logger(ctx).Warn("initial load failed, serving empty catalog", logx.Error(err))
	}

	var (
		tgBot  *telego.Bot
		alerts chan entity.Deal
	)

	if cfg.Bot.Enabled() {
		var err error

		tgBot, err = telego.NewBot(cfg.Bot.Token)
		if err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}

		if cfg.Bot.AlertsEnabled() {
			alerts = make(chan entity.Deal, alertsBuffer)
			runNotifier(ctx, g, notifier.NewTelegramBot(tgBot, cfg.Bot.AlertChatID), alerts)
		}
	}

	refresher := worker.NewCatalogRefresher(svc, alerts, cfg.Refresh.Interval, cfg.Refresh.DedupTTL).
		WithWatch(entity.FilterSortConfig{
			MinRating: cfg.Bot.AlertMinRating,
			MaxPrice:  cfg.Bot.AlertMaxPrice,
			Sort:      entity.SortRatingDesc,
		})

	if cfg.Refresh.Interval > 0 {
		if err := refresher.Start(ctx); err != nil {
			return fmt.Errorf("refresher.Start: %w", err)
		}
	}

	g.Go(func() error {
		<-ctx.Done()
		refresher.Stop()

		return nil
	})

	if tgBot != nil {
		tgTransport := bot.New(tgBot, handler.New(svc, refresher), cfg.Bot.AllowedChats)

		g.Go(func() error {
			if err := tgTransport.Run(ctx); err != nil {
				return fmt.Errorf("bot.Run: %w", err)
			}

			return nil
		})
	}

	modules.HTTPServer{Name: "api", ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.
		Run(ctx, g, cfg.HTTP.ListenAddress, newRouter(cfg, svc))

	modules.ProbeServer{
		Name:            cfg.App.Name,
		Version:         cfg.App.Version,
		ListenAddress:   cfg.HTTP.ProbeListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Ready:           svc.Loaded,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress:   cfg.HTTP.MetricsListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	logger(ctx).Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		slog.Bool("bot", tgBot != nil),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func runNotifier(ctx context.Context, g *errgroup.Group, n *notifier.TelegramBot, alerts <-chan entity.Deal) {
	g.Go(func() error {
		logger(ctx).Info("notifier started")

		if err := n.SendText(ctx, notifier.StartNotice); err != nil {
			logger(ctx).Warn("failed to send start notice", logx.Error(err))
		}

		if err := n.Run(ctx, alerts); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("notifier.Run: %w", err)
		}

		return nil
	})
}

func newRouter(cfg config.Config, svc *catalog.Service) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.Metrics(metrics.APIRequests),
		middlewarex.Logging(logx.NewSensitiveDataMasker(), cfg.Log.FieldMaxLen),
	)

	server.NewServer(
		server.NewDealsServer(svc),
		server.NewCatalogServer(svc),
	).RegisterRoutes(router)

	return router
}

// newHTTPClient builds the outgoing client for one upstream. An empty apiKey
// leaves the query untouched.
func newHTTPClient(cfg config.Config, upstream string, apiKey string) *http.Client {
	return &http.Client{
		Transport: httpx.NewAPIKeyRoundTripper(
			httpx.NewLoggingRoundTripper(
				httpx.NewMetricsRoundTripper(http.DefaultTransport, upstream, metrics.UpstreamRequests),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
			),
			"key",
			apiKey,
		),
		Timeout: cfg.HTTP.ClientTimeout,
	}
}
