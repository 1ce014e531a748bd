package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type catalogLoader interface {
	Load(ctx context.Context) ([]entity.Deal, error)
}

// CatalogRefresher reloads the deal list on an interval and forwards deals
// matching the watch config that were not seen before. The first load only
// records what is already on sale.
type CatalogRefresher struct {
	loader   catalogLoader
	alerts   chan<- entity.Deal
	interval time.Duration
	watch    entity.FilterSortConfig
	seen     *cache.Cache
	primed   bool

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCatalogRefresher(
	loader catalogLoader,
	alerts chan<- entity.Deal,
	interval time.Duration,
	seenTTL time.Duration,
) *CatalogRefresher {
	return &CatalogRefresher{
		loader:   loader,
		alerts:   alerts,
		interval: interval,
		watch:    entity.DefaultFilterSortConfig(),
		seen:     cache.New(seenTTL, seenTTL),
	}
}

// WithWatch sets the config a deal must match to be alerted.
func (w *CatalogRefresher) WithWatch(cfg entity.FilterSortConfig) *CatalogRefresher {
	w.watch = cfg
	return w
}

func (w *CatalogRefresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("refresher is already running")
	}

	if w.interval <= 0 {
		return errors.New("refresh interval is not set")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("refresher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *CatalogRefresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *CatalogRefresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// Run refreshes right away and then on every tick until ctx is done. A failed
// refresh is logged and retried on the next tick only.
func (w *CatalogRefresher) Run(ctx context.Context) error {
	logger(ctx).Info("refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.RefreshOnce(ctx); err != nil && ctx.Err() == nil {
			logger(ctx).Warn("refresh failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("refresher stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RefreshOnce loads the list once and forwards new matching deals.
func (w *CatalogRefresher) RefreshOnce(ctx context.Context) error {
	deals, err := w.loader.Load(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	matched := catalog.Apply(deals, w.watch).Items

	var fresh []entity.Deal

	for _, deal := range matched {
		// Add fails when the key is already there.
		if err := w.seen.Add(dealKey(deal), struct{}{}, cache.DefaultExpiration); err == nil {
			fresh = append(fresh, deal)
		}
	}

	if !w.primed {
		w.primed = true

		logger(ctx).Info("refresher primed", slog.Int(logx.FieldCount, len(fresh)))

		return nil
	}

	if len(fresh) > 0 {
		logger(ctx).Info("new deals found", slog.Int(logx.FieldCount, len(fresh)))
	}

	if w.alerts == nil {
		return nil
	}

	for _, deal := range fresh {
		select {
		case w.alerts <- deal:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// dealKey identifies a deal across reloads, where local ids change. A price
// change makes it a new deal.
func dealKey(deal entity.Deal) string {
	if deal.DealID != "" {
		return deal.DealID + "|" + deal.SalePrice
	}

	return deal.Title + "|" + deal.SalePrice
}
