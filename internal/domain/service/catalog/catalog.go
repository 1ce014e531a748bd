package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/metrics"
)

//go:generate moq -rm -out mocks.gen.go . DealsClient MetadataClient

type DealsClient interface {
	FetchDeals(ctx context.Context) ([]entity.Deal, error)
	LookupPrices(ctx context.Context, title string) ([]entity.PriceQuote, error)
}

// MetadataClient looks games up in the metadata API. A false found flag with
// a nil error means the API answered but knows no such game.
type MetadataClient interface {
	SearchMetadata(ctx context.Context, title string) (entity.GameMetadata, bool, error)
	GameDetails(ctx context.Context, rawgID int64) (entity.GameMetadata, bool, error)
}

type Service struct {
	deals    DealsClient
	metadata MetadataClient
	store    *Store
	merge    MergeOptions
}

func NewService(
	deals DealsClient,
	metadata MetadataClient,
	store *Store,
) *Service {
	return &Service{
		deals:    deals,
		metadata: metadata,
		store:    store,
	}
}

func (s *Service) WithPreferHighResArt(prefer bool) *Service {
	s.merge.PreferHighRes = prefer
	return s
}

// Load fetches the deal list and swaps it into the store. On failure the
// previous list stays in place.
func (s *Service) Load(ctx context.Context) ([]entity.Deal, error) {
	deals, err := s.deals.FetchDeals(ctx)
	if err != nil {
		logger(ctx).Error("failed to load deals", logx.Error(err))
		return nil, fmt.Errorf("fetch deals: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load superseded: %w", err)
	}

	s.store.Replace(deals)
	metrics.CatalogDeals.Set(float64(len(deals)))

	logger(ctx).Info("deals loaded", slog.Int(logx.FieldCount, len(deals)))

	return deals, nil
}

// Deals returns the current list in load order.
func (s *Service) Deals() []entity.Deal {
	return s.store.All()
}

// Loaded reports whether at least one load succeeded.
func (s *Service) Loaded() bool {
	return !s.store.LoadedAt().IsZero()
}

func (s *Service) LoadedAt() time.Time {
	return s.store.LoadedAt()
}

// Browse runs the filter/sort engine over the current list.
func (s *Service) Browse(cfg entity.FilterSortConfig) Result {
	return Apply(s.store.All(), cfg)
}

func (s *Service) Deal(id value.DealID) (entity.Deal, error) {
	deal, ok := s.store.Get(id)
	if !ok {
		return entity.Deal{}, domain.NewError(errcodes.DealNotFound, fmt.Sprintf("deal %s not found", id))
	}

	return deal, nil
}

// Details looks up metadata for one deal and attaches it. When the metadata
// API knows no such game the deal is returned unchanged. On any failure the
// deal is returned as stored together with the error, so the caller can
// still render it. A cancelled ctx never writes back into the store.
func (s *Service) Details(ctx context.Context, id value.DealID) (entity.Deal, error) {
	deal, err := s.Deal(id)
	if err != nil {
		return entity.Deal{}, err
	}

	meta, found, err := s.lookup(ctx, deal.Title)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			metrics.MetadataLookups.WithLabelValues("canceled").Inc()
		} else {
			metrics.MetadataLookups.WithLabelValues("error").Inc()
			logger(ctx).Warn("metadata lookup failed",
				slog.String(logx.FieldDealID, id.String()),
				slog.String(logx.FieldTitle, deal.Title),
				logx.Error(err),
			)
		}

		return deal, fmt.Errorf("lookup metadata: %w", err)
	}

	if !found {
		metrics.MetadataLookups.WithLabelValues("not_found").Inc()
		logger(ctx).Debug("no metadata for deal", slog.String(logx.FieldTitle, deal.Title))

		return deal, nil
	}

	metrics.MetadataLookups.WithLabelValues("found").Inc()

	merged := AttachMetadata(deal, meta, s.merge)

	if err := ctx.Err(); err != nil {
		return deal, fmt.Errorf("details superseded: %w", err)
	}

	if !s.store.Update(merged) {
		logger(ctx).Debug("deal left the list before metadata arrived", slog.String(logx.FieldDealID, id.String()))
	}

	return merged, nil
}

// lookup searches by title and, when the first hit has an id, enriches it
// with the detail response. A failed detail call degrades to the search hit.
func (s *Service) lookup(ctx context.Context, title string) (entity.GameMetadata, bool, error) {
	meta, found, err := s.metadata.SearchMetadata(ctx, title)
	if err != nil {
		return entity.GameMetadata{}, false, fmt.Errorf("search: %w", err)
	}

	if !found || meta.RawgID == 0 {
		return meta, found, nil
	}

	detail, ok, err := s.metadata.GameDetails(ctx, meta.RawgID)
	switch {
	case err != nil && errors.Is(err, context.Canceled):
		return entity.GameMetadata{}, false, fmt.Errorf("details: %w", err)
	case err != nil:
		logger(ctx).Warn("game details unavailable, using search result",
			slog.Int64("rawg-id", meta.RawgID),
			logx.Error(err),
		)
	case ok:
		meta = detail.Merge(meta)
	}

	return meta, true, nil
}

// Prices runs the alternate price lookup by title.
func (s *Service) Prices(ctx context.Context, title string) ([]entity.PriceQuote, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.NewError(errcodes.InvalidSearchTitle, "title must not be empty")
	}

	quotes, err := s.deals.LookupPrices(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("lookup prices: %w", err)
	}

	return quotes, nil
}
