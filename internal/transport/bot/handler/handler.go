package handler

import (
	"context"
	"time"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	listLimit   = 20
	pricesLimit = 10
	sessionTTL  = 24 * time.Hour
)

type catalogService interface {
	Loaded() bool
	LoadedAt() time.Time
	Deals() []entity.Deal
	Load(ctx context.Context) ([]entity.Deal, error)
	Browse(cfg entity.FilterSortConfig) catalog.Result
	Details(ctx context.Context, id value.DealID) (entity.Deal, error)
	Prices(ctx context.Context, title string) ([]entity.PriceQuote, error)
}

type refresher interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
}

type Handler struct {
	svc       catalogService
	refresher refresher
	sessions  *Sessions
}

func New(svc catalogService, refresher refresher) *Handler {
	return &Handler{
		svc:       svc,
		refresher: refresher,
		sessions:  NewSessions(sessionTTL),
	}
}
