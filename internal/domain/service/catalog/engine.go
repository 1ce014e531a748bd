package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
)

// Result is the ordered subset of deals to display.
type Result struct {
	Items []entity.Deal
	Empty bool
}

// Apply filters and sorts deals according to cfg. It never mutates deals and
// performs no I/O, so the same input always yields the same output.
func Apply(deals []entity.Deal, cfg entity.FilterSortConfig) Result {
	f := newFilter(cfg)

	items := lo.Filter(deals, func(deal entity.Deal, _ int) bool {
		return f.match(deal)
	})

	slices.SortStableFunc(items, comparator(cfg.Sort))

	return Result{
		Items: items,
		Empty: len(items) == 0,
	}
}

type filter struct {
	minRating   decimal.Decimal
	maxPrice    decimal.Decimal
	query       string
	skipMissing bool
}

func newFilter(cfg entity.FilterSortConfig) filter {
	return filter{
		minRating: decimal.NewFromFloat(cfg.MinRating),
		maxPrice:  decimal.NewFromFloat(cfg.MaxPrice),
		// Whitespace is significant: the query is not trimmed.
		query:       strings.ToLower(cfg.SearchQuery),
		skipMissing: cfg.SkipMissing,
	}
}

func (f filter) match(deal entity.Deal) bool {
	return f.matchRating(deal) && f.matchPrice(deal) && f.matchTitle(deal)
}

func (f filter) matchRating(deal entity.Deal) bool {
	rating, ok := value.ParseNumber(deal.SteamRatingPercent)
	if !ok && f.skipMissing {
		return true
	}

	return rating.GreaterThanOrEqual(f.minRating)
}

func (f filter) matchPrice(deal entity.Deal) bool {
	price, ok := value.ParseNumber(deal.SalePrice)
	if !ok && f.skipMissing {
		return true
	}

	return price.LessThanOrEqual(f.maxPrice)
}

func (f filter) matchTitle(deal entity.Deal) bool {
	if f.query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(deal.Title), f.query)
}

func comparator(option entity.SortOption) func(a, b entity.Deal) int {
	key := entity.Deal.Rating
	if option.ByPrice() {
		key = entity.Deal.Sale
	}

	if option.Descending() {
		return func(a, b entity.Deal) int {
			return key(b).Cmp(key(a))
		}
	}

	return func(a, b entity.Deal) int {
		return key(a).Cmp(key(b))
	}
}
