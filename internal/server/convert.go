package server

import (
	"fmt"
	"net/url"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/rest"
)

const metadataUnavailable = "details unavailable"

func newRESTDeal(deal entity.Deal) rest.Deal {
	result := rest.Deal{
		ID:                 deal.ID.String(),
		Title:              deal.Title,
		NormalPrice:        deal.NormalPrice,
		SalePrice:          deal.SalePrice,
		SteamRatingPercent: deal.SteamRatingPercent,
		Thumb:              deal.Thumb,
		SteamAppID:         deal.SteamAppID,
		MetacriticScore:    deal.MetacriticScore,
	}

	if discount, ok := deal.Discount(); ok {
		result.Discount = &discount
	}

	return result
}

func newRESTDealDetails(deal entity.Deal, lookupErr error) rest.DealDetails {
	result := rest.DealDetails{
		Deal:        newRESTDeal(deal),
		Description: deal.DescriptionOrFallback(),
		SteamLink:   deal.SteamLink,
		Genres:      nonNil(deal.Genres),
		Platforms:   nonNil(deal.Platforms),
		Developers:  nonNil(deal.Developers),
	}

	if lookupErr != nil {
		result.MetadataError = metadataUnavailable
	}

	return result
}

func newRESTPriceQuote(quote entity.PriceQuote) rest.PriceQuote {
	return rest.PriceQuote{
		GameID:         quote.GameID,
		SteamAppID:     quote.SteamAppID,
		Title:          quote.Title,
		Cheapest:       quote.Cheapest,
		CheapestDealID: quote.CheapestDealID,
		Thumb:          quote.Thumb,
		NormalPrice:    quote.NormalPrice,
		SalePrice:      quote.SalePrice,
	}
}

// newDomainFilterSortConfig lays the request over the default config.
func newDomainFilterSortConfig(request rest.FilterRequest) (entity.FilterSortConfig, error) {
	cfg := entity.DefaultFilterSortConfig()

	if request.SearchQuery != nil {
		cfg.SearchQuery = *request.SearchQuery
	}

	if request.MinRating != nil {
		cfg.MinRating = *request.MinRating
	}

	if request.MaxPrice != nil {
		cfg.MaxPrice = *request.MaxPrice
	}

	if request.SkipMissing != nil {
		cfg.SkipMissing = *request.SkipMissing
	}

	if request.Sort != nil {
		sort, err := entity.ParseSortOption(*request.Sort)
		if err != nil {
			return entity.FilterSortConfig{}, failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("entity.ParseSortOption: %w", err),
				failure.WithCode(errcodes.InvalidSortOption),
				failure.WithDescription(err.Error()),
			)
		}

		cfg.Sort = sort
	}

	return cfg, nil
}

// newFilterRequestFromQuery reads q, minRating, maxPrice, sort and
// skipMissing from the query string.
func newFilterRequestFromQuery(query url.Values) (rest.FilterRequest, error) {
	var request rest.FilterRequest

	if query.Has("q") {
		q := query.Get("q")
		request.SearchQuery = &q
	}

	if query.Has("sort") {
		sort := query.Get("sort")
		request.Sort = &sort
	}

	var err error

	if request.MinRating, err = parseFloatParam(query, "minRating"); err != nil {
		return rest.FilterRequest{}, err
	}

	if request.MaxPrice, err = parseFloatParam(query, "maxPrice"); err != nil {
		return rest.FilterRequest{}, err
	}

	if query.Has("skipMissing") {
		skip, err := strconv.ParseBool(query.Get("skipMissing"))
		if err != nil {
			return rest.FilterRequest{}, fmt.Errorf("skipMissing: %w", err)
		}

		request.SkipMissing = &skip
	}

	return request, nil
}

func parseFloatParam(query url.Values, name string) (*float64, error) {
	if !query.Has(name) {
		return nil, nil //nolint:nilnil
	}

	v, err := strconv.ParseFloat(query.Get(name), 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
