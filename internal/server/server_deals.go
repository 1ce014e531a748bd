package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/httpx/reply"
	"gamedeals/pkg/httpx/req"
	"gamedeals/pkg/lox"
	"gamedeals/pkg/rest"
)

type dealsService interface {
	Loaded() bool
	Browse(entity.FilterSortConfig) catalog.Result
	Details(context.Context, value.DealID) (entity.Deal, error)
	Prices(context.Context, string) ([]entity.PriceQuote, error)
}

type DealsServer struct {
	dealsService dealsService
}

func NewDealsServer(dealsService dealsService) DealsServer {
	return DealsServer{
		dealsService: dealsService,
	}
}

func (s DealsServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	request, err := newFilterRequestFromQuery(r.URL.Query())
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newFilterRequestFromQuery: %w", err),
			failure.WithCode(errcodes.InvalidFilter),
			failure.WithDescription(err.Error()),
		)
	}

	if err := req.Validate(ctx, &request); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	return s.browse(w, r, request)
}

func (s DealsServer) postV1DealsSearch(w http.ResponseWriter, r *http.Request) error {
	var request rest.FilterRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.browse(w, r, request)
}

func (s DealsServer) browse(w http.ResponseWriter, r *http.Request, request rest.FilterRequest) error {
	ctx := r.Context()

	cfg, err := newDomainFilterSortConfig(request)
	if err != nil {
		return err
	}

	if err := req.Validate(ctx, &cfg); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	if !s.dealsService.Loaded() {
		return domain.NewError(errcodes.CatalogNotLoaded, "deal list is not loaded yet")
	}

	result := s.dealsService.Browse(cfg)

	reply.JSON(ctx, w, http.StatusOK, rest.DealList{
		Items: lox.Map(result.Items, newRESTDeal),
		Empty: result.Empty,
	})

	return nil
}

func (s DealsServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.WrapError(err, errcodes.InvalidDealID, "invalid deal id")
	}

	deal, err := s.dealsService.Details(ctx, id)
	switch {
	case err == nil:
		reply.JSON(ctx, w, http.StatusOK, newRESTDealDetails(deal, nil))
	case domain.HasCode(err, errcodes.DealNotFound), errors.Is(err, context.Canceled):
		return fmt.Errorf("dealsService.Details: %w", err)
	default:
		// The deal is still shown, without metadata.
		reply.JSON(ctx, w, http.StatusOK, newRESTDealDetails(deal, err))
	}

	return nil
}

func (s DealsServer) getV1Prices(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	quotes, err := s.dealsService.Prices(ctx, r.URL.Query().Get("title"))
	if err != nil {
		return fmt.Errorf("dealsService.Prices: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.PriceQuoteList{
		Items: lox.Map(quotes, newRESTPriceQuote),
	})

	return nil
}
