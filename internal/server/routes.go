package server

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"gamedeals/internal/domain"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/deals", func(r chi.Router) {
			r.Get("/", handler(s.getV1Deals))
			r.Post("/search", handler(s.postV1DealsSearch))
			r.Get("/{id}", handler(s.getV1Deal))
		})

		r.Get("/prices", handler(s.getV1Prices))
		r.Post("/catalog/refresh", handler(s.postV1CatalogRefresh))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(r.Context(), w, err)
		}
	}
}

// replyError answers domain errors by their code and hands everything else to
// reply.Error.
func replyError(ctx context.Context, w http.ResponseWriter, err error) {
	code, ok := domain.GetCode(err)
	if !ok {
		if errors.Is(err, context.Canceled) {
			return
		}

		reply.Error(ctx, w, err)

		return
	}

	var appErr *domain.AppError

	_ = errors.As(err, &appErr)

	reply.ErrorWithStatus(ctx, w, statusCode(code), code, appErr.Message, err)
}

func statusCode(code failure.ErrorCode) int {
	switch code {
	case errcodes.DealNotFound, errcodes.NotFound:
		return http.StatusNotFound
	case errcodes.InvalidDealID, errcodes.InvalidSortOption, errcodes.InvalidFilter,
		errcodes.InvalidSearchTitle, errcodes.ValidationError:
		return http.StatusBadRequest
	case errcodes.CatalogNotLoaded:
		return http.StatusServiceUnavailable
	case errcodes.NetworkError, errcodes.DecodeError:
		return http.StatusBadGateway
	case errcodes.TimeoutExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
