package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/httpx/reply"
	"gamedeals/pkg/rest"
)

type catalogLoader interface {
	Load(context.Context) ([]entity.Deal, error)
	LoadedAt() time.Time
}

type CatalogServer struct {
	catalogLoader catalogLoader
}

func NewCatalogServer(catalogLoader catalogLoader) CatalogServer {
	return CatalogServer{
		catalogLoader: catalogLoader,
	}
}

func (s CatalogServer) postV1CatalogRefresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	deals, err := s.catalogLoader.Load(ctx)
	if err != nil {
		return fmt.Errorf("catalogLoader.Load: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.RefreshResult{
		Count:    len(deals),
		LoadedAt: s.catalogLoader.LoadedAt().UTC().Format(time.RFC3339),
	})

	return nil
}
