package cheapshark

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gamedeals/internal/config"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/infrastructure/upstream"
	"gamedeals/pkg/lox"
)

// Client talks to the CheapShark deals API. Every call is a single GET.
type Client struct {
	httpClient *http.Client
	dealsURL   string
	baseURL    string
}

func NewClient(cfg config.CheapShark, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		dealsURL:   cfg.DealsURL,
		baseURL:    cfg.BaseURL,
	}
}

// FetchDeals loads the deal list. Every deal gets a fresh local id.
func (c *Client) FetchDeals(ctx context.Context) ([]entity.Deal, error) {
	var dtos []dealDTO

	if err := upstream.GetJSON(ctx, c.httpClient, c.dealsURL, &dtos); err != nil {
		return nil, fmt.Errorf("get deals: %w", err)
	}

	for i := range dtos {
		if err := upstream.Validate(&dtos[i]); err != nil {
			return nil, fmt.Errorf("deal #%d: %w", i, err)
		}
	}

	return lox.Map(dtos, newDomainDeal), nil
}

// LookupPrices searches games by title and returns their price quotes in
// API order.
func (c *Client) LookupPrices(ctx context.Context, title string) ([]entity.PriceQuote, error) {
	u := fmt.Sprintf("%s/games?title=%s", c.baseURL, url.QueryEscape(title))

	var dtos []gameDTO

	if err := upstream.GetJSON(ctx, c.httpClient, u, &dtos); err != nil {
		return nil, fmt.Errorf("get games: %w", err)
	}

	return lox.Map(dtos, newDomainPriceQuote), nil
}
