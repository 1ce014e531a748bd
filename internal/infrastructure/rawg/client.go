package rawg

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gamedeals/internal/config"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/infrastructure/upstream"
)

// notFoundKey marks the error body RAWG serves for an unknown game id.
const notFoundKey = "detail"

// Client talks to the RAWG games API. The API key is added to every request
// by the transport, see httpx.NewAPIKeyRoundTripper.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Rawg, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
	}
}

// SearchMetadata searches games by name and returns the first hit. An empty
// result list is reported as not found.
func (c *Client) SearchMetadata(ctx context.Context, title string) (entity.GameMetadata, bool, error) {
	u := fmt.Sprintf("%s/games?search=%s", c.baseURL, url.QueryEscape(title))

	var search searchDTO

	if err := upstream.GetJSON(ctx, c.httpClient, u, &search); err != nil {
		return entity.GameMetadata{}, false, fmt.Errorf("search games: %w", err)
	}

	if len(search.Results) == 0 {
		return entity.GameMetadata{}, false, nil
	}

	return newDomainMetadata(search.Results[0]), true, nil
}

// GameDetails loads one game by its RAWG id. A body carrying a "detail" key
// is how RAWG says the id is unknown, whatever the status code.
func (c *Client) GameDetails(ctx context.Context, rawgID int64) (entity.GameMetadata, bool, error) {
	u := c.baseURL + "/games/" + strconv.FormatInt(rawgID, 10)

	resp, err := upstream.Get(ctx, c.httpClient, u)
	if err != nil {
		return entity.GameMetadata{}, false, fmt.Errorf("get game: %w", err)
	}

	if upstream.HasKey(resp.Body, notFoundKey) && (resp.OK() || resp.StatusCode == http.StatusNotFound) {
		return entity.GameMetadata{}, false, nil
	}

	if !resp.OK() {
		return entity.GameMetadata{}, false, fmt.Errorf("get game: %w", upstream.UnexpectedStatus(resp))
	}

	var game gameDTO

	if err := upstream.Decode(resp.Body, &game); err != nil {
		return entity.GameMetadata{}, false, fmt.Errorf("get game: %w", err)
	}

	return newDomainMetadata(game), true, nil
}
