package rawg_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/config"
	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/infrastructure/rawg"
	"gamedeals/pkg/httpx"
)

func newClient(t *testing.T, handler http.HandlerFunc) *rawg.Client {
	t.Helper()

	httpServer := httptest.NewServer(handler)
	t.Cleanup(httpServer.Close)

	return rawg.NewClient(config.Rawg{BaseURL: httpServer.URL + "/api"}, httpServer.Client())
}

func TestSearchMetadata(t *testing.T) {
	rq := require.New(t)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/api/games", r.URL.Path)
		rq.Equal("Portal 2: Deluxe & More", r.URL.Query().Get("search"))

		w.Write([]byte(`{
			"count": 2,
			"results": [
				{
					"id": 4200,
					"name": "Portal 2",
					"background_image": "https://media.rawg.io/portal2.jpg",
					"genres": [{"id": 2, "name": "Shooter"}, {"id": 7, "name": "Puzzle"}],
					"platforms": [{"platform": {"id": 4, "name": "PC"}}, {"platform": {"id": 1, "name": "Xbox One"}}]
				},
				{"id": 1, "name": "Portal"}
			]
		}`)) //nolint:errcheck
	})

	meta, found, err := client.SearchMetadata(context.Background(), "Portal 2: Deluxe & More")
	rq.NoError(err)
	rq.True(found)
	rq.Equal(int64(4200), meta.RawgID)
	rq.Equal("Portal 2", meta.Name)
	rq.Equal("https://media.rawg.io/portal2.jpg", meta.ImageURL)
	rq.Equal([]string{"Shooter", "Puzzle"}, meta.Genres)
	rq.Equal([]string{"PC", "Xbox One"}, meta.Platforms)
}

func TestSearchMetadataAbsentLists(t *testing.T) {
	rq := require.New(t)

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[{"id":9,"name":"Bare","genres":null}]}`)) //nolint:errcheck
	})

	meta, found, err := client.SearchMetadata(context.Background(), "Bare")
	rq.NoError(err)
	rq.True(found)
	rq.NotNil(meta.Genres)
	rq.Empty(meta.Genres)
	rq.NotNil(meta.Platforms)
	rq.Empty(meta.Platforms)
	rq.Empty(meta.ImageURL)
}

func TestSearchMetadataNotFound(t *testing.T) {
	rq := require.New(t)

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"count":0,"results":[]}`)) //nolint:errcheck
	})

	meta, found, err := client.SearchMetadata(context.Background(), "zzzz")
	rq.NoError(err)
	rq.False(found)
	rq.Equal(entity.GameMetadata{}, meta)
}

func TestSearchMetadataErrors(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		isNetwork bool
		isDecode  bool
	}{
		{
			name:      "Unauthorized",
			status:    http.StatusUnauthorized,
			body:      `{"error":"The key parameter is not provided"}`,
			isNetwork: true,
		},
		{
			name:     "Malformed body",
			status:   http.StatusOK,
			body:     `{"results": "nope"}`,
			isDecode: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body)) //nolint:errcheck
			})

			_, found, err := client.SearchMetadata(context.Background(), "Doom")
			rq.Error(err)
			rq.False(found)
			rq.Equal(tc.isNetwork, domain.IsNetworkError(err))
			rq.Equal(tc.isDecode, domain.IsDecodeError(err))
		})
	}
}

func TestGameDetails(t *testing.T) {
	rq := require.New(t)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/api/games/4200", r.URL.Path)

		w.Write([]byte(`{
			"id": 4200,
			"name": "Portal 2",
			"description_raw": "Portal 2 is a first-person puzzle game.",
			"background_image": "https://media.rawg.io/portal2.jpg",
			"website": "http://www.thinkwithportals.com/",
			"developers": [{"id": 1612, "name": "Valve Software"}],
			"genres": [{"name": "Puzzle"}],
			"platforms": [{"platform": {"name": "PC"}}]
		}`)) //nolint:errcheck
	})

	meta, found, err := client.GameDetails(context.Background(), 4200)
	rq.NoError(err)
	rq.True(found)
	rq.Equal(entity.GameMetadata{
		RawgID:      4200,
		Name:        "Portal 2",
		Genres:      []string{"Puzzle"},
		Platforms:   []string{"PC"},
		ImageURL:    "https://media.rawg.io/portal2.jpg",
		Description: "Portal 2 is a first-person puzzle game.",
		Developers:  []string{"Valve Software"},
		Website:     "http://www.thinkwithportals.com/",
	}, meta)
}

func TestGameDetailsNotFound(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{
			name:   "Detail body with 404",
			status: http.StatusNotFound,
		},
		{
			name:   "Detail body with 200",
			status: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"detail":"Not found."}`)) //nolint:errcheck
			})

			meta, found, err := client.GameDetails(context.Background(), 1)
			rq.NoError(err)
			rq.False(found)
			rq.Equal(entity.GameMetadata{}, meta)
		})
	}
}

func TestGameDetailsServerError(t *testing.T) {
	rq := require.New(t)

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, found, err := client.GameDetails(context.Background(), 1)
	rq.Error(err)
	rq.False(found)
	rq.True(domain.IsNetworkError(err))
}

func TestClientSendsAPIKey(t *testing.T) {
	rq := require.New(t)

	var gotKey string

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"results":[]}`)) //nolint:errcheck
	}))
	defer httpServer.Close()

	client := rawg.NewClient(
		config.Rawg{BaseURL: httpServer.URL},
		&http.Client{Transport: httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "key", "secret")},
	)

	_, _, err := client.SearchMetadata(context.Background(), "Doom")
	rq.NoError(err)
	rq.Equal("secret", gotKey)
}
