package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/httpx/req"
)

type searchRequest struct {
	Title    string   `json:"title"    validate:"required"`
	MaxPrice *float64 `json:"maxPrice" validate:"omitempty,gte=0,lte=10"`
}

func TestRead(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		wantErr     bool
		description string
	}{
		{name: "Valid", body: `{"title":"doom","maxPrice":5}`},
		{name: "Malformed JSON", body: `{"title":`, wantErr: true, description: "Invalid JSON"},
		{name: "Missing title", body: `{"maxPrice":5}`, wantErr: true},
		{name: "Price out of range", body: `{"title":"doom","maxPrice":11}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/v1/deals/search", strings.NewReader(tc.body))

			var dest searchRequest

			err := req.Read(r, &dest)
			if !tc.wantErr {
				rq.NoError(err)
				rq.Equal("doom", dest.Title)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))

			if tc.description != "" {
				rq.Equal(tc.description, failure.Description(err))
			}
		})
	}
}
