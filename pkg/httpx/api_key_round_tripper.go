package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper adds an API key query parameter to every outgoing
// request. The original request is left untouched.
type APIKeyRoundTripper struct {
	next  http.RoundTripper
	param string
	key   string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	param string,
	key string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:  next,
		param: param,
		key:   key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.key == "" {
		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	clone := req.Clone(req.Context())

	query := clone.URL.Query()
	query.Set(rt.param, rt.key)
	clone.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(clone)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
