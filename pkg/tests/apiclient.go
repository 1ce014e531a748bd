package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls the JSON API in end-to-end tests. A 2xx body is decoded
// into dest, anything else into errDest. Either may be nil.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logf       func(format string, args ...any)
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logf:       log.Printf,
	}
}

// WithLogf routes the request/response dumps, usually to t.Logf.
func (a APIClient) WithLogf(logf func(format string, args ...any)) APIClient {
	a.logf = logf
	return a
}

func (a APIClient) Get(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodGet, endpoint, headers, nil, dest, errDest)
}

// Post sends request encoded as JSON.
func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.Do(ctx, http.MethodPost, endpoint, headers, b, dest, errDest)
}

// PostJSON sends requestJSON as is, so malformed bodies can be tested.
func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.Do(ctx, http.MethodPost, endpoint, headers, []byte(requestJSON), dest, errDest)
}

// Do sends body with a JSON content type unless headers set another one. The
// returned response body is already drained and closed.
func (a APIClient) Do(
	ctx context.Context,
	method string,
	endpoint string,
	headers http.Header,
	body []byte,
	dest any,
	errDest any,
) (*http.Response, error) {
	var payload io.Reader = http.NoBody
	if body != nil {
		payload = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	a.logf("request: %s %s %s", method, req.URL, body)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.logf("response: %s", dump)
	}

	target := errDest
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		target = dest
	}

	if target == nil {
		return resp, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	return resp, nil
}
