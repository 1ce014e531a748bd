// Package upstream holds the request plumbing shared by the API clients: one
// GET per call, no retries, failures mapped onto the domain error taxonomy.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"gamedeals/internal/domain"
)

//nolint:gochecknoglobals
var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New(validator.WithRequiredStructEnabled())
)

const userAgent = "gamedeals/1.0"

type Response struct {
	StatusCode int
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Get issues a single GET. Only transport failures are errors; the caller
// decides what a status code means.
func Get(ctx context.Context, client *http.Client, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Response{}, domain.NewNetworkError(err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Response{}, domain.NewNetworkError(err, "request failed")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, domain.NewNetworkError(err, "read body")
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// GetJSON issues a GET, requires a 2xx status and decodes the body into dest.
func GetJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	resp, err := Get(ctx, client, url)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return UnexpectedStatus(resp)
	}

	return Decode(resp.Body, dest)
}

func UnexpectedStatus(resp Response) error {
	return domain.NewNetworkError(
		fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		"upstream answered with an error",
	)
}

// Decode unmarshals body into dest.
func Decode(body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return domain.NewDecodeError(err, "malformed body")
	}

	return nil
}

// Validate checks a decoded struct against its `validate` tags. A missing
// required field is a decode failure of the whole response.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return domain.NewDecodeError(err, "missing required field")
	}

	return nil
}

// HasKey reports whether body is a JSON object with the given top-level key.
func HasKey(body []byte, key string) bool {
	return json.Get(body, key).ValueType() != jsoniter.InvalidValue
}
