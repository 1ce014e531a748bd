package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRoundTripper counts outgoing requests by upstream name and status
// class ("2xx", "4xx", ...). Transport failures are counted as "error".
type MetricsRoundTripper struct {
	next     http.RoundTripper
	upstream string
	requests *prometheus.CounterVec
}

func NewMetricsRoundTripper(
	next http.RoundTripper,
	upstream string,
	requests *prometheus.CounterVec,
) MetricsRoundTripper {
	return MetricsRoundTripper{
		next:     next,
		upstream: upstream,
		requests: requests,
	}
}

func (rt MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		rt.requests.WithLabelValues(rt.upstream, "error").Inc()

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	rt.requests.WithLabelValues(rt.upstream, statusClass(resp.StatusCode)).Inc()

	return resp, nil
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx" //nolint:mnd
}
