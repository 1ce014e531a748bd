package probe

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// ReadinessFunc reports whether the service can answer requests yet.
type ReadinessFunc func() bool

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Handler answers /healthz always and /ready once ready reports true. Both
// write the build info as the body.
type Handler struct {
	state []byte
	ready ReadinessFunc
}

// NewHandler returns a probe handler. A nil ready func means always ready.
func NewHandler(options Options, ready ReadinessFunc) Handler {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	if ready == nil {
		ready = func() bool { return true }
	}

	return Handler{
		state: stateJSON,
		ready: ready,
	}
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/healthz":
		h.writeState(w)
	case "/ready":
		if !h.ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		h.writeState(w)
	default:
		http.NotFound(w, r)
	}
}

func (h Handler) writeState(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.state) //nolint:errcheck
}
