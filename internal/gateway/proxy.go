package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/httpx"
)

// Upstream is one proxied backend service.
type Upstream struct {
	Name    string
	Prefix  string
	BaseURL string
}

// NewProxy returns a reverse proxy for a single upstream. Upstream
// responses pass through untouched; only a transport failure is turned
// into a 502 so the caller can tell "backend said no" from "backend is
// gone".
func NewProxy(upstream Upstream, log *zap.SugaredLogger) (http.Handler, error) {
	target, err := url.Parse(strings.TrimRight(upstream.BaseURL, "/"))
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.Transport = newBreakerTransport(upstream.Name, otelhttp.NewTransport(http.DefaultTransport))
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warnw("upstream unreachable",
			"upstream", upstream.Name,
			"path", r.URL.Path,
			"error", err,
		)
		httpx.RespondError(w, http.StatusBadGateway, upstream.Name+" unavailable")
	}
	return proxy, nil
}
