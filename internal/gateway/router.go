package gateway

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/httpx"
)

type RouterConfig struct {
	Upstreams    []Upstream
	RateLimit    int
	ProbeTimeout time.Duration
}

// NewRouter assembles the gateway: rate limiting, then a reverse proxy
// per upstream prefix, plus the aggregate health endpoint.
func NewRouter(cfg RouterConfig, log *zap.SugaredLogger) (chi.Router, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpx.RequestLogger(log))
	r.Use(httpx.Metrics("api-gateway"))
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))

	health := NewHealthChecker(cfg.Upstreams, cfg.ProbeTimeout)
	r.Get("/health", health.Handler)

	for _, up := range cfg.Upstreams {
		proxy, err := NewProxy(up, log)
		if err != nil {
			return nil, err
		}
		r.Handle(up.Prefix, proxy)
		r.Handle(up.Prefix+"/*", proxy)
	}
	return r, nil
}
