package gateway

import (
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_shop/internal/httpx"
)

const (
	statusHealthy     = "healthy"
	statusDegraded    = "degraded"
	statusUnreachable = "unreachable"
)

type aggregateHealthDTO struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Upstreams map[string]string `json:"upstreams"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthChecker probes every upstream's /health endpoint.
type HealthChecker struct {
	upstreams []Upstream
	client    *http.Client
}

func NewHealthChecker(upstreams []Upstream, timeout time.Duration) *HealthChecker {
	return &HealthChecker{
		upstreams: upstreams,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Handler serves GET /health. Upstreams are probed concurrently; one
// slow backend must not serialize the whole report.
func (h *HealthChecker) Handler(w http.ResponseWriter, r *http.Request) {
	results := make(map[string]string, len(h.upstreams))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, up := range h.upstreams {
		wg.Add(1)
		go func(up Upstream) {
			defer wg.Done()
			status := h.probe(r, up)
			mu.Lock()
			results[up.Name] = status
			mu.Unlock()
		}(up)
	}
	wg.Wait()

	overall := statusHealthy
	for _, status := range results {
		if status != statusHealthy {
			overall = statusDegraded
			break
		}
	}

	httpx.RespondJSON(w, http.StatusOK, aggregateHealthDTO{
		Status:    overall,
		Service:   "api-gateway",
		Upstreams: results,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthChecker) probe(r *http.Request, up Upstream) string {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, up.BaseURL+"/health", nil)
	if err != nil {
		return statusUnreachable
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return statusUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusDegraded
	}
	return statusHealthy
}
