package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fjod/go_shop/internal/config"
	"github.com/fjod/go_shop/internal/httpx"
	producthttp "github.com/fjod/go_shop/internal/product/http"
	"github.com/fjod/go_shop/internal/product/store"
	"github.com/fjod/go_shop/internal/telemetry"
	"github.com/fjod/go_shop/pkg/logger"
)

const serviceName = "product-service"

func main() {
	log := logger.New(serviceName)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(configDir())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdown, err := telemetry.Init(context.Background(), serviceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to init telemetry: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(httpx.RequestLogger(log))
	r.Use(httpx.Metrics(serviceName))

	r.Get("/health", httpx.HealthHandler(serviceName, "v1"))
	r.Handle("/metrics", promhttp.Handler())

	handler := producthttp.NewProductHandler(store.NewSeededStore(), log)
	handler.Routes(r)

	if err := httpx.Serve(httpx.ServerConfig{
		Addr:            cfg.Product.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, serviceName, r, log); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func configDir() string {
	if dir := os.Getenv("GOSHOP_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}
