package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fjod/go_shop/internal/config"
	"github.com/fjod/go_shop/internal/gateway"
	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/telemetry"
	"github.com/fjod/go_shop/pkg/logger"
)

const serviceName = "api-gateway"

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

	r, err := gateway.NewRouter(gateway.RouterConfig{
		Upstreams: []gateway.Upstream{
			{Name: "user-service", Prefix: "/users", BaseURL: cfg.User.BaseURL},
			{Name: "product-service", Prefix: "/products", BaseURL: cfg.Product.BaseURL},
			{Name: "order-service", Prefix: "/orders", BaseURL: cfg.Order.BaseURL},
			{Name: "payment-service", Prefix: "/payments", BaseURL: cfg.Payment.BaseURL},
			{Name: "notification-service", Prefix: "/notifications", BaseURL: cfg.Notification.BaseURL},
		},
		RateLimit:    cfg.Gateway.RateLimit,
		ProbeTimeout: cfg.Client.Timeout,
	}, log)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	r.Handle("/metrics", promhttp.Handler())

	if err := httpx.Serve(httpx.ServerConfig{
		Addr:            cfg.Gateway.Addr,
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
