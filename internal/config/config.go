package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Service holds the listen address of one service plus the base URL the
// other services (and the gateway) use to reach it.
type Service struct {
	Addr    string `koanf:"addr"`
	BaseURL string `koanf:"base_url"`
}

type Config struct {
	Telemetry struct {
		OTLPEndpoint string `koanf:"otlp_endpoint"`
	} `koanf:"telemetry"`

	HTTP struct {
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		IdleTimeout     time.Duration `koanf:"idle_timeout"`
		RequestTimeout  time.Duration `koanf:"request_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	// Client is the timeout applied to every inter-service call. There are
	// no retries anywhere; a failed call is handled by the caller's branch
	// logic instead.
	Client struct {
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"client"`

	Gateway struct {
		Addr      string `koanf:"addr"`
		RateLimit int    `koanf:"rate_limit"`
	} `koanf:"gateway"`

	User    Service `koanf:"user"`
	Product Service `koanf:"product"`
	Order   Service `koanf:"order"`

	Payment struct {
		Service     `koanf:",squash"`
		SuccessRate float64 `koanf:"success_rate"`
	} `koanf:"payment"`

	Notification Service `koanf:"notification"`
}

// Load reads <dir>/base.yaml, overlays an optional <dir>/local.yaml and
// finally GOSHOP_-prefixed environment variables (nested keys separated
// with __, e.g. GOSHOP_PAYMENT__SUCCESS_RATE=0.5).
func Load(dir string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", dir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base config: %w", err)
	}

	// Optional local override, ignored when missing.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/local.yaml", dir)), yaml.Parser())

	if err := k.Load(env.Provider("GOSHOP_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "GOSHOP_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Payment.SuccessRate < 0 || c.Payment.SuccessRate > 1 {
		return fmt.Errorf("payment.success_rate must be within [0, 1], got %v", c.Payment.SuccessRate)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be positive")
	}
	return nil
}
