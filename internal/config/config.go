package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

type Config struct {
	Server  ServerConfig    `yaml:"server"`
	Hermes  HermesConfig    `yaml:"hermes"`
	Project landbos.Project `yaml:"project"`
	Logging LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	MetricsPort        int `yaml:"metrics_port"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds the configuration from defaults, the YAML file at path (if
// any) and LANDBOS_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Project: landbos.DefaultProject(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LANDBOS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("LANDBOS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("LANDBOS_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v, ok := os.LookupEnv("LANDBOS_HERMES_URL"); ok {
		// an explicitly empty value disables event publishing
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("LANDBOS_TRANSPORT_DISTANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Project.TransportDistance = f
		}
	}
	if v := os.Getenv("LANDBOS_CONTINGENCY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Project.Contingency = f
		}
	}
	if v := os.Getenv("LANDBOS_DEVELOPMENT_FEE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Project.DevelopmentFee = f
		}
	}
	if v := os.Getenv("LANDBOS_PERFORMANCE_BOND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Project.PerformanceBond = b
		}
	}
	if v := os.Getenv("LANDBOS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LANDBOS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
