// Package config holds the small, independently-loadable configuration
// structs for riftd, following the same shape across components: a plain
// struct with yaml tags, a DefaultConfig constructor, and environment
// overrides applied after the file is loaded.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ListenConfig holds the broker and admin listen addresses.
type ListenConfig struct {
	BrokerAddr string `yaml:"broker_addr"` // gRPC broker services (PubSub/Topic/Subscription)
	AdminAddr  string `yaml:"admin_addr"`  // HTTP /metrics (Prometheus) and /healthz
}

// BrokerConfig holds message-broker runtime settings.
type BrokerConfig struct {
	DefaultLeaseTTL         time.Duration `yaml:"default_lease_ttl"`          // default: 30s
	LeaseSweepInterval      time.Duration `yaml:"lease_sweep_interval"`       // fixed sweep period; a lease expires at the first sweep at or after its deadline
	MaxDeliveryBufferPerSub int           `yaml:"max_delivery_buffer_per_sub"` // backlog warning threshold, 0 = unbounded
}

// TracingConfig holds OpenTelemetry tracing settings.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter"`     // otlp-http, stdout (stdout discards spans)
	Endpoint    string  `yaml:"endpoint"`     // localhost:4318
	ServiceName string  `yaml:"service_name"` // rift
	SampleRate  float64 `yaml:"sample_rate"`  // 1.0
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled          bool      `yaml:"enabled"`
	Namespace        string    `yaml:"namespace"` // rift
	HistogramBuckets []float64 `yaml:"histogram_buckets"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`  // debug, info, warn, error
	Format         string `yaml:"format"` // text, json
	IncludeTraceID bool   `yaml:"include_trace_id"`
}

// ObservabilityConfig groups the ambient observability settings.
type ObservabilityConfig struct {
	Tracing TracingConfig `yaml:"tracing"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig reserves the on-disk data directory for a future durable
// Message Store backend; the in-memory engine does not use it today.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// Config is the root configuration loaded by riftd.
type Config struct {
	Listen        ListenConfig        `yaml:"listen"`
	Broker        BrokerConfig        `yaml:"broker"`
	Observability ObservabilityConfig `yaml:"observability"`
	Data          DataConfig          `yaml:"data"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen: ListenConfig{
			BrokerAddr: ":7770",
			AdminAddr:  ":7771",
		},
		Broker: BrokerConfig{
			DefaultLeaseTTL:         30 * time.Second,
			LeaseSweepInterval:      time.Second,
			MaxDeliveryBufferPerSub: 0,
		},
		Observability: ObservabilityConfig{
			Tracing: TracingConfig{
				Enabled:     false,
				Exporter:    "otlp-http",
				Endpoint:    "localhost:4318",
				ServiceName: "rift",
				SampleRate:  1.0,
			},
			Metrics: MetricsConfig{
				Enabled:          true,
				Namespace:        "rift",
				HistogramBuckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			Logging: LoggingConfig{
				Level:          "info",
				Format:         "text",
				IncludeTraceID: true,
			},
		},
		Data: DataConfig{
			Dir: "",
		},
	}
}

// LoadFromFile loads configuration from a YAML file, layered over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv applies RIFT_* environment variable overrides to cfg.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("RIFT_BROKER_ADDR"); v != "" {
		cfg.Listen.BrokerAddr = v
	}
	if v := os.Getenv("RIFT_ADMIN_ADDR"); v != "" {
		cfg.Listen.AdminAddr = v
	}
	if v := os.Getenv("RIFT_LOG_LEVEL"); v != "" {
		cfg.Observability.Logging.Level = v
	}
	if v := os.Getenv("RIFT_LOG_FORMAT"); v != "" {
		cfg.Observability.Logging.Format = v
	}
	if v := os.Getenv("RIFT_DEFAULT_LEASE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Broker.DefaultLeaseTTL = d
		}
	}
	if v := os.Getenv("RIFT_LEASE_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Broker.LeaseSweepInterval = d
		}
	}
	if v := os.Getenv("RIFT_TRACING_ENABLED"); v != "" {
		cfg.Observability.Tracing.Enabled = parseBool(v)
	}
	if v := os.Getenv("RIFT_TRACING_ENDPOINT"); v != "" {
		cfg.Observability.Tracing.Endpoint = v
	}
	if v := os.Getenv("RIFT_TRACING_EXPORTER"); v != "" {
		cfg.Observability.Tracing.Exporter = v
	}
	if v := os.Getenv("RIFT_TRACING_SAMPLE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Observability.Tracing.SampleRate = f
		}
	}
	if v := os.Getenv("RIFT_METRICS_ENABLED"); v != "" {
		cfg.Observability.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("RIFT_METRICS_NAMESPACE"); v != "" {
		cfg.Observability.Metrics.Namespace = v
	}
	if v := os.Getenv("RIFT_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes"
}
