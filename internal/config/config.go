package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Idempotency store backends.
const (
	StoreNone     = "none"
	StoreRedis    = "redis"
	StoreDynamoDB = "dynamodb"
)

// Config is the process configuration shared by both entry points.
// Gateway credentials are never part of it: they arrive with each request.
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Gateway     GatewayConfig
	Idempotency IdempotencyConfig
	Redis       RedisConfig
	DynamoDB    DynamoDBConfig
	Retry       RetryConfig
}

type ServerConfig struct {
	Port     int
	EdgePort int
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// MaxGatewayDeadline caps GATEWAY_DEADLINE so an answer is always written before the
// edge server's write timeout.
const MaxGatewayDeadline = 50 * time.Second

type GatewayConfig struct {
	APIURL   string
	Timeout  time.Duration // one attempt
	Deadline time.Duration // all attempts of one payment, backoff included
	Mock     bool
}

type IdempotencyConfig struct {
	Store string // none, redis, dynamodb
	TTL   time.Duration
	Table string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DynamoDBConfig struct {
	Region   string
	Endpoint string
}

type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Load reads configuration from an optional config.yaml and the environment.
// Priority (highest to lowest):
// 1. Environment variables (e.g. GATEWAY_TIMEOUT)
// 2. config.yaml in one of paths (default: ".", "/app")
// 3. Built-in defaults
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "/app"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:     v.GetInt("server_port"),
			EdgePort: v.GetInt("edge_port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Gateway: GatewayConfig{
			APIURL:   strings.TrimSpace(v.GetString("gateway_api_url")),
			Timeout:  v.GetDuration("gateway_timeout"),
			Deadline: v.GetDuration("gateway_deadline"),
			Mock:     parseFlag(v.GetString("payment_gateway_mock")),
		},
		Idempotency: IdempotencyConfig{
			Store: strings.ToLower(strings.TrimSpace(v.GetString("idempotency_store"))),
			TTL:   v.GetDuration("idempotency_ttl"),
			Table: v.GetString("idempotency_table"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		DynamoDB: DynamoDBConfig{
			Region:   v.GetString("aws_region"),
			Endpoint: v.GetString("dynamodb_endpoint"),
		},
		Retry: RetryConfig{
			MaxAttempts: v.GetInt("retry_max_attempts"),
			Backoff:     v.GetDuration("retry_backoff"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", 8080)
	v.SetDefault("edge_port", 8081)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("gateway_api_url", "")
	v.SetDefault("gateway_timeout", 30*time.Second)
	v.SetDefault("gateway_deadline", 35*time.Second)
	v.SetDefault("payment_gateway_mock", "")
	v.SetDefault("idempotency_store", StoreNone)
	v.SetDefault("idempotency_ttl", 24*time.Hour)
	v.SetDefault("idempotency_table", "payment_idempotency_keys")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("retry_max_attempts", 1)
	v.SetDefault("retry_backoff", 500*time.Millisecond)
}

// Validate checks values that would otherwise fail late, at the first payment.
func (c *Config) Validate() error {
	switch c.Idempotency.Store {
	case "":
		c.Idempotency.Store = StoreNone
	case StoreNone, StoreRedis, StoreDynamoDB:
	default:
		return fmt.Errorf("IDEMPOTENCY_STORE must be one of none, redis, dynamodb; got %q", c.Idempotency.Store)
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive; got %s", c.Gateway.Timeout)
	}
	if c.Gateway.Deadline <= 0 || c.Gateway.Deadline > MaxGatewayDeadline {
		return fmt.Errorf("GATEWAY_DEADLINE must be positive and at most %s; got %s", MaxGatewayDeadline, c.Gateway.Deadline)
	}
	if c.Retry.MaxAttempts < 1 {
		c.Retry.MaxAttempts = 1
	}
	if c.Retry.Backoff < 0 {
		return fmt.Errorf("RETRY_BACKOFF must not be negative; got %s", c.Retry.Backoff)
	}
	return nil
}

// parseFlag accepts the same spellings the mock switch always accepted.
func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
