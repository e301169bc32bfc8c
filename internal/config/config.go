// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Upstream   UpstreamConfig   `mapstructure:"upstream"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Polling    PollingConfig    `mapstructure:"polling"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// UpstreamConfig describes the external dispatch service this console polls.
type UpstreamConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type RedisConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	SnapshotTTL int    `mapstructure:"snapshot_ttl"`
}

type PollingConfig struct {
	SessionIntervalSeconds  int `mapstructure:"session_interval_seconds"`
	DispatchIntervalSeconds int `mapstructure:"dispatch_interval_seconds"`
}

type SessionsConfig struct {
	MaxSessions int `mapstructure:"max_sessions"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("upstream.base_url", "http://localhost:3001")
	viper.SetDefault("upstream.timeout", 15)
	viper.SetDefault("upstream.circuit_breaker.max_requests", 3)
	viper.SetDefault("upstream.circuit_breaker.interval", 60)
	viper.SetDefault("upstream.circuit_breaker.timeout", 60)
	viper.SetDefault("upstream.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("upstream.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.snapshot_ttl", 300)
	viper.SetDefault("polling.session_interval_seconds", 3)
	viper.SetDefault("polling.dispatch_interval_seconds", 5)
	viper.SetDefault("sessions.max_sessions", 2)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// SessionPollInterval returns the session status polling cadence.
func (p *PollingConfig) SessionPollInterval() time.Duration {
	return time.Duration(p.SessionIntervalSeconds) * time.Second
}

// DispatchPollInterval returns the dispatch view refresh cadence.
func (p *PollingConfig) DispatchPollInterval() time.Duration {
	return time.Duration(p.DispatchIntervalSeconds) * time.Second
}
