// Package config provides configuration management for the Gridiron Edge application.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	CFBD     CFBDConfig     `mapstructure:"cfbd" validate:"required"`
	OddsAPI  OddsAPIConfig  `mapstructure:"odds_api"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Parlay   ParlayConfig   `mapstructure:"parlay" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// CFBDConfig represents CollegeFootballData API configuration
type CFBDConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	BearerToken    string  `mapstructure:"bearer_token"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// OddsAPIConfig represents futures odds provider configuration. Optional;
// only the futures command needs it.
type OddsAPIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	MarketKey string `mapstructure:"market_key"`
}

// ModelConfig represents the spread-edge model parameters. All values are
// fixed configuration constants, not fitted estimates.
type ModelConfig struct {
	HomeField           float64 `mapstructure:"home_field" validate:"gte=0,lte=10"`
	PostseasonHomeField float64 `mapstructure:"postseason_home_field" validate:"gte=0,lte=10"`
	StdDev              float64 `mapstructure:"std_dev" validate:"required,gt=0"`
	EdgeThreshold       float64 `mapstructure:"edge_threshold" validate:"required,gt=0"`
	CoverProbThreshold  float64 `mapstructure:"cover_prob_threshold" validate:"required,gt=0,lt=1"`
	PreferredProvider   string  `mapstructure:"preferred_provider" validate:"required"`
	TopN                int     `mapstructure:"top_n" validate:"required,gt=0"`
	TierA               float64 `mapstructure:"tier_a" validate:"required,gt=0,lt=1"`
	TierB               float64 `mapstructure:"tier_b" validate:"required,gt=0,lt=1"`
	TierC               float64 `mapstructure:"tier_c" validate:"required,gt=0,lt=1"`
}

// ParlayConfig represents parlay enumeration configuration. Legs is supplied
// per invocation by the caller; this holds only the allowed bounds and the
// display cap.
type ParlayConfig struct {
	DefaultLegs int `mapstructure:"default_legs" validate:"required,gte=2,lte=6"`
	ShowTop     int `mapstructure:"show_top" validate:"required,gt=0"`
}

// CacheConfig represents the raw-snapshot cache configuration
type CacheConfig struct {
	Dir        string `mapstructure:"dir" validate:"required"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"required,gt=0"`
}

// DatabaseConfig represents database connection configuration. The snapshot
// store is optional; Enabled gates every database touch.
type DatabaseConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// RefreshConfig represents the cache-refresh daemon configuration
type RefreshConfig struct {
	RatingsCron          string `mapstructure:"ratings_cron"`
	LinesIntervalSeconds int    `mapstructure:"lines_interval_seconds" validate:"omitempty,gte=60"`
	HealthPort           string `mapstructure:"health_port"`
}

// TracingConfig represents AWS X-Ray tracing configuration
type TracingConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	DaemonAddr string `mapstructure:"daemon_addr"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the snapshot cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
