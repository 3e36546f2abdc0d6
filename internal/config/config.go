package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Assistant AssistantConfig `mapstructure:"assistant"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

// AssistantConfig identifies the hosted assistant and bounds the run
// polling loop. The upstream run lifecycle is asynchronous, so generation
// and answer checking block on PollInterval ticks up to PollTimeout.
type AssistantConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	AssistantID  string        `mapstructure:"assistant_id"`
	PollInterval time.Duration `mapstructure:"poll_interval_seconds"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("PYLEARN")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("server.port", "PORT")

	// Assistant
	viper.BindEnv("assistant.base_url", "ASSISTANT_BASE_URL")
	viper.BindEnv("assistant.api_key", "OPENAI_API_KEY")
	viper.BindEnv("assistant.assistant_id", "ASSISTANT_ID")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Assistant.BaseURL == "" {
		cfg.Assistant.BaseURL = "https://api.openai.com/v1"
	}
	cfg.Assistant.PollInterval = cfg.Assistant.PollInterval * time.Second
	if cfg.Assistant.PollInterval <= 0 {
		cfg.Assistant.PollInterval = time.Second
	}
	cfg.Assistant.PollTimeout = cfg.Assistant.PollTimeout * time.Second
	if cfg.Assistant.PollTimeout <= 0 {
		cfg.Assistant.PollTimeout = 60 * time.Second
	}

	if cfg.Server.Mode == "release" && cfg.Assistant.APIKey == "" {
		return nil, fmt.Errorf("assistant API key must be set in release mode")
	}

	return &cfg, nil
}
