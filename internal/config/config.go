package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Log     LogConfig
	Metrics MetricsConfig
	Swagger SwaggerConfig
}

type AppConfig struct {
	Name    string
	Version string
	Env     string
}

type ServerConfig struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	CORSAllowOrigins  string
	EnableStackTraces bool
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type SwaggerConfig struct {
	Enabled bool
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Name:    getEnvOrDefault("APP_NAME", "Movies API"),
			Version: getEnvOrDefault("APP_VERSION", "1.0.0"),
			Env:     getEnvOrDefault("GO_ENV", "dev"),
		},
		Server: ServerConfig{
			Port:              getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:       getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getDurationOrDefault("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:   getDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			CORSAllowOrigins:  getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"),
			EnableStackTraces: getBoolOrDefault("SERVER_STACK_TRACES", true),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolOrDefault("METRICS_ENABLED", true),
			Path:    getEnvOrDefault("METRICS_PATH", "/metrics"),
		},
		Swagger: SwaggerConfig{
			Enabled: getBoolOrDefault("SWAGGER_ENABLED", true),
		},
	}
}

// IsDevelopment reports whether GO_ENV selects a development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "dev" || c.App.Env == "development"
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("METRICS_PATH is required when metrics are enabled")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
