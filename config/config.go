// Package config loads application configuration from environment
// variables, with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Registry persistence
	Registry RegistryConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// RegistryConfig holds persistence settings for the student roster.
//
// The roster limits (students, courses, study-plan items) are fixed
// domain constants, not configuration: they are part of the on-disk
// format contract. Only the file location is configurable.
type RegistryConfig struct {
	// DataFile is the path of the delimited roster file.
	// Relative paths resolve against the working directory.
	DataFile string
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	AddCaller bool
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first when present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	// Missing .env is fine - environment variables alone are enough.
	_ = godotenv.Load()

	cfg := &Config{
		App:           loadAppConfig(),
		Registry:      loadRegistryConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", "development"))

	return AppConfig{
		Name:        getEnv("APP_NAME", "student-registry"),
		Environment: env,
		Debug:       env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadRegistryConfig() RegistryConfig {
	return RegistryConfig{
		DataFile: getEnv("REGISTRY_DATA_FILE", "students.txt"),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		AddCaller: getEnvBool("LOG_ADD_CALLER", true),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Registry.DataFile) == "" {
		errs = append(errs, "REGISTRY_DATA_FILE must not be empty")
	}

	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
