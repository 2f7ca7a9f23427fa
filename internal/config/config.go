// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StorageConfig holds the object store settings. Endpoint overrides the AWS
// default for R2-style providers.
type StorageConfig struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// Config represents the server configuration. Values come from an optional
// YAML file with environment variables taking precedence.
type Config struct {
	ListenAddr   string        `yaml:"listen_addr"`
	DatabaseURL  string        `yaml:"database_url"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	JWTSecret    string        `yaml:"jwt_secret"`
	AMQPURL      string        `yaml:"amqp_url"`
	Storage      StorageConfig `yaml:"storage"`

	// Requests per minute allowed per client before throttling
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

// Default returns the baseline configuration before file and env overrides.
func Default() *Config {
	return &Config{
		ListenAddr:         ":8080",
		RateLimitPerMinute: 120,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// given), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides config fields from environment variables.
func (c *Config) applyEnv() {
	setString(&c.ListenAddr, "LISTEN_ADDR")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.AMQPURL, "AMQP_URL")
	setString(&c.Storage.Bucket, "STORAGE_BUCKET")
	setString(&c.Storage.Region, "STORAGE_REGION")
	setString(&c.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&c.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&c.Storage.Endpoint, "STORAGE_ENDPOINT")

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimitPerMinute = n
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that everything the server cannot run without is set.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database_url is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config error: jwt_secret is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: gemini_api_key is required")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("config error: rate_limit_per_minute must be positive")
	}
	return nil
}
