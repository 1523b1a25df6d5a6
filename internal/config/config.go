package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Failure policies for a multi-organization load
const (
	FailurePolicyFailFast = "fail_fast"
	FailurePolicyPartial  = "partial"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	GitHub   GitHubConfig
	Listing  ListingConfig
	Content  ContentConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// GitHubConfig holds the upstream repository API configuration
type GitHubConfig struct {
	BaseURL string
	// Token is optional; requests are unauthenticated when empty
	Token   string
	Orgs    []string
	PerPage int
	Timeout time.Duration
}

// ListingConfig holds repository listing configuration
type ListingConfig struct {
	PageSize      int
	FailurePolicy string
}

// ContentConfig holds blog content configuration
type ContentConfig struct {
	PostsDir string
}

// DatabaseConfig holds database configuration. An empty DSN keeps load cycle
// diagnostics in memory.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	MaxConns int
	MinConns int
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	config := FromEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv builds a configuration from the current environment without validating it
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		GitHub: GitHubConfig{
			BaseURL: getEnv("GITHUB_BASE_URL", "https://api.github.com/"),
			Token:   getEnv("GITHUB_TOKEN", ""),
			Orgs:    getEnvAsSlice("GITHUB_ORGS", ",", []string{"Agora-Lab-AI", "kyegomez", "The-Swarm-Corporation"}),
			PerPage: getEnvAsInt("GITHUB_PER_PAGE", 100),
			Timeout: time.Duration(getEnvAsInt("GITHUB_TIMEOUT", 30)) * time.Second,
		},
		Listing: ListingConfig{
			PageSize:      getEnvAsInt("LISTING_PAGE_SIZE", 6),
			FailurePolicy: strings.ToLower(getEnv("LISTING_FAILURE_POLICY", FailurePolicyFailFast)),
		},
		Content: ContentConfig{
			PostsDir: getEnv("CONTENT_POSTS_DIR", "./content/posts"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", ",", []string{"*"}),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.GitHub.Orgs) == 0 {
		return fmt.Errorf("GITHUB_ORGS must list at least one organization")
	}
	if !strings.HasPrefix(c.GitHub.BaseURL, "http://") && !strings.HasPrefix(c.GitHub.BaseURL, "https://") {
		return fmt.Errorf("GITHUB_BASE_URL must be an HTTP(S) URL")
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("GITHUB_PER_PAGE must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("GITHUB_TIMEOUT must be positive")
	}
	if c.Listing.PageSize < 1 {
		return fmt.Errorf("LISTING_PAGE_SIZE must be positive, got %d", c.Listing.PageSize)
	}
	switch c.Listing.FailurePolicy {
	case FailurePolicyFailFast, FailurePolicyPartial:
	default:
		return fmt.Errorf("LISTING_FAILURE_POLICY must be %q or %q, got %q",
			FailurePolicyFailFast, FailurePolicyPartial, c.Listing.FailurePolicy)
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsSlice splits an environment variable, dropping blank entries
func getEnvAsSlice(key, separator string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, separator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
