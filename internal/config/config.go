// Package config provides application configuration management with support
// for environment variables, command-line flags, and .env files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Data    DataConfig
	Content ContentConfig
	Server  ServerConfig
	Auth    AuthConfig
	History HistoryConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds server-side storage configuration. The session store,
// the auth key, and backups all live under BasePath.
type DataConfig struct {
	BasePath string
}

// ContentConfig holds content catalog configuration.
type ContentConfig struct {
	// CatalogPath points at a catalog JSON file. Empty means the embedded
	// catalog.
	CatalogPath string
	// Watch reloads the catalog when the file changes on disk.
	Watch bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name         string
	Port         string        // default 8080
	ReadTimeout  time.Duration // default 15s
	WriteTimeout time.Duration // default 15s
	IdleTimeout  time.Duration // default 60s
}

// AuthConfig holds session token configuration.
type AuthConfig struct {
	// Hex-encoded PASETO v4 symmetric key for session tokens (32 bytes).
	// Set by auth.LoadOrGenerateKey, never by flag or env.
	SessionTokenKey string
	// SessionTokenDuration bounds how long an idle client keeps its
	// session, e.g. 720h.
	SessionTokenDuration time.Duration
	// SessionTTL is how long an unseen session survives pruning.
	SessionTTL time.Duration
}

// HistoryConfig holds day-in-history upstream configuration.
type HistoryConfig struct {
	// BaseURL overrides the Wikimedia feed endpoint, mainly for tests.
	BaseURL string
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Base path for server data")
	catalogPath := flag.String("catalog-path", "", "Path to a catalog JSON file (default: embedded catalog)")
	catalogWatch := flag.String("catalog-watch", "", "Reload the catalog on file change (default: true)")
	serverName := flag.String("server-name", "", "Name for the server")
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	sessionTokenDuration := flag.String("session-token-duration", "", "Session token lifetime (e.g., 720h)")
	sessionTTL := flag.String("session-ttl", "", "Idle session retention (e.g., 720h)")
	historyBaseURL := flag.String("history-base-url", "", "Override for the day-in-history upstream URL")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env if present. Real environment variables win over file
	// entries, which godotenv guarantees by never overwriting.
	_ = godotenv.Load(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Content: ContentConfig{
			CatalogPath: getConfigValue(*catalogPath, "CATALOG_PATH", ""),
			Watch:       getBoolConfigValue(*catalogWatch, "CATALOG_WATCH", true),
		},
		Server: ServerConfig{
			Name: getConfigValue(*serverName, "SERVER_NAME", "WriterMorphosis Server"),
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		History: HistoryConfig{
			BaseURL: getConfigValue(*historyBaseURL, "HISTORY_BASE_URL", ""),
		},
	}

	var err error
	if cfg.Auth.SessionTokenDuration, err = parseDurationValue(*sessionTokenDuration, "SESSION_TOKEN_DURATION", "720h"); err != nil {
		return nil, fmt.Errorf("invalid session token duration: %w", err)
	}
	if cfg.Auth.SessionTTL, err = parseDurationValue(*sessionTTL, "SESSION_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}
	if err := cfg.expandCatalogPath(); err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.BasePath == "" {
		return errors.New("data base path cannot be empty after expansion")
	}

	// CatalogPath can be empty; the embedded catalog is the default.

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDataPath expands ~ and makes the path absolute. Empty defaults to
// ~/WriterMorphosis/data.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "WriterMorphosis", "data")

	expanded, err := expandPath(c.Data.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Data.BasePath = expanded
	return nil
}

// expandCatalogPath expands ~ and makes the path absolute. Empty stays
// empty: that selects the embedded catalog.
func (c *Config) expandCatalogPath() error {
	if c.Content.CatalogPath == "" {
		return nil
	}

	expanded, err := expandPath(c.Content.CatalogPath, "")
	if err != nil {
		return err
	}
	c.Content.CatalogPath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// parseDurationValue resolves a duration from flag, env var, or default.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	strValue := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strValue, err)
	}
	return d, nil
}
