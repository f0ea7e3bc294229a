package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/logger"
)

// Validate checks the loaded values, including the requirements of the
// selected store driver
func (c *Config) Validate() error {
	// Validate API key is set
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid LOG_LEVEL %q: expected debug, info, warn or error", c.LogLevel)
	}
	if !logger.IsFormat(c.LogFormat) {
		return fmt.Errorf("invalid LOG_FORMAT %q: expected %s or %s", c.LogFormat, logger.LogFormatText, logger.LogFormatJSON)
	}
	if c.SessionCacheSize <= 0 {
		return fmt.Errorf("SESSION_CACHE_SIZE must be positive, got %d", c.SessionCacheSize)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}

	switch c.StoreDriver {
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER=%s", StoreDriverSQLite)
		}
	case StoreDriverPostgres:
		var missing []string
		for name, v := range map[string]string{
			"DB_USER": c.DBUser,
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_NAME": c.DBName,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
		if c.DBMaxConns <= 0 {
			return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: expected %s or %s", c.StoreDriver, StoreDriverSQLite, StoreDriverPostgres)
	}
	return nil
}

// Warnings reports non-critical issues, like example values left in place
func (c *Config) Warnings() []string {
	var warnings []string

	// Check for potentially insecure default values
	if c.StoreDriver == StoreDriverPostgres && c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.StoreDriver == StoreDriverSQLite && strings.Contains(c.SQLitePath, ":memory:") {
		warnings = append(warnings, "SQLITE_PATH is in-memory - plant data will not survive a restart")
	}
	return warnings
}
