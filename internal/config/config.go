// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	home, _ := os.UserHomeDir()

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.behind_tls", false)
	v.SetDefault("server.shutdown_timeout", "10s")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(home, ".themekit", "themekit.db"))

	// Theme defaults, applied when no settings have been saved yet
	v.SetDefault("theme.default_mode", "light")
	v.SetDefault("theme.default_preset", "default")
	v.SetDefault("theme.font_family", "'Open Sans Variable', sans-serif")
	v.SetDefault("theme.font_size", 14)

	// Auth defaults. An empty secret leaves settings writes unprotected.
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry_hours", 8)

	// Rate limiting for settings writes
	v.SetDefault("ratelimit.writes_per_minute", 30)

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
}

// DefaultPath returns the config file location: $THEMEKIT_CONFIG when set,
// otherwise ~/.themekit/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("THEMEKIT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".themekit", "config.yaml")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
