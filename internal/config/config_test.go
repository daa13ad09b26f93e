package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", value)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "9090")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "9090" {
		t.Errorf("Expected http_port to be 9090, got %s", value)
	}
}

func TestThemeDefaults(t *testing.T) {
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	if got := GetString("theme.default_mode"); got != "light" {
		t.Errorf("Expected default mode light, got %s", got)
	}
	if got := GetString("theme.default_preset"); got != "default" {
		t.Errorf("Expected default preset default, got %s", got)
	}
	if got := GetInt("theme.font_size"); got != 14 {
		t.Errorf("Expected default font size 14, got %d", got)
	}
	if got := GetInt("ratelimit.writes_per_minute"); got != 30 {
		t.Errorf("Expected 30 writes per minute, got %d", got)
	}
	if !GetBool("log.human") {
		t.Error("Expected human readable logs by default")
	}
}

func TestSetPersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	InitConfig(configPath)

	if err := Set("theme.default_preset", "cyan"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Reload from disk
	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if got := GetString("theme.default_preset"); got != "cyan" {
		t.Errorf("Expected persisted preset cyan, got %s", got)
	}
	if _, ok := GetAll()["theme"]; !ok {
		t.Error("GetAll missing theme section")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("THEMEKIT_CONFIG", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("Expected env override, got %s", got)
	}

	t.Setenv("THEMEKIT_CONFIG", "")
	if got := DefaultPath(); filepath.Base(got) != "config.yaml" {
		t.Errorf("Expected config.yaml default, got %s", got)
	}
}
