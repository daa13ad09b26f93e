package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themekit/internal/config"
	"github.com/thatcatcamp/themekit/internal/db"
	"github.com/thatcatcamp/themekit/internal/logging"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// initConfig initializes the configuration system
func initConfig() error {
	return config.InitConfig(config.DefaultPath())
}

// initSystemDB initializes the settings database connection
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// newLogger builds the logger from the log.* config keys.
func newLogger() zerolog.Logger {
	log, err := logging.New(logging.Options{
		Level:         config.GetString("log.level"),
		HumanReadable: config.GetBool("log.human"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info level\n", err)
		log, _ = logging.New(logging.Options{HumanReadable: config.GetBool("log.human")})
	}
	return log
}

// themeDefaults returns the settings used before anything has been saved,
// taken from the theme.* config keys. Invalid config falls back to the
// factory defaults.
func themeDefaults(log zerolog.Logger) settings.Settings {
	d := settings.Defaults()
	if m, err := themes.ParseMode(config.GetString("theme.default_mode")); err == nil {
		d.ThemeMode = m
	}
	if p, err := themes.ParsePreset(config.GetString("theme.default_preset")); err == nil {
		d.ThemeColorPresets = p
	}
	if family := config.GetString("theme.font_family"); family != "" {
		d.FontFamily = family
	}
	if size := config.GetInt("theme.font_size"); size != 0 {
		d.FontSize = size
	}
	if err := settings.Validate(d); err != nil {
		log.Warn().Err(err).Msg("invalid theme defaults in config, using built-in defaults")
		return settings.Defaults()
	}
	return d
}

// openStore opens the database and loads the persisted settings.
func openStore(ctx context.Context, log zerolog.Logger) (*settings.Store, *settings.GormBackend, error) {
	if err := initSystemDB(); err != nil {
		return nil, nil, err
	}
	backend := settings.NewGormBackend(db.GetDB())
	store, err := settings.NewStore(ctx, backend, themeDefaults(log), log)
	if err != nil {
		return nil, nil, err
	}
	return store, backend, nil
}

// loadRegistry builds every theme, logging any colour diagnostics.
func loadRegistry(log zerolog.Logger) (*themes.Registry, error) {
	reg, err := themes.NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("build themes: %w", err)
	}
	return reg, nil
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
