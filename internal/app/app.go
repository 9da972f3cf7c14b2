package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  zerolog.Logger
	DBPath  string
}

// NewApp initialize logger, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc, err := service.NewService(dbStore, cfg)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug().Str("db_path", dbPath).Msg("database ready")

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  log,
		DBPath:  dbPath,
	}, cleanup, nil
}

func NewLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Console {
		return logger.New(level), nil
	}
	return logger.NewWithWriter(os.Stderr, level), nil
}

// ResolveDBPath expands "~" and falls back to tally.db in the app data dir.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "tally.db"), nil
	}
	return ExpandPath(raw)
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
