package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"caixa/internal/config"
	"caixa/internal/ledger"
	"caixa/internal/service"
	"caixa/internal/store"
)

type App struct {
	Service *service.Service
	Ledger  *ledger.Ledger
	Store   store.Repository
}

// NewApp opens the database, loads the persisted ledger and wires the
// services. The returned cleanup closes the store.
func NewApp(cfg *config.Config, migrationsFS fs.FS, log zerolog.Logger) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPathRaw = filepath.Join(appDir, "caixa.db")
	}
	dbPath, err := ExpandPath(dbPathRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database path %s: %w", dbPathRaw, err)
	}

	dbStore, err := store.NewStore(dbPath, migrationsFS, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	led, err := dbStore.LoadLedger()
	if err != nil {
		dbStore.Close()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	svc := service.NewService(led, dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Ledger:  led,
		Store:   dbStore,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".caixa"), nil
	}

	return filepath.Join(configDir, "caixa"), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
