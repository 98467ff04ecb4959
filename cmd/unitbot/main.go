// Command unitbot converts units mentioned in chat messages.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/unitbot/internal/adapters/driven/config/file"
	"github.com/custodia-labs/unitbot/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/cli"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

// version is overridden with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the file config store, the SQLite store and the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(filepath.Dir(store.Path()), "data")
	}
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Responder:  services.NewResponder(),
		Settings:   settingsService,
		Birthdays:  services.NewBirthdayService(db.BirthdayStore(), db.NotificationLog()),
		ConfigPath: store.Path(),
		Watch: func(ctx context.Context, onReload func()) error {
			return file.NewWatcher(store, onReload).Run(ctx)
		},
		Close: db.Close,
	}, nil
}
