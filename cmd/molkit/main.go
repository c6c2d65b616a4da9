// Command molkit converts space-delimited SMILES and manages the project
// data directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/molkit/cgo/rdkit"
	"github.com/custodia-labs/molkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/molkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/molkit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/molkit/internal/adapters/driving/cli"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
	"github.com/custodia-labs/molkit/internal/core/services"
	"github.com/custodia-labs/molkit/internal/logger"
	"github.com/custodia-labs/molkit/internal/paths"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, bootstrap); err != nil {
		return 1
	}
	return 0
}

// bootstrap wires the adapters and services for one invocation.
func bootstrap(_ context.Context, flags cli.Flags) (cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(flags.ConfigDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	stored, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, nil, err
	}
	// Bad values fall back to defaults so the settings commands can repair them.
	settings, problems := stored.Sanitize()

	if err := logger.Init(logger.Options{
		Level:   settings.Log.Level,
		Verbose: flags.Verbose,
	}); err != nil {
		return cli.Services{}, nil, err
	}
	log := logger.Named("molkit.startup")
	if problems != nil {
		log.Warn().Err(problems).Str("config", configStore.Path()).Msg("ignoring invalid settings, using defaults")
	}
	if unknown := settingsService.UnknownKeys(); len(unknown) > 0 {
		log.Debug().Strs("keys", unknown).Str("config", configStore.Path()).Msg("unknown config keys")
	}

	root, err := resolveRoot(flags.Root, settings.Paths.Root)
	if err != nil {
		return cli.Services{}, nil, err
	}
	resolver, err := paths.New(root)
	if err != nil {
		return cli.Services{}, nil, err
	}
	log.Debug().Str("root", resolver.Root()).Str("config", configStore.Path()).Msg("resolved project")

	parser, err := rdkit.New(rdkit.Options{Verbose: flags.Verbose})
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("starting rdkit: %w", err)
	}

	conversions, closeStore := openConversionStore(resolver, settings.History.Enabled)

	cleanup := func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("closing history store")
		}
		if err := parser.Close(); err != nil {
			log.Warn().Err(err).Msg("closing parser")
		}
	}

	return cli.Services{
		Notation:      services.NewNotationService(parser),
		History:       services.NewHistoryService(conversions),
		Settings:      settingsService,
		Paths:         resolver,
		Watcher:       configStore,
		RecordHistory: settings.History.Enabled,
		HistoryLimit:  settings.History.Limit,
	}, cleanup, nil
}

// resolveRoot picks the project root: flag, then config, then the directory
// above the executable.
func resolveRoot(flagRoot, configRoot string) (string, error) {
	switch {
	case flagRoot != "":
		return flagRoot, nil
	case configRoot != "":
		return configRoot, nil
	default:
		return paths.DetectRoot()
	}
}

// openConversionStore returns the SQLite history under the data directory, or
// an in-memory store when history is disabled. The database and the data
// directory are created on first use, so commands that never read or record
// history leave the project untouched.
func openConversionStore(resolver paths.Resolver, enabled bool) (driven.ConversionStore, func() error) {
	if !enabled {
		store := memory.NewConversionStore()
		return store, store.Close
	}

	store := sqlite.NewLazyStore(resolver.DatabasePath(), resolver.EnsureDataDir)
	return store.ConversionStore(), store.Close
}
