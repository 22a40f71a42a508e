package securestore

import (
	"context"
	"log/slog"

	"alerty/config"
	"alerty/internal/domain/repository"

	"go.uber.org/fx"
)

// Params holds dependencies for the secure store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the store configured under storage. Without a directory the
// store is kept in memory and nothing survives the process.
func New(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store *Store
	var err error
	if cfg == nil || cfg.Dir == "" {
		logger.Warn("Storage directory not configured, session will not be persisted")

		passphrase := ""
		if cfg != nil {
			passphrase = cfg.Passphrase
		}
		store, err = OpenMemory(params.Ctx, passphrase, logger)
	} else {
		logger.Debug("Opening secure store", slog.String("dir", cfg.Dir))

		store, err = OpenFile(params.Ctx, cfg.Dir, cfg.Passphrase, logger)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Module provides the secure store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
