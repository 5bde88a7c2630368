package storage

import (
	"context"
	"log/slog"

	"kanakku/config"
	"kanakku/internal/domain/lifecycle"
	"kanakku/internal/domain/service"

	"go.uber.org/fx"
)

// StorageParams holds dependencies for ImageStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the upload bucket and closes it on stop.
func NewImageStorage(params StorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Upload
	if cfg == nil {
		cfg = &config.UploadConfig{BucketURL: "mem://"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	storage, err := Open(ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Image storage ready", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}
