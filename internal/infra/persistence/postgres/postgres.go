package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"kanakku/config"
	"kanakku/internal/domain/lifecycle"
	"kanakku/internal/errors"
	"kanakku/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL ledger store, migrates its tables on start and
// closes the pool on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is required when store.driver is postgres")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Batches open their own transaction in gormBatchWriter.Commit.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}

			go watchPoolWaits(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the ledger tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ShopModel{},
		&model.ProductModel{},
		&model.TransactionModel{},
		&model.ProfileModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate ledger tables")
	}

	return nil
}

// watchPoolWaits logs whenever requests had to wait for a pooled connection.
// Cascades and resets hold one connection per batch, so waits show up there first.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Ledger store pool wait",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
			)
		}
	}
}
