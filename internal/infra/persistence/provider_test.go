package persistence

import (
	"io"
	"log/slog"
	"testing"

	"kanakku/config"
	"kanakku/internal/domain/constants"
	"kanakku/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) StoreParams {
	cfg := &config.Config{Store: &config.StoreConfig{Driver: driver}}

	return StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewRepositories_Memory(t *testing.T) {
	repos, err := NewRepositories(newParams(t, constants.StoreDriverMemory))
	require.NoError(t, err)

	store, ok := repos.Shops.(*memory.Store)
	require.True(t, ok)
	assert.Same(t, store, repos.Transactions)
	assert.Same(t, store, repos.BatchWriter)
	assert.Equal(t, constants.FirestoreMaxBatchOperations, repos.BatchWriter.MaxOperations())
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	_, err := NewRepositories(newParams(t, "mongo"))
	assert.ErrorContains(t, err, "unknown store driver: mongo")
}

func TestNewRepositories_PostgresRequiresConfig(t *testing.T) {
	_, err := NewRepositories(newParams(t, constants.StoreDriverPostgres))
	assert.ErrorContains(t, err, "postgres section is required")
}
