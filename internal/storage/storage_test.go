package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/repository"
	"github.com/straye-as/storefront/internal/storage"
	"github.com/straye-as/storefront/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// Storage Interface Tests
// ============================================================================

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.KeyValue = (*storage.LocalStorage)(nil)
	var _ storage.KeyValue = (*storage.AzureBlobStorage)(nil)
	var _ storage.KeyValue = (*storage.DatabaseStorage)(nil)
	var _ storage.KeyValue = (*storage.MemoryStorage)(nil)
	var _ storage.KeyValue = (*storage.Scoped)(nil)
}

// exerciseKeyValue runs the contract every backend must satisfy
func exerciseKeyValue(t *testing.T, kv storage.KeyValue) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Put(ctx, "carts/abc/cart-storage", []byte(`[1]`)))
	got, err := kv.Get(ctx, "carts/abc/cart-storage")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))

	// Last write wins
	require.NoError(t, kv.Put(ctx, "carts/abc/cart-storage", []byte(`[2]`)))
	got, err = kv.Get(ctx, "carts/abc/cart-storage")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(got))

	require.NoError(t, kv.Delete(ctx, "carts/abc/cart-storage"))
	_, err = kv.Get(ctx, "carts/abc/cart-storage")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a missing record is not an error
	assert.NoError(t, kv.Delete(ctx, "carts/abc/cart-storage"))
}

// ============================================================================
// LocalStorage Tests
// ============================================================================

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "carts")

	ls, err := storage.NewLocalStorage(basePath)

	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_Contract(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	exerciseKeyValue(t, ls)
}

func TestLocalStorage_WritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	ls, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, ls.Put(context.Background(), "carts/abc/cart-storage", []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(dir, "carts", "abc", "cart-storage"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	// No temporary files are left behind
	entries, err := os.ReadDir(filepath.Join(dir, "carts", "abc"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []string{"", "../outside", "carts/../../outside", "/etc/passwd"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, ls.Put(ctx, key, []byte("x")))
			_, err := ls.Get(ctx, key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

// ============================================================================
// MemoryStorage / Scoped Tests
// ============================================================================

func TestMemoryStorage_Contract(t *testing.T) {
	exerciseKeyValue(t, storage.NewMemoryStorage())
}

func TestMemoryStorage_CopiesValues(t *testing.T) {
	ctx := context.Background()
	ms := storage.NewMemoryStorage()

	value := []byte("abc")
	require.NoError(t, ms.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, _ := ms.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestScoped_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStorage()
	a := storage.NewScoped(inner, "carts/session-a")
	b := storage.NewScoped(inner, "carts/session-b/")

	require.NoError(t, a.Put(ctx, "cart-storage", []byte("A")))
	require.NoError(t, b.Put(ctx, "cart-storage", []byte("B")))

	assert.ElementsMatch(t, []string{"carts/session-a/cart-storage", "carts/session-b/cart-storage"}, inner.Keys())

	got, err := a.Get(ctx, "cart-storage")
	require.NoError(t, err)
	assert.Equal(t, "A", string(got))

	require.NoError(t, a.Delete(ctx, "cart-storage"))
	_, err = a.Get(ctx, "cart-storage")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err = b.Get(ctx, "cart-storage")
	require.NoError(t, err)
	assert.Equal(t, "B", string(got))
}

func TestScoped_Contract(t *testing.T) {
	exerciseKeyValue(t, storage.NewScoped(storage.NewMemoryStorage(), "ns"))
}

// ============================================================================
// DatabaseStorage Tests
// ============================================================================

func TestDatabaseStorage_Contract(t *testing.T) {
	db := testutil.SetupTestDB(t)
	exerciseKeyValue(t, storage.NewDatabaseStorage(repository.NewStorageRecordRepository(db)))
}

func TestDatabaseStorage_PurgeBefore(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	ds := storage.NewDatabaseStorage(repository.NewStorageRecordRepository(db))

	require.NoError(t, ds.Put(ctx, "carts/old/cart-storage", []byte(`[]`)))
	require.NoError(t, db.Exec("UPDATE storage_records SET updated_at = ? WHERE storage_key = ?",
		time.Now().UTC().Add(-48*time.Hour), "carts/old/cart-storage").Error)
	require.NoError(t, ds.Put(ctx, "carts/new/cart-storage", []byte(`[]`)))

	purged, err := ds.PurgeBefore(ctx, time.Now().UTC().Add(-24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = ds.Get(ctx, "carts/old/cart-storage")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = ds.Get(ctx, "carts/new/cart-storage")
	assert.NoError(t, err)
}

// ============================================================================
// NewStorage / Check Tests
// ============================================================================

func TestNewStorage_Modes(t *testing.T) {
	logger := zap.NewNop()

	local, err := storage.NewStorage(&config.StorageConfig{Mode: storage.ModeLocal, LocalBasePath: t.TempDir()}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, local)

	mem, err := storage.NewStorage(&config.StorageConfig{Mode: storage.ModeMemory}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStorage{}, mem)

	db := testutil.SetupTestDB(t)
	dbStore, err := storage.NewStorage(&config.StorageConfig{Mode: storage.ModeDatabase}, db, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.DatabaseStorage{}, dbStore)
}

func TestNewStorage_Errors(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{name: "azure without connection string", cfg: config.StorageConfig{Mode: storage.ModeAzure}},
		{name: "cloud alias without connection string", cfg: config.StorageConfig{Mode: "cloud"}},
		{name: "database without connection", cfg: config.StorageConfig{Mode: storage.ModeDatabase}},
		{name: "unknown mode", cfg: config.StorageConfig{Mode: "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := storage.NewStorage(&tt.cfg, nil, logger)
			assert.Error(t, err)
			assert.Nil(t, kv)
		})
	}
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, storage.Check(ctx, storage.NewMemoryStorage()))

	failing := testutil.NewFailingStorage()
	failing.FailGet = true
	assert.ErrorIs(t, storage.Check(ctx, failing), testutil.ErrBackendDown)
}
