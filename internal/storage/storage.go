package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.New("storage record not found")

// KeyValue defines the durable key-value operations the application persists through.
// Writes are last-write-wins; there is no versioning or conflict resolution.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Storage modes
const (
	ModeLocal    = "local"
	ModeAzure    = "azure"
	ModeDatabase = "database"
	ModeMemory   = "memory"
)

// NewStorage creates a key-value store based on configuration.
// For local mode, records are files on the local filesystem.
// For cloud/azure mode, records are blobs in Azure Blob Storage.
// For database mode, records are rows in the storage_records table (db must be non-nil).
func NewStorage(cfg *config.StorageConfig, db *gorm.DB, logger *zap.Logger) (KeyValue, error) {
	switch cfg.Mode {
	case ModeLocal:
		return NewLocalStorage(cfg.LocalBasePath)
	case "cloud", ModeAzure:
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobStorage(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	case ModeDatabase:
		if db == nil {
			return nil, fmt.Errorf("database connection required for database storage")
		}
		return NewDatabaseStorage(repository.NewStorageRecordRepository(db)), nil
	case ModeMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// probeKey is read by Check; it is never written.
const probeKey = "health-probe"

// Check verifies the store is reachable. A missing probe record counts as healthy.
func Check(ctx context.Context, kv KeyValue) error {
	_, err := kv.Get(ctx, probeKey)
	if err == nil || errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
