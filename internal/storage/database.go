package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/straye-as/storefront/internal/repository"
	"gorm.io/gorm"
)

// DatabaseStorage implements KeyValue on the storage_records table
type DatabaseStorage struct {
	repo *repository.StorageRecordRepository
}

// NewDatabaseStorage creates a key-value store backed by repo
func NewDatabaseStorage(repo *repository.StorageRecordRepository) *DatabaseStorage {
	return &DatabaseStorage{repo: repo}
}

func (s *DatabaseStorage) Get(ctx context.Context, key string) ([]byte, error) {
	record, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return record.Value, nil
}

func (s *DatabaseStorage) Put(ctx context.Context, key string, value []byte) error {
	if err := s.repo.Upsert(ctx, key, value); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// PurgeBefore deletes records that have not been written since cutoff
func (s *DatabaseStorage) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := s.repo.DeleteUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge records: %w", err)
	}
	return n, nil
}
