package repository

import (
	"context"
	"time"

	"github.com/straye-as/storefront/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StorageRecordRepository struct {
	db *gorm.DB
}

func NewStorageRecordRepository(db *gorm.DB) *StorageRecordRepository {
	return &StorageRecordRepository{db: db}
}

func (r *StorageRecordRepository) GetByKey(ctx context.Context, key string) (*domain.StorageRecord, error) {
	var record domain.StorageRecord
	err := r.db.WithContext(ctx).First(&record, "storage_key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts the record or overwrites the value of an existing one
func (r *StorageRecordRepository) Upsert(ctx context.Context, key string, value []byte) error {
	record := domain.StorageRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *StorageRecordRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&domain.StorageRecord{}, "storage_key = ?", key).Error
}

// DeleteUpdatedBefore removes records not written since cutoff and returns how many were removed
func (r *StorageRecordRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&domain.StorageRecord{})
	return result.RowsAffected, result.Error
}
