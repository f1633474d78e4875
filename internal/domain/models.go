package domain

import "time"

// StorageRecord is one key-value record of the database storage backend.
// Value is opaque to the database; the cart writes a JSON array of lines.
type StorageRecord struct {
	Key       string    `gorm:"column:storage_key;primaryKey;size:255"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (StorageRecord) TableName() string {
	return "storage_records"
}
