package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webstore-portal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is the shared per-user store, kept in the kv_entries table.
// A zero ttl stores entries without expiry.
type KVStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewKVStore(db *gorm.DB, ttl time.Duration) *KVStore {
	return &KVStore{db: db, ttl: ttl, now: time.Now}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if entry.Expired(s.now()) {
		return "", false, nil
	}
	return entry.Payload, true, nil
}

// Set overwrites the value for key and refreshes its expiry.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	now := s.now()
	entry := models.KVEntry{
		Key:       key,
		Payload:   value,
		UpdatedAt: now,
	}
	if s.ttl > 0 {
		expiresAt := now.Add(s.ttl)
		entry.ExpiresAt = &expiresAt
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// PurgeExpired deletes expired entries and returns how many were removed.
func (s *KVStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now()).
		Delete(&models.KVEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
