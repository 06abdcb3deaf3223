package models

import "time"

// KVEntry is one record of the shared cart store.
type KVEntry struct {
	Key       string     `gorm:"column:cache_key;primaryKey;size:255" json:"key"`
	Payload   string     `gorm:"type:text;not null" json:"payload"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Expired reports whether the entry has an expiry at or before now.
func (e *KVEntry) Expired(now time.Time) bool {
	return e.ExpiresAt != nil && !e.ExpiresAt.After(now)
}
