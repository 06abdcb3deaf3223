package store

import (
	"context"
	"testing"
	"time"

	"webstore-portal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestKVStoreGetMissing(t *testing.T) {
	s := NewKVStore(setupTestDB(t), 0)

	value, ok, err := s.Get(context.Background(), "cart:nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected absent value, got ok=%v value=%q", ok, value)
	}
}

func TestKVStoreSetThenGet(t *testing.T) {
	s := NewKVStore(setupTestDB(t), 0)
	ctx := context.Background()

	if err := s.Set(ctx, "cart:1", `[{"id":1,"num":2}]`); err != nil {
		t.Fatal(err)
	}

	value, ok, err := s.Get(ctx, "cart:1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected value to be present")
	}
	if value != `[{"id":1,"num":2}]` {
		t.Errorf("unexpected value %q", value)
	}
}

func TestKVStoreSetOverwrites(t *testing.T) {
	db := setupTestDB(t)
	s := NewKVStore(db, 0)
	ctx := context.Background()

	s.Set(ctx, "cart:1", "first")
	if err := s.Set(ctx, "cart:1", "second"); err != nil {
		t.Fatal(err)
	}

	value, _, _ := s.Get(ctx, "cart:1")
	if value != "second" {
		t.Errorf("expected 'second', got %q", value)
	}

	var count int64
	db.Model(&models.KVEntry{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 row after overwrite, got %d", count)
	}
}

func TestKVStoreKeysAreIndependent(t *testing.T) {
	s := NewKVStore(setupTestDB(t), 0)
	ctx := context.Background()

	s.Set(ctx, "cart:a", "A")
	s.Set(ctx, "cart:b", "B")

	a, _, _ := s.Get(ctx, "cart:a")
	b, _, _ := s.Get(ctx, "cart:b")
	if a != "A" || b != "B" {
		t.Errorf("expected A and B, got %q and %q", a, b)
	}
}

func TestKVStoreTTLExpiry(t *testing.T) {
	s := NewKVStore(setupTestDB(t), time.Hour)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	if err := s.Set(ctx, "cart:1", "payload"); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := s.Get(ctx, "cart:1"); !ok {
		t.Fatal("expected entry before ttl elapses")
	}

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, ok, _ := s.Get(ctx, "cart:1"); ok {
		t.Error("expected entry to read as absent after ttl")
	}
}

func TestKVStoreSetRefreshesExpiry(t *testing.T) {
	s := NewKVStore(setupTestDB(t), time.Hour)
	ctx := context.Background()

	start := time.Now()
	s.now = func() time.Time { return start }
	s.Set(ctx, "cart:1", "old")

	s.now = func() time.Time { return start.Add(50 * time.Minute) }
	s.Set(ctx, "cart:1", "new")

	s.now = func() time.Time { return start.Add(90 * time.Minute) }
	value, ok, _ := s.Get(ctx, "cart:1")
	if !ok || value != "new" {
		t.Errorf("expected refreshed entry 'new', got ok=%v value=%q", ok, value)
	}
}

func TestKVStorePurgeExpired(t *testing.T) {
	db := setupTestDB(t)
	s := NewKVStore(db, time.Hour)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	s.Set(ctx, "cart:old", "x")

	s.now = func() time.Time { return now.Add(30 * time.Minute) }
	s.Set(ctx, "cart:fresh", "y")

	// Entries without expiry are never purged
	NewKVStore(db, 0).Set(ctx, "cart:forever", "z")

	s.now = func() time.Time { return now.Add(75 * time.Minute) }
	removed, err := s.PurgeExpired(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("expected 1 purged entry, got %d", removed)
	}

	var count int64
	db.Model(&models.KVEntry{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 remaining entries, got %d", count)
	}
}
