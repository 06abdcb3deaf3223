package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY, "email" TEXT NOT NULL UNIQUE, "password" TEXT NOT NULL,
			"name" TEXT, "role" TEXT DEFAULT 'customer', "is_blocked" INTEGER DEFAULT 0,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
	}

	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			t.Fatal(err)
		}
	}
	return db
}

// ==================== BeforeCreate Hook Tests ====================

func TestUserBeforeCreateGeneratesUUID(t *testing.T) {
	db := setupTestDB(t)
	user := User{Email: "test@test.com", Password: "hash", Name: "Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	if user.ID == uuid.Nil {
		t.Error("UUID should have been generated")
	}
}

func TestUserBeforeCreatePreservesUUID(t *testing.T) {
	db := setupTestDB(t)
	existingID := uuid.New()
	user := User{ID: existingID, Email: "preserve@test.com", Password: "hash", Name: "Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	if user.ID != existingID {
		t.Error("UUID should have been preserved")
	}
}

// ==================== Cart Tests ====================

func TestCartIndexOf(t *testing.T) {
	cart := Cart{{ID: 10, Num: 1}, {ID: 20, Num: 2}}

	if i := cart.IndexOf(20); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := cart.IndexOf(30); i != -1 {
		t.Errorf("expected -1 for missing item, got %d", i)
	}
	if i := Cart(nil).IndexOf(10); i != -1 {
		t.Errorf("expected -1 for nil cart, got %d", i)
	}
}

func TestCartTotalAndCount(t *testing.T) {
	cart := Cart{
		{ID: 1, Price: 1999, Num: 2},
		{ID: 2, Price: 500, Num: 3},
	}

	if total := cart.Total(); total != 5498 {
		t.Errorf("expected total 5498, got %d", total)
	}
	if count := cart.Count(); count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
}

func TestEmptyCartTotal(t *testing.T) {
	var cart Cart
	if cart.Total() != 0 || cart.Count() != 0 {
		t.Errorf("expected zero total and count, got %d and %d", cart.Total(), cart.Count())
	}
}

// ==================== KVEntry Tests ====================

func TestKVEntryExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	if (&KVEntry{}).Expired(now) {
		t.Error("entry without expiry should never expire")
	}
	if !(&KVEntry{ExpiresAt: &past}).Expired(now) {
		t.Error("entry with past expiry should be expired")
	}
	if !(&KVEntry{ExpiresAt: &now}).Expired(now) {
		t.Error("entry expiring exactly now should be expired")
	}
	if (&KVEntry{ExpiresAt: &future}).Expired(now) {
		t.Error("entry with future expiry should not be expired")
	}
}

func TestKVEntryTableName(t *testing.T) {
	if name := (KVEntry{}).TableName(); name != "kv_entries" {
		t.Errorf("expected 'kv_entries', got '%s'", name)
	}
}
