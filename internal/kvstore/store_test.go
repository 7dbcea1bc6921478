package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// One connection, every new connection to :memory: is a new database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// exerciseStore runs the behavior every Store backend must share
func exerciseStore(t *testing.T, store kvstore.Store) {
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Expected missing key, got found=%v err=%v", found, err)
	}
	if _, version, found, err := store.GetVersioned(ctx, "missing"); err != nil || found || version != 0 {
		t.Fatalf("Expected version 0 for missing key, got %d found=%v err=%v", version, found, err)
	}

	if err := store.Set(ctx, "dfm_categories", `[{"id":1}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, version, found, err := store.GetVersioned(ctx, "dfm_categories")
	if err != nil || !found {
		t.Fatalf("Expected key after Set, found=%v err=%v", found, err)
	}
	if value != `[{"id":1}]` {
		t.Errorf("Expected stored value, got %s", value)
	}
	if version != 1 {
		t.Errorf("Expected version 1 after first write, got %d", version)
	}

	if err := store.Set(ctx, "dfm_categories", `[{"id":2}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_, version, _, _ = store.GetVersioned(ctx, "dfm_categories")
	if version != 2 {
		t.Errorf("Expected version 2 after second write, got %d", version)
	}

	if _, err := store.SetIfVersion(ctx, "dfm_categories", `[]`, 1); !errors.Is(err, kvstore.ErrVersion) {
		t.Errorf("Expected ErrVersion for stale version, got %v", err)
	}
	newVersion, err := store.SetIfVersion(ctx, "dfm_categories", `[]`, 2)
	if err != nil {
		t.Fatalf("SetIfVersion failed: %v", err)
	}
	if newVersion != 3 {
		t.Errorf("Expected version 3, got %d", newVersion)
	}

	if _, err := store.SetIfVersion(ctx, "fresh", `"x"`, 1); !errors.Is(err, kvstore.ErrVersion) {
		t.Errorf("Expected ErrVersion for absent key with nonzero version, got %v", err)
	}
	if v, err := store.SetIfVersion(ctx, "fresh", `"x"`, 0); err != nil || v != 1 {
		t.Errorf("Expected version 1 for new key, got %d err=%v", v, err)
	}

	if err := store.Delete(ctx, "dfm_categories"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, "dfm_categories"); found {
		t.Error("Expected key to be gone after Delete")
	}
	if err := store.Delete(ctx, "dfm_categories"); err != nil {
		t.Errorf("Expected Delete of missing key to be a no-op, got %v", err)
	}

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, kvstore.NewMemory())
}

func TestGormStore(t *testing.T) {
	exerciseStore(t, kvstore.NewGorm(setupTestDB(t)))
}

func TestPrefixedStoreIsolation(t *testing.T) {
	ctx := context.Background()
	base := kvstore.NewMemory()
	alice := kvstore.WithPrefix(base, kvstore.ProfilePrefix("alice"))
	bob := kvstore.WithPrefix(base, kvstore.ProfilePrefix("bob"))

	exerciseStore(t, alice)

	if err := alice.Set(ctx, "dfm_user", `{"id":"a"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found, _ := bob.Get(ctx, "dfm_user"); found {
		t.Error("Expected profiles not to share keys")
	}
	if value, found, _ := base.Get(ctx, "profile:alice:dfm_user"); !found || value != `{"id":"a"}` {
		t.Errorf("Expected prefixed key in base store, got %q found=%v", value, found)
	}
}

func TestOpen(t *testing.T) {
	if s, err := kvstore.Open(kvstore.TypeMemory, nil, nil); err != nil || s == nil {
		t.Errorf("Expected memory store, got %v", err)
	}
	if _, err := kvstore.Open(kvstore.TypeDatabase, nil, nil); err == nil {
		t.Error("Expected error for database store without a connection")
	}
	if _, err := kvstore.Open(kvstore.TypeRedis, nil, nil); err == nil {
		t.Error("Expected error for redis store without a client")
	}
	if _, err := kvstore.Open("etcd", nil, nil); err == nil {
		t.Error("Expected error for unknown store type")
	}
}
