package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/localnerve/decideforme/internal/kvstore"
)

// readSlot decodes the JSON document at key into a T. A missing, unreadable or
// unparseable document yields fallback(); the failure is logged, never returned.
func readSlot[T any](ctx context.Context, store kvstore.Store, key string, fallback func() T) T {
	value, _ := readVersionedSlot(ctx, store, key, fallback)
	return value
}

// readVersionedSlot is readSlot plus the version of the stored document
func readVersionedSlot[T any](ctx context.Context, store kvstore.Store, key string, fallback func() T) (T, uint64) {
	raw, version, found, err := store.GetVersioned(ctx, key)
	if err != nil {
		log.Printf("Failed to read %s, using defaults: %v", key, err)
		return fallback(), version
	}
	if !found {
		return fallback(), 0
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("Failed to decode %s, using defaults: %v", key, err)
		return fallback(), version
	}
	return value, version
}

// writeSlot encodes value as JSON at key
func writeSlot(ctx context.Context, store kvstore.Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// writeVersionedSlot encodes value at key if the stored document is still at version
func writeVersionedSlot(ctx context.Context, store kvstore.Store, key string, value interface{}, version uint64) (uint64, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	newVersion, err := store.SetIfVersion(ctx, key, string(raw), version)
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", key, err)
	}
	return newVersion, nil
}

// readFlag reports whether the session flag at key is set
func readFlag(ctx context.Context, store kvstore.Store, key string) bool {
	return readSlot(ctx, store, key, func() bool { return false })
}

func emptyList[T any]() func() []T {
	return func() []T { return []T{} }
}
