package models

import (
	"time"
)

// KVEntry is a single key of the shared key-value store when it is backed by a database.
// EntryVersion is bumped on every write and drives the optimistic concurrency check.
type KVEntry struct {
	EntryKey     string `gorm:"primaryKey;size:255"`
	EntryValue   JSON
	EntryVersion uint64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
