package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/decideforme/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// Gorm is a Store backed by the kv_entries table on any GORM dialect
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a database store. The kv_entries table must already be migrated.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// quiet returns a session with SQL logging silenced, the reads are too chatty for the info log
func (g *Gorm) quiet(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Session(&gorm.Session{Logger: g.db.Logger.LogMode(logger.Silent)})
}

// Get returns the value stored at key
func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := g.GetVersioned(ctx, key)
	return value, found, err
}

// GetVersioned returns the value stored at key and its version
func (g *Gorm) GetVersioned(ctx context.Context, key string) (string, uint64, bool, error) {
	query := g.quiet(ctx)
	if g.db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("PRIMARY"))
	}

	var entry models.KVEntry
	if err := query.Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, false, nil
		}
		return "", 0, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return string(entry.EntryValue.JSON), entry.EntryVersion, true, nil
}

// Set stores value at key, last writer wins
func (g *Gorm) Set(ctx context.Context, key, value string) error {
	_, err := g.write(ctx, key, value, nil)
	return err
}

// SetIfVersion stores value at key only if the key is still at version
func (g *Gorm) SetIfVersion(ctx context.Context, key, value string, version uint64) (uint64, error) {
	return g.write(ctx, key, value, &version)
}

// write locks the row, checks the expected version if one is given, and writes the next version
func (g *Gorm) write(ctx context.Context, key, value string, expected *uint64) (uint64, error) {
	var newVersion uint64

	err := g.quiet(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.KVEntry
		found := true
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("entry_key = ?", key).
			First(&entry).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		if expected != nil && entry.EntryVersion != *expected {
			return ErrVersion
		}

		newVersion = entry.EntryVersion + 1
		if !found {
			return tx.Create(&models.KVEntry{
				EntryKey:     key,
				EntryValue:   models.NewJSON(value),
				EntryVersion: newVersion,
			}).Error
		}

		result := tx.Model(&models.KVEntry{}).
			Where("entry_key = ? AND entry_version = ?", key, entry.EntryVersion).
			Updates(map[string]interface{}{
				"entry_value":   models.NewJSON(value),
				"entry_version": newVersion,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w - failed to update %s due to concurrent modification", ErrVersion, key)
		}
		return nil
	})

	return newVersion, err
}

// Delete removes key
func (g *Gorm) Delete(ctx context.Context, key string) error {
	if err := g.quiet(ctx).Where("entry_key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the underlying connection
func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close does nothing, the connection is owned by the database package
func (g *Gorm) Close() error {
	return nil
}
