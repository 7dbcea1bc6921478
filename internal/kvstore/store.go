package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrVersion is returned by SetIfVersion when the stored version does not match the expected one
var ErrVersion = errors.New("E_VERSION")

// Store types
const (
	TypeMemory   = "memory"
	TypeDatabase = "database"
	TypeRedis    = "redis"
)

// Store is a durable string-keyed store. Values are opaque strings (JSON documents in practice).
// Every successful write bumps the key's version by one; an absent key has version 0.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetVersioned(ctx context.Context, key string) (string, uint64, bool, error)
	SetIfVersion(ctx context.Context, key, value string, version uint64) (uint64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open creates the store selected by storeType from the connections already established
func Open(storeType string, db *gorm.DB, rdb *redis.Client) (Store, error) {
	switch storeType {
	case TypeMemory, "":
		return NewMemory(), nil
	case TypeDatabase:
		if db == nil {
			return nil, fmt.Errorf("store type %s requires a database connection", storeType)
		}
		return NewGorm(db), nil
	case TypeRedis:
		if rdb == nil {
			return nil, fmt.Errorf("store type %s requires a redis connection", storeType)
		}
		return NewRedis(rdb), nil
	}
	return nil, fmt.Errorf("unsupported store type: %s", storeType)
}
