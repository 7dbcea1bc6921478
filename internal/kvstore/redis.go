package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix    = "dfm:kv:"
	redisValueField   = "value"
	redisVersionField = "version"
)

// Redis is a Store keeping each key in a hash holding the value and its version
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis store on an already connected client
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get returns the value stored at key
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := r.GetVersioned(ctx, key)
	return value, found, err
}

// GetVersioned returns the value stored at key and its version
func (r *Redis) GetVersioned(ctx context.Context, key string) (string, uint64, bool, error) {
	return readEntry(ctx, r.client, redisKeyPrefix+key)
}

type hashReader interface {
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
}

func readEntry(ctx context.Context, c hashReader, key string) (string, uint64, bool, error) {
	fields, err := c.HMGet(ctx, key, redisValueField, redisVersionField).Result()
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(fields) != 2 || fields[0] == nil {
		return "", 0, false, nil
	}

	value, _ := fields[0].(string)
	var version uint64
	if s, ok := fields[1].(string); ok {
		version, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return "", 0, false, fmt.Errorf("bad version for %s: %w", key, err)
		}
	}
	return value, version, true, nil
}

// Set stores value at key, last writer wins
func (r *Redis) Set(ctx context.Context, key, value string) error {
	k := redisKeyPrefix + key
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, redisValueField, value)
		pipe.HIncrBy(ctx, k, redisVersionField, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// SetIfVersion stores value at key only if the key is still at version
func (r *Redis) SetIfVersion(ctx context.Context, key, value string, version uint64) (uint64, error) {
	k := redisKeyPrefix + key
	var newVersion uint64

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		_, current, _, err := readEntry(ctx, tx, k)
		if err != nil {
			return err
		}
		if current != version {
			return ErrVersion
		}

		newVersion = version + 1
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, redisValueField, value, redisVersionField, newVersion)
			return nil
		})
		return err
	}, k)

	if errors.Is(err, redis.TxFailedErr) {
		return 0, fmt.Errorf("%w - failed to update %s due to concurrent modification", ErrVersion, key)
	}
	return newVersion, err
}

// Delete removes key
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Ping verifies the Redis connection is alive
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close does nothing, the client is owned by the database package
func (r *Redis) Close() error {
	return nil
}
