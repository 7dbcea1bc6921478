package kvstore

import (
	"context"
)

// Prefixed is a view of a Store restricted to keys under one prefix
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix returns a view of store where every key is stored under prefix
func WithPrefix(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

// ProfilePrefix is the key prefix of one client profile
func ProfilePrefix(profileID string) string {
	return "profile:" + profileID + ":"
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.store.Delete(ctx, p.prefix+key)
}

func (p *Prefixed) GetVersioned(ctx context.Context, key string) (string, uint64, bool, error) {
	return p.store.GetVersioned(ctx, p.prefix+key)
}

func (p *Prefixed) SetIfVersion(ctx context.Context, key, value string, version uint64) (uint64, error) {
	return p.store.SetIfVersion(ctx, p.prefix+key, value, version)
}

func (p *Prefixed) Ping(ctx context.Context) error {
	return p.store.Ping(ctx)
}

// Close does not close the underlying store, which is shared by every view
func (p *Prefixed) Close() error {
	return nil
}
