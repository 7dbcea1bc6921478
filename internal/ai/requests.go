package ai

import (
	"context"
	"sync"
)

type inflight struct {
	token  uint64
	cancel context.CancelFunc
}

// Requests hands out request tokens per key (a profile and a feature). Beginning a
// request cancels the outstanding one of the same key, whose answer is then stale.
type Requests struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflight
}

// NewRequests creates an empty tracker
func NewRequests() *Requests {
	return &Requests{inflight: make(map[string]inflight)}
}

// Begin starts a request for key. The returned context is cancelled when a newer request
// for key begins or when done is called.
func (r *Requests) Begin(ctx context.Context, key string) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if prev, ok := r.inflight[key]; ok {
		prev.cancel()
	}
	r.seq++
	token := r.seq
	r.inflight[key] = inflight{token: token, cancel: cancel}
	r.mu.Unlock()

	done := func() {
		cancel()
		r.mu.Lock()
		if cur, ok := r.inflight[key]; ok && cur.token == token {
			delete(r.inflight, key)
		}
		r.mu.Unlock()
	}
	return ctx, token, done
}

// Current reports whether token is still the latest request for key
func (r *Requests) Current(key string, token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.inflight[key]
	return ok && cur.token == token
}
