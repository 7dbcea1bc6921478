package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/models"
)

var fixedNow = time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)

// fakeGateway answers from canned values and records what it was asked
type fakeGateway struct {
	mu       sync.Mutex
	answer   string
	err      error
	cmp      *models.Comparison
	requests []ai.ChatRequest
	block    chan struct{}
}

func (f *fakeGateway) Chat(ctx context.Context, req ai.ChatRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.answer, f.err
}

func (f *fakeGateway) Compare(ctx context.Context, a, b string) (*models.Comparison, error) {
	return f.cmp, f.err
}

func (f *fakeGateway) Ping(context.Context) error {
	return nil
}

// recorder counts the notifications published in one scope
type recorder struct {
	mu     sync.Mutex
	topics []events.Topic
}

func (r *recorder) count(topic events.Topic) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.topics {
		if t == topic {
			n++
		}
	}
	return n
}

func (r *recorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.topics)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = nil
}

type testEnv struct {
	store   *kvstore.Memory
	bus     *events.Bus
	gateway *fakeGateway
	session *Session
	events  *recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:   kvstore.NewMemory(),
		bus:     events.NewBus(),
		gateway: &fakeGateway{answer: "Go with the blazer 🔥"},
		events:  &recorder{},
	}
	registry := NewRegistry(env.store, env.bus, env.gateway, Options{
		AdminIdentifiers:  []string{"admin", "admin@decideforme.app"},
		AdminPasswordHash: HashPassword("admin123"),
		Now:               func() time.Time { return fixedNow },
		Random:            func() float64 { return 0.25 },
	})
	env.session = registry.For("test-profile")

	cancel := env.bus.SubscribeAll("test-profile", func(topic events.Topic) {
		env.events.mu.Lock()
		env.events.topics = append(env.events.topics, topic)
		env.events.mu.Unlock()
	})
	t.Cleanup(cancel)

	return env
}

// setPassword stores the hash of password on account id
func setPassword(t *testing.T, env *testEnv, id, password string) {
	t.Helper()

	hash := HashPassword(password)
	upd := models.UserUpdate{ID: &id, PasswordHash: &hash}
	if err := env.session.Storage.UpdateUserDetails(context.Background(), upd); err != nil {
		t.Fatalf("Failed to set password: %v", err)
	}
}
