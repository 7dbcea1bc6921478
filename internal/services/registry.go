package services

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
)

// Session bundles the services of one client profile
type Session struct {
	ProfileID string
	Storage   *StorageService
	Users     *UserService
	Auth      *AuthService
	Quiz      *QuizService
	Wheel     *Wheel
	Chat      *ChatService
}

// Registry builds and caches the services of each profile over the shared store and bus.
// Caching keeps one write lock and one wheel per profile inside this process.
// The cache holds at most SessionCacheSize profiles, each dropped after SessionTTL unused.
// Profile state lives in the store, so an evicted profile rebuilds on its next request.
type Registry struct {
	store    kvstore.Store
	bus      *events.Bus
	gateway  ai.Gateway
	requests *ai.Requests
	opts     Options

	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

// NewRegistry creates an empty registry
func NewRegistry(store kvstore.Store, bus *events.Bus, gateway ai.Gateway, opts Options) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		store:    store,
		bus:      bus,
		gateway:  gateway,
		requests: ai.NewRequests(),
		opts:     opts,
		sessions: expirable.NewLRU[string, *Session](opts.SessionCacheSize, nil, opts.SessionTTL),
	}
}

// Bus returns the notification bus shared by every profile
func (r *Registry) Bus() *events.Bus {
	return r.bus
}

// Store returns the unprefixed backing store
func (r *Registry) Store() kvstore.Store {
	return r.store
}

// Gateway returns the generative model gateway
func (r *Registry) Gateway() ai.Gateway {
	return r.gateway
}

// For returns the services of profileID, creating them on first use
func (r *Registry) For(profileID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(profileID); ok {
		// re-add to restart the idle clock
		r.sessions.Add(profileID, s)
		return s
	}

	store := kvstore.WithPrefix(r.store, kvstore.ProfilePrefix(profileID))
	pub := r.bus.Scope(profileID)

	storage := NewStorageService(store, pub, r.opts.Now)
	users := NewUserService(store, storage, pub, r.opts.Now)
	s := &Session{
		ProfileID: profileID,
		Storage:   storage,
		Users:     users,
		Auth:      NewAuthService(store, storage, users, pub, r.opts),
		Quiz:      NewQuizService(storage, users),
		Wheel:     NewWheel(users, r.opts),
		Chat:      NewChatService(profileID, storage, users, r.gateway, r.requests, r.opts.Now),
	}
	r.sessions.Add(profileID, s)
	return s
}

// Cached returns the number of profile sessions held in memory
func (r *Registry) Cached() int {
	return r.sessions.Len()
}
