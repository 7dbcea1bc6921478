package services

import (
	"context"
	"sync"
	"time"

	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/oklog/ulid/v2"
)

// UserService owns the private session profile and the personal history of one profile.
// The session profile and the account table may diverge; UpdateUser pushes the profile
// into the table but a failed match there leaves them apart.
type UserService struct {
	store   kvstore.Store
	storage *StorageService
	events  events.Publisher
	now     func() time.Time

	mu sync.Mutex
}

// NewUserService creates the session accessor
func NewUserService(store kvstore.Store, storage *StorageService, pub events.Publisher, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{store: store, storage: storage, events: pub, now: now}
}

// User returns the session profile, or the guest profile
func (s *UserService) User(ctx context.Context) models.UserAccount {
	return readSlot(ctx, s.store, KeyUser, guestUser)
}

// setSession writes the session profile without touching the account table
func (s *UserService) setSession(ctx context.Context, user models.UserAccount) error {
	return writeSlot(ctx, s.store, KeyUser, user)
}

// UpdateUser overwrites the session profile and merges it into the account table
func (s *UserService) UpdateUser(ctx context.Context, user models.UserAccount) error {
	if err := s.setSession(ctx, user); err != nil {
		return err
	}
	if err := s.storage.UpdateUserDetails(ctx, user.ProfileUpdate()); err != nil {
		return err
	}

	s.events.Publish(events.UserChange)
	return nil
}

// SavedDecisions returns the saved decisions, newest first
func (s *UserService) SavedDecisions(ctx context.Context) []models.SavedDecision {
	return readSlot(ctx, s.store, KeySavedDecisions, emptyList[models.SavedDecision]())
}

// SaveDecision prepends d. Missing id and date are filled in.
func (s *UserService) SaveDecision(ctx context.Context, d models.SavedDecision) (models.SavedDecision, error) {
	if d.ID == "" {
		d.ID = ulid.Make().String()
	}
	if d.Date == "" {
		d.Date = s.now().Format(shortDateLayout)
	}

	s.mu.Lock()
	decisions := append([]models.SavedDecision{d}, s.SavedDecisions(ctx)...)
	err := writeSlot(ctx, s.store, KeySavedDecisions, decisions)
	s.mu.Unlock()
	if err != nil {
		return d, err
	}

	s.events.Publish(events.DataChange)
	return d, nil
}

// DeleteDecision removes decision id, unknown ids leave the list as is
func (s *UserService) DeleteDecision(ctx context.Context, id string) error {
	s.mu.Lock()
	current := s.SavedDecisions(ctx)
	kept := make([]models.SavedDecision, 0, len(current))
	for _, d := range current {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	err := writeSlot(ctx, s.store, KeySavedDecisions, kept)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.events.Publish(events.DataChange)
	return nil
}

// SpinHistory returns the last spin winners, newest first
func (s *UserService) SpinHistory(ctx context.Context) []models.SpinHistoryEntry {
	return readSlot(ctx, s.store, KeySpinHistory, emptyList[models.SpinHistoryEntry]())
}

// SaveSpinResult prepends result dated today and keeps the newest 5
func (s *UserService) SaveSpinResult(ctx context.Context, result string) error {
	entry := models.SpinHistoryEntry{
		Result: result,
		Date:   s.now().Format(shortDateLayout),
	}

	s.mu.Lock()
	history := append([]models.SpinHistoryEntry{entry}, s.SpinHistory(ctx)...)
	if len(history) > maxSpinHistory {
		history = history[:maxSpinHistory]
	}
	err := writeSlot(ctx, s.store, KeySpinHistory, history)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.events.Publish(events.DataChange)
	return nil
}

// Rotation returns the cumulative wheel rotation in degrees
func (s *UserService) Rotation(ctx context.Context) float64 {
	return readSlot(ctx, s.store, KeySpinRotation, func() float64 { return 0 })
}

func (s *UserService) saveRotation(ctx context.Context, degrees float64) error {
	return writeSlot(ctx, s.store, KeySpinRotation, degrees)
}

// ChatHistory returns the chat transcript, oldest first
func (s *UserService) ChatHistory(ctx context.Context) []models.ChatMessage {
	return readSlot(ctx, s.store, KeyChatHistory, emptyList[models.ChatMessage]())
}

// AppendChat adds messages to the transcript, keeping the newest 50
func (s *UserService) AppendChat(ctx context.Context, messages ...models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.ChatHistory(ctx), messages...)
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}
	return writeSlot(ctx, s.store, KeyChatHistory, history)
}

// ClearChat drops the transcript
func (s *UserService) ClearChat(ctx context.Context) error {
	return s.store.Delete(ctx, KeyChatHistory)
}

// Vibe returns the cached quiz vibe, empty before the quiz is taken
func (s *UserService) Vibe(ctx context.Context) string {
	return readSlot(ctx, s.store, KeyVibe, func() string { return "" })
}

// QuizResult returns the cached quiz result, nil before the quiz is taken
func (s *UserService) QuizResult(ctx context.Context) *models.QuizResult {
	return readSlot(ctx, s.store, KeyQuizResult, func() *models.QuizResult { return nil })
}

// SaveQuizResult caches result and its vibe in the session
func (s *UserService) SaveQuizResult(ctx context.Context, result models.QuizResult) error {
	if err := writeSlot(ctx, s.store, KeyVibe, result.Vibe); err != nil {
		return err
	}
	return writeSlot(ctx, s.store, KeyQuizResult, result)
}
