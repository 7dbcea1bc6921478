package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/oklog/ulid/v2"
)

// ChatReply is the model answer to a chat turn
type ChatReply struct {
	Message  models.ChatMessage `json:"message"`
	Category string             `json:"category"`
	Status   string             `json:"status"`
}

// ChatService runs the AI features of one profile: chat, photo analysis and comparisons
type ChatService struct {
	profileID string
	storage   *StorageService
	users     *UserService
	gateway   ai.Gateway
	requests  *ai.Requests
	now       func() time.Time
}

// NewChatService creates the AI feature flow of profileID
func NewChatService(profileID string, storage *StorageService, users *UserService, gateway ai.Gateway, requests *ai.Requests, now func() time.Time) *ChatService {
	if now == nil {
		now = time.Now
	}
	return &ChatService{
		profileID: profileID,
		storage:   storage,
		users:     users,
		gateway:   gateway,
		requests:  requests,
		now:       now,
	}
}

// DetectCategory guesses the decision category of a chat message from keywords
func DetectCategory(text string) string {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, "wear", "dress", "outfit"):
		return models.DecisionOutfit
	case containsAny(t, "eat", "food", "restaurant"):
		return models.DecisionFood
	case containsAny(t, "travel", "trip", "visit"):
		return models.DecisionTravel
	}
	return "General"
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// History returns the chat transcript
func (c *ChatService) History(ctx context.Context) []models.ChatMessage {
	return c.users.ChatHistory(ctx)
}

func (c *ChatService) message(role, text, image string) models.ChatMessage {
	return models.ChatMessage{
		ID:        ulid.Make().String(),
		Role:      role,
		Text:      text,
		Image:     image,
		Timestamp: c.now().UnixMilli(),
	}
}

// Send answers text (and an optional inline image) in the context of the recent transcript.
// A model failure is answered with a fallback text and logged as Failed. An answer
// overtaken by a newer Send of the same profile is dropped with ai.ErrStale.
func (c *ChatService) Send(ctx context.Context, text, image string) (ChatReply, error) {
	user := c.users.User(ctx)
	history := c.users.ChatHistory(ctx)
	category := DetectCategory(text)

	if err := c.users.AppendChat(ctx, c.message(models.RoleUser, text, image)); err != nil {
		return ChatReply{}, err
	}

	key := c.profileID + ":chat"
	reqCtx, token, done := c.requests.Begin(ctx, key)
	defer done()

	answer, err := c.gateway.Chat(reqCtx, ai.ChatRequest{
		Text:    text,
		History: history,
		Image:   image,
		Profile: &user,
		Vibe:    c.users.Vibe(ctx),
	})
	if !c.requests.Current(key, token) {
		return ChatReply{}, ai.ErrStale
	}

	status := models.LogSuccess
	if err != nil {
		log.Printf("Chat failed for profile %s: %v", c.profileID, err)
		answer = ai.FallbackText(err)
		status = models.LogFailed
	}

	reply := ChatReply{
		Message:  c.message(models.RoleModel, answer, ""),
		Category: category,
		Status:   status,
	}
	if err := c.users.AppendChat(ctx, reply.Message); err != nil {
		return reply, err
	}
	if err := c.storage.AddLog(ctx, user.Username, category, text, status); err != nil {
		return reply, err
	}
	return reply, nil
}

// ClearHistory drops the chat transcript
func (c *ChatService) ClearHistory(ctx context.Context) error {
	return c.users.ClearChat(ctx)
}

// Analyze asks for a review of a photo of the given kind. Failures read as the fallback text.
func (c *ChatService) Analyze(ctx context.Context, kind, userContext, image string) (string, error) {
	key := c.profileID + ":analyze"
	reqCtx, token, done := c.requests.Begin(ctx, key)
	defer done()

	analysis, err := c.gateway.Chat(reqCtx, ai.ChatRequest{
		Text:  ai.AnalysisPrompt(kind, userContext),
		Image: image,
	})
	if !c.requests.Current(key, token) {
		return "", ai.ErrStale
	}
	if err != nil {
		log.Printf("Photo analysis failed for profile %s: %v", c.profileID, err)
		return ai.FallbackText(err), nil
	}
	return analysis, nil
}

// SaveAnalysis keeps a photo analysis as a saved decision
func (c *ChatService) SaveAnalysis(ctx context.Context, analysis, image string) (models.SavedDecision, error) {
	summary := []rune(analysis)
	if len(summary) > 100 {
		summary = summary[:100]
	}

	return c.users.SaveDecision(ctx, models.SavedDecision{
		Title:       "Photo Analysis",
		Category:    models.DecisionOther,
		Summary:     string(summary) + "...",
		FullDetails: analysis,
		Image:       image,
	})
}

// Compare scores two options. Any failure returns a nil comparison with the error.
func (c *ChatService) Compare(ctx context.Context, a, b string) (*models.Comparison, error) {
	key := c.profileID + ":compare"
	reqCtx, token, done := c.requests.Begin(ctx, key)
	defer done()

	cmp, err := c.gateway.Compare(reqCtx, a, b)
	if !c.requests.Current(key, token) {
		return nil, ai.ErrStale
	}
	if err != nil {
		if !errors.Is(err, ai.ErrNotConfigured) {
			log.Printf("Comparison of %q and %q failed: %v", a, b, err)
		}
		return nil, err
	}
	return cmp, nil
}
