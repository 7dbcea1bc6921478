// gateway.go
//
// DecideForMe decision assistant data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of decideforme.
// decideforme is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// decideforme is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with decideforme.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/localnerve/decideforme/internal/metrics"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/utils"
	"google.golang.org/genai"
)

var (
	// ErrNotConfigured is returned when no API key is set
	ErrNotConfigured = errors.New("generative model API key is not configured")
	// ErrMalformedComparison is returned when a comparison answer is not the expected JSON
	ErrMalformedComparison = errors.New("malformed comparison")
	// ErrStale is returned for an answer superseded by a newer request of the same kind
	ErrStale = errors.New("request superseded")
)

// User-facing fallback texts
const (
	MissingKeyMessage    = "API key is missing. Please configure the API_KEY environment variable."
	ChatFailedMessage    = "Oops! My brain froze. Please try again later."
	EmptyTextMessage     = "I'm having trouble thinking right now."
	EmptyImageMessage    = "I couldn't generate a response based on that image."
	CompareFailedMessage = "Could not compare those. Try different topics!"
)

// FallbackText is the chat text shown in place of an answer that failed with err
func FallbackText(err error) string {
	if errors.Is(err, ErrNotConfigured) {
		return MissingKeyMessage
	}
	return ChatFailedMessage
}

// ChatRequest is one chat turn with its context
type ChatRequest struct {
	Text    string
	History []models.ChatMessage
	Image   string // optional data URI or bare base64 payload
	Profile *models.UserAccount
	Vibe    string
}

// Gateway is the generative model boundary
type Gateway interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
	Compare(ctx context.Context, a, b string) (*models.Comparison, error)
	Ping(ctx context.Context) error
}

// APIHost is the Gemini API endpoint probed by health checks
const APIHost = "https://generativelanguage.googleapis.com"

// GenAI is a Gateway backed by the Gemini API
type GenAI struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New returns a Gemini backed gateway, or a gateway that fails every call with
// ErrNotConfigured when apiKey is empty
func New(ctx context.Context, apiKey, model string, timeout time.Duration) (Gateway, error) {
	if apiKey == "" {
		log.Printf("API_KEY is not set, AI features will answer with a configuration notice")
		return Unconfigured{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAI{client: client, model: model, timeout: timeout}, nil
}

// Chat answers a chat turn, optionally about one inline image
func (g *GenAI) Chat(ctx context.Context, req ChatRequest) (string, error) {
	prompt := ChatPrompt(req)

	var contents []*genai.Content
	empty := EmptyTextMessage
	if req.Image != "" {
		mimeType, data, err := ParseDataURI(req.Image)
		if err != nil {
			return "", err
		}
		contents = []*genai.Content{genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser)}
		empty = EmptyImageMessage
	} else {
		contents = genai.Text(prompt)
	}

	text, err := g.generate(ctx, "chat", contents, nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return empty, nil
	}
	return text, nil
}

// Compare scores a against b in JSON mode
func (g *GenAI) Compare(ctx context.Context, a, b string) (*models.Comparison, error) {
	text, err := g.generate(ctx, "compare", genai.Text(ComparePrompt(a, b)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	return ParseComparison(text)
}

func (g *GenAI) generate(ctx context.Context, feature string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	metrics.AIDuration.WithLabelValues(feature).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequests.WithLabelValues(feature, "error").Inc()
		log.Printf("Gemini API error (%s): %v", feature, err)
		return "", fmt.Errorf("%s request failed: %w", feature, err)
	}

	metrics.AIRequests.WithLabelValues(feature, "ok").Inc()
	return resp.Text(), nil
}

// Ping checks that the Gemini API host is reachable
func (g *GenAI) Ping(ctx context.Context) error {
	return utils.PingService(ctx, APIHost)
}

// Unconfigured is the Gateway used without an API key
type Unconfigured struct{}

func (Unconfigured) Chat(context.Context, ChatRequest) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Compare(context.Context, string, string) (*models.Comparison, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Ping(context.Context) error {
	return ErrNotConfigured
}
