package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/localnerve/decideforme/internal/models"
)

func TestChatPromptKeepsLastFiveTurns(t *testing.T) {
	var history []models.ChatMessage
	for i := 1; i <= 7; i++ {
		role := models.RoleUser
		if i%2 == 0 {
			role = models.RoleModel
		}
		history = append(history, models.ChatMessage{Role: role, Text: fmt.Sprintf("turn %d", i)})
	}

	prompt := ChatPrompt(ChatRequest{Text: "What should I wear?", History: history})

	if !strings.HasPrefix(prompt, Persona) {
		t.Error("Expected prompt to open with the persona")
	}
	if strings.Contains(prompt, "turn 2") {
		t.Error("Expected turns older than the last five to be dropped")
	}
	if !strings.Contains(prompt, "User: turn 3\nAI: turn 4\nUser: turn 5\nAI: turn 6\nUser: turn 7") {
		t.Errorf("Expected the last five turns in order, got:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "\n\nUser Question: What should I wear?") {
		t.Errorf("Expected the question last, got:\n%s", prompt)
	}
}

func TestChatPromptCarriesProfileAndVibe(t *testing.T) {
	profile := &models.UserAccount{
		Name:        "Alex Johnson",
		Preferences: &models.Preferences{Style: "Casual", Budget: "Medium", Food: "Everything"},
	}

	prompt := ChatPrompt(ChatRequest{Text: "Dinner?", Profile: profile, Vibe: "Trendy"})

	for _, want := range []string{
		"Name: Alex Johnson",
		"Preferences: style Casual, budget Medium, food Everything, travel N/A",
		"Vibe: Trendy",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in prompt:\n%s", want, prompt)
		}
	}

	bare := ChatPrompt(ChatRequest{Text: "Dinner?"})
	if strings.Contains(bare, "User Profile") {
		t.Error("Expected no profile section without a profile or vibe")
	}
}

func TestAnalysisPrompt(t *testing.T) {
	face := AnalysisPrompt(PhotoFace, "")
	if !strings.HasPrefix(face, "Analyze this face photo.") || strings.Contains(face, "User Context") {
		t.Errorf("Unexpected face prompt %q", face)
	}

	outfit := AnalysisPrompt(PhotoOutfit, "job interview")
	if !strings.HasSuffix(outfit, " \nUser Context: \"job interview\"") {
		t.Errorf("Expected user context suffix, got %q", outfit)
	}

	if AnalysisPrompt("Pets", "") != generalAnalysisPrompt+" " {
		t.Error("Expected unknown kinds to use the general prompt")
	}
}

func TestComparePromptListsSubjects(t *testing.T) {
	prompt := ComparePrompt("Paris", "Rome")
	if !strings.Contains(prompt, `Compare "Paris" and "Rome"`) {
		t.Errorf("Expected both topics, got:\n%s", prompt)
	}
	for _, subject := range CompareSubjects {
		if !strings.Contains(prompt, `"subject": "`+subject+`"`) {
			t.Errorf("Expected subject %s in prompt", subject)
		}
	}
}

func TestParseDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	mimeType, data, err := ParseDataURI("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("ParseDataURI failed: %v", err)
	}
	if mimeType != "image/png" || string(data) != "png-bytes" {
		t.Errorf("Unexpected result %s %q", mimeType, data)
	}

	mimeType, data, err = ParseDataURI(payload)
	if err != nil || mimeType != "image/jpeg" || string(data) != "png-bytes" {
		t.Errorf("Expected bare payload as jpeg, got %s %q %v", mimeType, data, err)
	}

	if _, _, err := ParseDataURI("data:image/png;base64,***"); err == nil {
		t.Error("Expected error for invalid base64")
	}
}

func TestParseComparison(t *testing.T) {
	fenced := "```json\n{\"analysis\":\"Rome wins on vibe\",\"data\":[{\"subject\":\"Price\",\"A\":40,\"B\":120}]}\n```"

	cmp, err := ParseComparison(fenced)
	if err != nil {
		t.Fatalf("ParseComparison failed: %v", err)
	}
	if cmp.Analysis != "Rome wins on vibe" || len(cmp.Data) != 1 {
		t.Fatalf("Unexpected comparison %+v", cmp)
	}
	if cmp.Data[0].B != 100 || cmp.Data[0].FullMark != 100 {
		t.Errorf("Expected scores clamped to 100 with fullMark 100, got %+v", cmp.Data[0])
	}

	for _, bad := range []string{"", "not json", `{"analysis":"x","data":[]}`} {
		if _, err := ParseComparison(bad); !errors.Is(err, ErrMalformedComparison) {
			t.Errorf("Expected ErrMalformedComparison for %q, got %v", bad, err)
		}
	}
}

func TestUnconfiguredGateway(t *testing.T) {
	gw, err := New(context.Background(), "", "gemini-3-flash-preview", 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = gw.Chat(context.Background(), ChatRequest{Text: "hi"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
	if FallbackText(err) != MissingKeyMessage {
		t.Errorf("Expected missing key message, got %s", FallbackText(err))
	}
	if FallbackText(errors.New("boom")) != ChatFailedMessage {
		t.Error("Expected generic failure message")
	}
	if _, err := gw.Compare(context.Background(), "a", "b"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured from Compare, got %v", err)
	}
}

func TestRequestsSupersede(t *testing.T) {
	r := NewRequests()

	first, firstToken, firstDone := r.Begin(context.Background(), "p1:chat")
	second, secondToken, secondDone := r.Begin(context.Background(), "p1:chat")
	other, otherToken, otherDone := r.Begin(context.Background(), "p1:compare")
	defer otherDone()

	if first.Err() == nil {
		t.Error("Expected the superseded request to be cancelled")
	}
	if second.Err() != nil || other.Err() != nil {
		t.Error("Expected the latest requests to stay live")
	}
	if r.Current("p1:chat", firstToken) {
		t.Error("Expected the first token to be stale")
	}
	if !r.Current("p1:chat", secondToken) || !r.Current("p1:compare", otherToken) {
		t.Error("Expected the latest tokens to be current")
	}

	firstDone()
	if !r.Current("p1:chat", secondToken) {
		t.Error("Expected finishing a stale request to leave the latest one alone")
	}

	secondDone()
	if second.Err() == nil {
		t.Error("Expected done to cancel the request context")
	}
	if r.Current("p1:chat", secondToken) {
		t.Error("Expected no current request after done")
	}
}
