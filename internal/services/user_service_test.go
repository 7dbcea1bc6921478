package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/models"
)

func TestUserDefaultsToGuest(t *testing.T) {
	env := newTestEnv(t)

	user := env.session.Users.User(context.Background())
	if user.Username != "@guest" || user.Preferences.Travel != "Relaxing" {
		t.Errorf("Expected the guest profile, got %+v", user)
	}
}

func TestProfileUpdateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	setPassword(t, env, "2", "pw")
	if result, err := env.session.Auth.Login(ctx, "sarah@example.com", "pw"); err != nil || result != LoginUser {
		t.Fatalf("Login failed: %s %v", result, err)
	}

	user := env.session.Users.User(ctx)
	user.Name = "Sarah C."
	user.Age = "29"
	user.Preferences = &models.Preferences{Style: "Edgy", Budget: "High", Food: "Vegan"}

	env.events.reset()
	if err := env.session.Users.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if got := env.session.Users.User(ctx); got.Name != "Sarah C." || got.Age != "29" {
		t.Errorf("Expected session updated, got %+v", got)
	}
	stored := env.session.Storage.Users(ctx)[1]
	if stored.Name != "Sarah C." || stored.Age != "29" || stored.Preferences.Style != "Edgy" {
		t.Errorf("Expected account merged, got %+v", stored)
	}
	if stored.JoinDate != "2023-11-05" || stored.Status != models.StatusActive {
		t.Errorf("Expected account-only fields preserved, got %+v", stored)
	}
	if env.events.count(events.UserChange) != 1 || env.events.count(events.SyncUsers) != 1 {
		t.Errorf("Unexpected broadcasts %v", env.events.topics)
	}
}

func TestSavedDecisions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	users := env.session.Users

	first, err := users.SaveDecision(ctx, models.SavedDecision{Title: "Dinner", Category: models.DecisionFood, Summary: "Sushi"})
	if err != nil {
		t.Fatalf("SaveDecision failed: %v", err)
	}
	if first.ID == "" || first.Date != "3/7/2026" {
		t.Errorf("Expected id and date filled, got %+v", first)
	}
	if _, err := users.SaveDecision(ctx, models.SavedDecision{ID: "fixed", Title: "Trip", Category: models.DecisionTravel}); err != nil {
		t.Fatalf("SaveDecision failed: %v", err)
	}

	saved := users.SavedDecisions(ctx)
	if len(saved) != 2 || saved[0].ID != "fixed" {
		t.Fatalf("Expected newest first, got %+v", saved)
	}

	if err := users.DeleteDecision(ctx, first.ID); err != nil {
		t.Fatalf("DeleteDecision failed: %v", err)
	}
	if err := users.DeleteDecision(ctx, "missing"); err != nil {
		t.Fatalf("DeleteDecision of missing id failed: %v", err)
	}
	if saved = users.SavedDecisions(ctx); len(saved) != 1 || saved[0].ID != "fixed" {
		t.Errorf("Expected only the trip left, got %+v", saved)
	}
	if n := env.events.count(events.DataChange); n != 4 {
		t.Errorf("Expected a data change per mutation, got %d", n)
	}
}

func TestSpinHistoryKeepsNewestFive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := env.session.Users.SaveSpinResult(ctx, fmt.Sprintf("option %d", i)); err != nil {
			t.Fatalf("SaveSpinResult failed: %v", err)
		}
	}

	history := env.session.Users.SpinHistory(ctx)
	if len(history) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(history))
	}
	if history[0].Result != "option 6" || history[4].Result != "option 2" {
		t.Errorf("Expected newest first, got %+v", history)
	}
	if history[0].Date != "3/7/2026" {
		t.Errorf("Unexpected date %s", history[0].Date)
	}
}

func TestChatHistoryKeepsNewestFifty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	users := env.session.Users

	for i := 0; i < 52; i++ {
		if err := users.AppendChat(ctx, models.ChatMessage{ID: fmt.Sprint(i), Role: models.RoleUser}); err != nil {
			t.Fatalf("AppendChat failed: %v", err)
		}
	}

	history := users.ChatHistory(ctx)
	if len(history) != 50 || history[0].ID != "2" || history[49].ID != "51" {
		t.Errorf("Expected the newest 50 oldest first, got %d from %s", len(history), history[0].ID)
	}

	if err := users.ClearChat(ctx); err != nil {
		t.Fatalf("ClearChat failed: %v", err)
	}
	if history = users.ChatHistory(ctx); len(history) != 0 {
		t.Errorf("Expected empty history, got %d", len(history))
	}
}
