package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/models"
)

func TestUsersSeedWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	users := env.session.Storage.Users(context.Background())

	if len(users) != 2 {
		t.Fatalf("Expected 2 seeded users, got %d", len(users))
	}
	if users[0].Email != "alex@example.com" || users[1].Email != "sarah@example.com" {
		t.Errorf("Unexpected seed users %+v", users)
	}
	if users[0].Status != models.StatusActive || users[0].JoinDate != "2023-10-12" {
		t.Errorf("Unexpected seed fields %+v", users[0])
	}
}

func TestGettersDegradeOnCorruptData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	store := kvstore.WithPrefix(env.store, kvstore.ProfilePrefix("test-profile"))

	for _, key := range []string{KeyUsers, KeyLogs, KeyCategories, KeyQuiz, KeyFeedback} {
		if err := store.Set(ctx, key, "{not json"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	s := env.session.Storage
	if n := len(s.Users(ctx)); n != 2 {
		t.Errorf("Expected seed users, got %d", n)
	}
	if n := len(s.Categories(ctx)); n != 4 {
		t.Errorf("Expected seed categories, got %d", n)
	}
	if n := len(s.QuizQuestions(ctx)); n != 3 {
		t.Errorf("Expected seed quiz, got %d", n)
	}
	if logs := s.Logs(ctx); logs == nil || len(logs) != 0 {
		t.Errorf("Expected empty logs, got %v", logs)
	}
	if feed := s.Feedback(ctx); feed == nil || len(feed) != 0 {
		t.Errorf("Expected empty feedback, got %v", feed)
	}
}

func TestSaveUserDuplicateEmailIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	candidate := models.UserAccount{ID: "10", Name: "Kim", Username: "@kim", Email: "kim@example.com"}
	if err := s.SaveUser(ctx, candidate); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	candidate.ID = "11"
	if err := s.SaveUser(ctx, candidate); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	matches := 0
	var saved models.UserAccount
	for _, u := range s.Users(ctx) {
		if u.Email == "kim@example.com" {
			matches++
			saved = u
		}
	}
	if matches != 1 {
		t.Fatalf("Expected exactly one account, got %d", matches)
	}
	if saved.ID != "10" || saved.Status != models.StatusActive || saved.JoinDate != "2026-03-07" {
		t.Errorf("Unexpected stored account %+v", saved)
	}
	if n := env.events.count(events.SyncUsers); n != 1 {
		t.Errorf("Expected one sync-users broadcast for one insert, got %d", n)
	}
}

func TestUpdateUserStatusUnknownIDLeavesListUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	before := s.Users(ctx)
	if err := s.UpdateUserStatus(ctx, "nobody", models.StatusBanned); err != nil {
		t.Fatalf("UpdateUserStatus failed: %v", err)
	}
	if err := s.UpdateUserDetails(ctx, models.UserAccount{ID: "nobody", Email: "nobody@example.com", Name: "X"}.ProfileUpdate()); err != nil {
		t.Fatalf("UpdateUserDetails failed: %v", err)
	}

	if after := s.Users(ctx); !reflect.DeepEqual(before, after) {
		t.Errorf("Expected unchanged users, got %+v", after)
	}
	if n := env.events.count(events.SyncUsers); n != 1 {
		t.Errorf("Expected status update to broadcast once and details no-op to stay silent, got %d", n)
	}
}

func TestUpdateUserStatusBans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	if err := s.UpdateUserStatus(ctx, "2", models.StatusBanned); err != nil {
		t.Fatalf("UpdateUserStatus failed: %v", err)
	}
	users := s.Users(ctx)
	if users[1].Status != models.StatusBanned || users[0].Status != models.StatusActive {
		t.Errorf("Expected only Sarah banned, got %+v", users)
	}
}

func TestUpdateUserDetailsMatchesByEmailFallback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	name := "Sarah J. Connor"
	email := "sarah@example.com"
	id := "session-id"
	if err := s.UpdateUserDetails(ctx, models.UserUpdate{ID: &id, Email: &email, Name: &name}); err != nil {
		t.Fatalf("UpdateUserDetails failed: %v", err)
	}

	sarah := s.Users(ctx)[1]
	if sarah.Name != name || sarah.ID != id {
		t.Errorf("Expected merged name and id, got %+v", sarah)
	}
	if sarah.JoinDate != "2023-11-05" || sarah.Status != models.StatusActive {
		t.Errorf("Expected absent fields preserved, got %+v", sarah)
	}
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	if err := s.DeleteUser(ctx, "1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if err := s.DeleteUser(ctx, "1"); err != nil {
		t.Fatalf("DeleteUser of absent id failed: %v", err)
	}

	users := s.Users(ctx)
	if len(users) != 1 || users[0].ID != "2" {
		t.Errorf("Expected only Sarah left, got %+v", users)
	}
	if n := env.events.count(events.SyncUsers); n != 2 {
		t.Errorf("Expected a broadcast per delete call, got %d", n)
	}
}

func TestAddLogCapsAtFiftyNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	for i := 0; i < 55; i++ {
		if err := s.AddLog(ctx, "@alex", "General", fmt.Sprintf("prompt %d", i), models.LogSuccess); err != nil {
			t.Fatalf("AddLog failed: %v", err)
		}
	}

	logs := s.Logs(ctx)
	if len(logs) != 50 {
		t.Fatalf("Expected 50 logs, got %d", len(logs))
	}
	if logs[0].Prompt != "prompt 54..." || logs[49].Prompt != "prompt 5..." {
		t.Errorf("Expected newest first, got %s .. %s", logs[0].Prompt, logs[49].Prompt)
	}
	if logs[0].Time != "3:04:05 PM" {
		t.Errorf("Unexpected log time %s", logs[0].Time)
	}
	if n := env.events.count(events.SyncLogs); n != 55 {
		t.Errorf("Expected one sync-logs per AddLog, got %d", n)
	}
	if n := env.events.count(events.SyncContent); n != 0 {
		t.Errorf("Expected no content sync for an unmatched category, got %d", n)
	}
}

func TestAddLogTruncatesPrompt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	long := strings.Repeat("é", 40)
	if err := s.AddLog(ctx, "@alex", "Food", long, models.LogFailed); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}

	got := s.Logs(ctx)[0]
	if got.Prompt != strings.Repeat("é", 30)+"..." {
		t.Errorf("Expected 30 characters and an ellipsis, got %q", got.Prompt)
	}
	if got.Status != models.LogFailed || got.User != "@alex" {
		t.Errorf("Unexpected log %+v", got)
	}
}

func TestAddLogBumpsFirstMatchingCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	if err := s.AddLog(ctx, "@alex", "Food", "Where should we eat?", models.LogSuccess); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}
	if err := s.AddLog(ctx, "@alex", "food", "lowercase does not match", models.LogSuccess); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}

	cats := s.Categories(ctx)
	if cats[2].Name != "Food & Dining" || cats[2].Count != 211 {
		t.Errorf("Expected Food & Dining bumped once, got %+v", cats[2])
	}
	if n := env.events.count(events.SyncContent); n != 1 {
		t.Errorf("Expected one content sync, got %d", n)
	}
	if n := env.events.count(events.SyncLogs); n != 2 {
		t.Errorf("Expected two log syncs, got %d", n)
	}
}

func TestFeedbackLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	if err := s.AddFeedback(ctx, "@alex", "Love it", models.FeedbackTypeFeedback); err != nil {
		t.Fatalf("AddFeedback failed: %v", err)
	}
	if err := s.AddFeedback(ctx, "@sarah", "Spin wheel stuck", models.FeedbackTypeBugReport); err != nil {
		t.Fatalf("AddFeedback failed: %v", err)
	}

	feed := s.Feedback(ctx)
	if len(feed) != 2 || feed[0].User != "@sarah" {
		t.Fatalf("Expected newest first, got %+v", feed)
	}
	if feed[0].Status != models.FeedbackStatusNew || feed[0].Date != "Just now" || feed[0].ID == "" {
		t.Errorf("Unexpected new item %+v", feed[0])
	}

	feed[0].Status = models.FeedbackStatusResolved
	if err := s.UpdateFeedback(ctx, feed[:1]); err != nil {
		t.Fatalf("UpdateFeedback failed: %v", err)
	}
	feed = s.Feedback(ctx)
	if len(feed) != 1 || feed[0].Status != models.FeedbackStatusResolved {
		t.Errorf("Expected replaced list, got %+v", feed)
	}
	if n := env.events.count(events.SyncFeedback); n != 3 {
		t.Errorf("Expected a sync-feedback per call, got %d", n)
	}
}

func TestReplaceCategoriesVersioned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	_, version := s.CategoriesVersioned(ctx)
	if version != 0 {
		t.Fatalf("Expected version 0 before any write, got %d", version)
	}

	next := []models.Category{{ID: 1, Name: "Gifts", Count: 0}}
	newVersion, err := s.ReplaceCategories(ctx, next, 0)
	if err != nil || newVersion != 1 {
		t.Fatalf("Expected version 1, got %d %v", newVersion, err)
	}
	if _, err := s.ReplaceCategories(ctx, next, 0); !errors.Is(err, kvstore.ErrVersion) {
		t.Errorf("Expected ErrVersion for stale version, got %v", err)
	}

	cats, version := s.CategoriesVersioned(ctx)
	if version != 1 || len(cats) != 1 || cats[0].Name != "Gifts" {
		t.Errorf("Unexpected categories %+v at %d", cats, version)
	}
	if n := env.events.count(events.SyncContent); n != 1 {
		t.Errorf("Expected only the successful replace to broadcast, got %d", n)
	}
}

func TestSaveQuizQuestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	questions := s.QuizQuestions(ctx)[:1]
	if err := s.SaveQuizQuestions(ctx, questions); err != nil {
		t.Fatalf("SaveQuizQuestions failed: %v", err)
	}
	if got := s.QuizQuestions(ctx); len(got) != 1 || got[0].Question != "Pick a weekend activity:" {
		t.Errorf("Unexpected quiz %+v", got)
	}
	if env.events.total() != 1 || env.events.count(events.SyncContent) != 1 {
		t.Errorf("Expected exactly one sync-content, got %v", env.events.topics)
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	_ = s.UpdateUserStatus(ctx, "1", models.StatusBanned)
	_ = s.AddLog(ctx, "@alex", "General", "x", models.LogFailed)
	_ = s.AddFeedback(ctx, "@alex", "hi", models.FeedbackTypeFeedback)

	stats := s.Stats(ctx)
	if stats.Users != 2 || stats.Banned != 1 || stats.Active != 1 {
		t.Errorf("Unexpected user stats %+v", stats)
	}
	if stats.Logs != 1 || stats.Failed != 1 || stats.Feedback != 1 || stats.Unresolved != 1 {
		t.Errorf("Unexpected activity stats %+v", stats)
	}
	if len(stats.Categories) != 4 {
		t.Errorf("Expected categories in stats, got %d", len(stats.Categories))
	}
}

func TestContentVersions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.session.Storage

	if _, err := s.ReplaceFeedback(ctx, []models.FeedbackItem{}, 0); err != nil {
		t.Fatalf("ReplaceFeedback failed: %v", err)
	}
	if err := s.SaveCategories(ctx, s.Categories(ctx)); err != nil {
		t.Fatalf("SaveCategories failed: %v", err)
	}
	if err := s.SaveCategories(ctx, s.Categories(ctx)); err != nil {
		t.Fatalf("SaveCategories failed: %v", err)
	}

	versions := s.ContentVersions(ctx)
	if versions[KeyFeedback] != 1 || versions[KeyCategories] != 2 || versions[KeyQuiz] != 0 {
		t.Errorf("Unexpected versions %v", versions)
	}
}
