// storage_service.go
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

package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/oklog/ulid/v2"
)

// StorageService owns the shared, admin-visible tables: accounts, activity logs,
// categories, the quiz bank and feedback.
//
// Getters never fail. A missing or unparseable table reads as its seed data
// (accounts, categories, quiz) or as an empty list (logs, feedback).
// Mutators report only backing store failures; not-found and duplicate
// conditions are silent no-ops.
type StorageService struct {
	store  kvstore.Store
	events events.Publisher
	now    func() time.Time

	// serializes read-modify-write cycles of this profile
	mu sync.Mutex
}

// NewStorageService creates the shared table accessor over store
func NewStorageService(store kvstore.Store, pub events.Publisher, now func() time.Time) *StorageService {
	if now == nil {
		now = time.Now
	}
	return &StorageService{store: store, events: pub, now: now}
}

// mutate runs fn under the write lock, then publishes the topics fn reports.
// Topics are published even when fn fails after a partial write.
func (s *StorageService) mutate(fn func() ([]events.Topic, error)) error {
	s.mu.Lock()
	topics, err := fn()
	s.mu.Unlock()

	for _, topic := range topics {
		s.events.Publish(topic)
	}
	return err
}

// Users returns every account, or the two demo accounts when none are stored
func (s *StorageService) Users(ctx context.Context) []models.UserAccount {
	return readSlot(ctx, s.store, KeyUsers, seedUsers)
}

// SaveUser inserts candidate unless an account already uses its email.
// Inserted accounts are Active and joined today.
func (s *StorageService) SaveUser(ctx context.Context, candidate models.UserAccount) error {
	return s.mutate(func() ([]events.Topic, error) {
		users := s.Users(ctx)
		for _, u := range users {
			if u.Email == candidate.Email {
				return nil, nil
			}
		}

		candidate.Status = models.StatusActive
		candidate.JoinDate = s.now().UTC().Format(joinDateLayout)
		users = append(users, candidate)

		if err := writeSlot(ctx, s.store, KeyUsers, users); err != nil {
			return nil, err
		}
		return []events.Topic{events.SyncUsers}, nil
	})
}

// UpdateUserStatus sets the status of account id. Broadcasts even when id is unknown.
func (s *StorageService) UpdateUserStatus(ctx context.Context, id, status string) error {
	return s.mutate(func() ([]events.Topic, error) {
		users := s.Users(ctx)
		for i := range users {
			if users[i].ID == id {
				users[i].Status = status
			}
		}

		if err := writeSlot(ctx, s.store, KeyUsers, users); err != nil {
			return nil, err
		}
		return []events.Topic{events.SyncUsers}, nil
	})
}

// UpdateUserDetails merges the present fields of upd over the matching account.
// The account is matched by id, then by email. No match is a no-op.
func (s *StorageService) UpdateUserDetails(ctx context.Context, upd models.UserUpdate) error {
	return s.mutate(func() ([]events.Topic, error) {
		users := s.Users(ctx)

		index := findUser(users, func(u models.UserAccount) bool {
			return upd.ID != nil && u.ID == *upd.ID
		})
		if index < 0 {
			index = findUser(users, func(u models.UserAccount) bool {
				return upd.Email != nil && u.Email == *upd.Email
			})
		}
		if index < 0 {
			return nil, nil
		}

		users[index] = users[index].Apply(upd)
		if err := writeSlot(ctx, s.store, KeyUsers, users); err != nil {
			return nil, err
		}
		return []events.Topic{events.SyncUsers}, nil
	})
}

func findUser(users []models.UserAccount, match func(models.UserAccount) bool) int {
	for i, u := range users {
		if match(u) {
			return i
		}
	}
	return -1
}

// DeleteUser removes account id. Saved decisions and logs of the account are kept.
func (s *StorageService) DeleteUser(ctx context.Context, id string) error {
	return s.mutate(func() ([]events.Topic, error) {
		users := s.Users(ctx)
		kept := make([]models.UserAccount, 0, len(users))
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}

		if err := writeSlot(ctx, s.store, KeyUsers, kept); err != nil {
			return nil, err
		}
		return []events.Topic{events.SyncUsers}, nil
	})
}

// Logs returns the activity log, newest first
func (s *StorageService) Logs(ctx context.Context) []models.ActivityLog {
	return readSlot(ctx, s.store, KeyLogs, emptyList[models.ActivityLog]())
}

// AddLog prepends an activity entry and keeps the newest 50. The first category
// whose name contains category (case-sensitive) gets its usage count bumped.
func (s *StorageService) AddLog(ctx context.Context, user, category, prompt, status string) error {
	return s.mutate(func() ([]events.Topic, error) {
		entry := models.ActivityLog{
			ID:       ulid.Make().String(),
			User:     user,
			Category: category,
			Prompt:   truncatePrompt(prompt),
			Time:     s.now().Format(logTimeLayout),
			Status:   status,
		}

		logs := append([]models.ActivityLog{entry}, s.Logs(ctx)...)
		if len(logs) > maxLogs {
			logs = logs[:maxLogs]
		}
		if err := writeSlot(ctx, s.store, KeyLogs, logs); err != nil {
			return nil, err
		}
		topics := []events.Topic{events.SyncLogs}

		cats := s.Categories(ctx)
		for i := range cats {
			if strings.Contains(cats[i].Name, category) {
				cats[i].Count++
				if err := writeSlot(ctx, s.store, KeyCategories, cats); err != nil {
					return topics, err
				}
				topics = append(topics, events.SyncContent)
				break
			}
		}

		return topics, nil
	})
}

// truncatePrompt keeps the first 30 characters and always marks the cut
func truncatePrompt(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > promptPreview {
		runes = runes[:promptPreview]
	}
	return string(runes) + "..."
}

// Categories returns the decision categories, or the seed set
func (s *StorageService) Categories(ctx context.Context) []models.Category {
	return readSlot(ctx, s.store, KeyCategories, seedCategories)
}

// CategoriesVersioned returns the categories with the version of the stored table
func (s *StorageService) CategoriesVersioned(ctx context.Context) ([]models.Category, uint64) {
	return readVersionedSlot(ctx, s.store, KeyCategories, seedCategories)
}

// SaveCategories replaces the category table
func (s *StorageService) SaveCategories(ctx context.Context, categories []models.Category) error {
	return s.replace(ctx, KeyCategories, categories, events.SyncContent)
}

// ReplaceCategories replaces the category table if it is still at version
func (s *StorageService) ReplaceCategories(ctx context.Context, categories []models.Category, version uint64) (uint64, error) {
	return s.replaceVersioned(ctx, KeyCategories, categories, version, events.SyncContent)
}

// QuizQuestions returns the quiz bank, or the seed questions
func (s *StorageService) QuizQuestions(ctx context.Context) []models.QuizQuestion {
	return readSlot(ctx, s.store, KeyQuiz, seedQuiz)
}

// QuizQuestionsVersioned returns the quiz bank with the version of the stored table
func (s *StorageService) QuizQuestionsVersioned(ctx context.Context) ([]models.QuizQuestion, uint64) {
	return readVersionedSlot(ctx, s.store, KeyQuiz, seedQuiz)
}

// SaveQuizQuestions replaces the quiz bank
func (s *StorageService) SaveQuizQuestions(ctx context.Context, questions []models.QuizQuestion) error {
	return s.replace(ctx, KeyQuiz, questions, events.SyncContent)
}

// ReplaceQuizQuestions replaces the quiz bank if it is still at version
func (s *StorageService) ReplaceQuizQuestions(ctx context.Context, questions []models.QuizQuestion, version uint64) (uint64, error) {
	return s.replaceVersioned(ctx, KeyQuiz, questions, version, events.SyncContent)
}

// Feedback returns the feedback queue, newest first
func (s *StorageService) Feedback(ctx context.Context) []models.FeedbackItem {
	return readSlot(ctx, s.store, KeyFeedback, emptyList[models.FeedbackItem]())
}

// FeedbackVersioned returns the feedback queue with the version of the stored table
func (s *StorageService) FeedbackVersioned(ctx context.Context) ([]models.FeedbackItem, uint64) {
	return readVersionedSlot(ctx, s.store, KeyFeedback, emptyList[models.FeedbackItem]())
}

// AddFeedback prepends a New feedback item
func (s *StorageService) AddFeedback(ctx context.Context, user, msg, feedbackType string) error {
	return s.mutate(func() ([]events.Topic, error) {
		item := models.FeedbackItem{
			ID:     ulid.Make().String(),
			User:   user,
			Msg:    msg,
			Type:   feedbackType,
			Date:   "Just now",
			Status: models.FeedbackStatusNew,
		}

		feed := append([]models.FeedbackItem{item}, s.Feedback(ctx)...)
		if err := writeSlot(ctx, s.store, KeyFeedback, feed); err != nil {
			return nil, err
		}
		return []events.Topic{events.SyncFeedback}, nil
	})
}

// UpdateFeedback replaces the feedback queue, used for status edits and deletions alike
func (s *StorageService) UpdateFeedback(ctx context.Context, feedback []models.FeedbackItem) error {
	return s.replace(ctx, KeyFeedback, feedback, events.SyncFeedback)
}

// ReplaceFeedback replaces the feedback queue if it is still at version
func (s *StorageService) ReplaceFeedback(ctx context.Context, feedback []models.FeedbackItem, version uint64) (uint64, error) {
	return s.replaceVersioned(ctx, KeyFeedback, feedback, version, events.SyncFeedback)
}

func (s *StorageService) replace(ctx context.Context, key string, value interface{}, topic events.Topic) error {
	return s.mutate(func() ([]events.Topic, error) {
		if err := writeSlot(ctx, s.store, key, value); err != nil {
			return nil, err
		}
		return []events.Topic{topic}, nil
	})
}

func (s *StorageService) replaceVersioned(ctx context.Context, key string, value interface{}, version uint64, topic events.Topic) (uint64, error) {
	var newVersion uint64
	err := s.mutate(func() ([]events.Topic, error) {
		var err error
		if newVersion, err = writeVersionedSlot(ctx, s.store, key, value, version); err != nil {
			return nil, err
		}
		return []events.Topic{topic}, nil
	})
	return newVersion, err
}

// ContentVersions reports the stored version of each table an admin edits with a version check.
// A table that was never written is at version 0.
func (s *StorageService) ContentVersions(ctx context.Context) map[string]uint64 {
	versions := make(map[string]uint64, 3)
	for _, key := range []string{KeyCategories, KeyQuiz, KeyFeedback} {
		_, version, _, err := s.store.GetVersioned(ctx, key)
		if err != nil {
			log.Printf("Failed to read version of %s: %v", key, err)
		}
		versions[key] = version
	}
	return versions
}

// Stats summarizes the shared tables for the admin dashboard
func (s *StorageService) Stats(ctx context.Context) models.Stats {
	stats := models.Stats{Categories: s.Categories(ctx)}

	for _, u := range s.Users(ctx) {
		stats.Users++
		if u.IsBanned() {
			stats.Banned++
		} else {
			stats.Active++
		}
	}
	for _, l := range s.Logs(ctx) {
		stats.Logs++
		if l.Status == models.LogFailed {
			stats.Failed++
		}
	}
	for _, f := range s.Feedback(ctx) {
		stats.Feedback++
		if f.Status != models.FeedbackStatusResolved {
			stats.Unresolved++
		}
	}

	return stats
}
