package services

import (
	"encoding/json"
	"log"

	"github.com/localnerve/decideforme/data"
	"github.com/localnerve/decideforme/internal/models"
)

// Seed data is decoded on every use so callers may mutate what they get

func seedUsers() []models.UserAccount {
	return decodeSeed[models.UserAccount]("users", data.SeedUsers)
}

func seedCategories() []models.Category {
	return decodeSeed[models.Category]("categories", data.SeedCategories)
}

func seedQuiz() []models.QuizQuestion {
	return decodeSeed[models.QuizQuestion]("quiz", data.SeedQuiz)
}

func decodeSeed[T any](name string, raw []byte) []T {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Embedded %s seed is invalid: %v", name, err)
		return []T{}
	}
	return out
}

// guestUser is the session profile when nobody has signed in
func guestUser() models.UserAccount {
	return models.UserAccount{
		ID:       "1",
		Name:     "Guest User",
		Username: "@guest",
		Email:    "guest@decideforme.app",
		Preferences: &models.Preferences{
			Style:  "Casual",
			Budget: "Medium",
			Food:   "Everything",
			Travel: "Relaxing",
		},
	}
}

// adminUser is the session profile written on admin sign in
func adminUser() models.UserAccount {
	return models.UserAccount{
		ID:       "admin",
		Name:     "Admin User",
		Username: "@admin",
		Email:    "admin@decideforme.app",
		Preferences: &models.Preferences{
			Style:  "N/A",
			Budget: "N/A",
			Food:   "N/A",
		},
	}
}
