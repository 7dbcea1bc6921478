package services

import (
	"context"

	"github.com/localnerve/decideforme/internal/metrics"
	"github.com/localnerve/decideforme/internal/models"
)

// DefaultVibe is the result of an empty quiz
const DefaultVibe = "Classy"

type vibeProfile struct {
	description string
	color       string
}

var vibeProfiles = map[string]vibeProfile{
	"Classy":   {"You love timeless elegance. Less is more for you.", "from-amber-200 to-amber-500"},
	"Trendy":   {"You live for the moment. Bold choices define you.", "from-fuchsia-500 to-purple-600"},
	"Grounded": {"You value comfort and authenticity. Nature is your muse.", "from-emerald-400 to-teal-600"},
	"Creative": {"You see the world differently. Unique and colorful.", "from-orange-400 to-pink-500"},
}

var unknownVibe = vibeProfile{
	description: "You have a unique style that blends everything!",
	color:       "from-blue-400 to-purple-500",
}

// TopVibe returns the most voted tag. On a tie the tag voted for first wins, not the
// last tied tag a reduce over insertion order would pick.
func TopVibe(answers []string) string {
	if len(answers) == 0 {
		return DefaultVibe
	}

	counts := make(map[string]int, len(answers))
	var order []string
	for _, vibe := range answers {
		if _, seen := counts[vibe]; !seen {
			order = append(order, vibe)
		}
		counts[vibe]++
	}

	top := order[0]
	for _, vibe := range order[1:] {
		if counts[vibe] > counts[top] {
			top = vibe
		}
	}
	return top
}

// ScoreQuiz maps a list of voted tags to its result
func ScoreQuiz(answers []string) models.QuizResult {
	vibe := TopVibe(answers)
	profile, ok := vibeProfiles[vibe]
	if !ok {
		profile = unknownVibe
	}
	return models.QuizResult{
		Vibe:        vibe,
		Description: profile.description,
		Color:       profile.color,
	}
}

// QuizService serves the quiz bank and caches scored results in the session
type QuizService struct {
	storage *StorageService
	users   *UserService
}

// NewQuizService creates the quiz flow
func NewQuizService(storage *StorageService, users *UserService) *QuizService {
	return &QuizService{storage: storage, users: users}
}

// Questions returns the current quiz bank
func (q *QuizService) Questions(ctx context.Context) []models.QuizQuestion {
	return q.storage.QuizQuestions(ctx)
}

// Submit scores answers and caches the result and vibe
func (q *QuizService) Submit(ctx context.Context, answers []string) (models.QuizResult, error) {
	result := ScoreQuiz(answers)
	if err := q.users.SaveQuizResult(ctx, result); err != nil {
		return result, err
	}
	metrics.QuizSubmissions.WithLabelValues(result.Vibe).Inc()
	return result, nil
}

// Result returns the cached result, nil before the quiz is taken
func (q *QuizService) Result(ctx context.Context) *models.QuizResult {
	return q.users.QuizResult(ctx)
}
