package models

// Category is an admin-managed decision category with its usage counter
type Category struct {
	ID    int    `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count"`
}

// QuizOption is one answer of a quiz question, tagged with the vibe it votes for
type QuizOption struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
	Vibe  string `json:"vibe" validate:"required"`
}

// QuizQuestion is a question of the quiz bank
type QuizQuestion struct {
	ID       int          `json:"id" validate:"required"`
	Question string       `json:"question" validate:"required"`
	Options  []QuizOption `json:"options" validate:"required,min=1,dive"`
}

// QuizResult is derived from a set of answers and cached in the session
type QuizResult struct {
	Vibe        string `json:"vibe"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Feedback types and states
const (
	FeedbackTypeFeedback  = "Feedback"
	FeedbackTypeBugReport = "Bug Report"

	FeedbackStatusNew      = "New"
	FeedbackStatusResolved = "Resolved"
)

// FeedbackItem is a message left by a user for the admins
type FeedbackItem struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Msg    string `json:"msg"`
	Type   string `json:"type" validate:"omitempty,oneof=Feedback 'Bug Report'"`
	Date   string `json:"date"`
	Status string `json:"status" validate:"omitempty,oneof=New Resolved"`
}
