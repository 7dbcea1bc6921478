package services

// Storage keys. The names are part of the sync contract between the user and admin views.
const (
	KeyUsers      = "dfm_users_db"
	KeyLogs       = "dfm_activity_logs"
	KeyCategories = "dfm_categories"
	KeyQuiz       = "dfm_quiz_questions"
	KeyFeedback   = "dfm_feedbacks"

	KeyAuthenticated      = "isAuthenticated"
	KeyAdminAuthenticated = "isAdminAuthenticated"
	KeyUser               = "dfm_user"
	KeySavedDecisions     = "dfm_saved_decisions"
	KeySpinHistory        = "dfm_spin_history"
	KeyVibe               = "user_vibe"
	KeyQuizResult         = "quizResult"
	KeySpinRotation       = "dfm_spin_rotation"
	KeyChatHistory        = "dfm_chat_history"
)

// Caps and formats
const (
	maxLogs        = 50
	maxSpinHistory = 5
	maxChatHistory = 50
	promptPreview  = 30

	joinDateLayout  = "2006-01-02"
	shortDateLayout = "1/2/2006"
	logTimeLayout   = "3:04:05 PM"
)
