package models

// Activity outcomes
const (
	LogSuccess = "Success"
	LogFailed  = "Failed"
)

// ActivityLog records one AI interaction for the admin dashboard
type ActivityLog struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// Stats summarizes the shared tables for the admin dashboard
type Stats struct {
	Users      int        `json:"users"`
	Active     int        `json:"active"`
	Banned     int        `json:"banned"`
	Logs       int        `json:"logs"`
	Failed     int        `json:"failed"`
	Feedback   int        `json:"feedback"`
	Unresolved int        `json:"unresolved"`
	Categories []Category `json:"categories"`
}
