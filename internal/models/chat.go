package models

// Chat roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of the decision chat
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ComparisonPoint scores both options on one subject, 0 to 100
type ComparisonPoint struct {
	Subject  string  `json:"subject"`
	A        float64 `json:"A"`
	B        float64 `json:"B"`
	FullMark float64 `json:"fullMark"`
}

// Comparison is the structured answer of a two-option comparison
type Comparison struct {
	Analysis string            `json:"analysis"`
	Data     []ComparisonPoint `json:"data"`
}
