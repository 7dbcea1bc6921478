package models

// Decision categories
const (
	DecisionOutfit   = "Outfit"
	DecisionTravel   = "Travel"
	DecisionFood     = "Food"
	DecisionShopping = "Shopping"
	DecisionOther    = "Other"
)

// SavedDecision is a result the user chose to keep
type SavedDecision struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date"`
	Category    string `json:"category" validate:"required,oneof=Outfit Travel Food Shopping Other"`
	Summary     string `json:"summary"`
	FullDetails string `json:"fullDetails,omitempty"`
	Image       string `json:"image,omitempty"`
}

// SpinHistoryEntry is one past spin-wheel winner
type SpinHistoryEntry struct {
	Result string `json:"result"`
	Date   string `json:"date"`
}

// SpinOutcome describes one completed spin of the wheel
type SpinOutcome struct {
	Rotation float64 `json:"rotation"`
	Delta    float64 `json:"delta"`
	Index    int     `json:"index"`
	Winner   string  `json:"winner"`
}
