package ai

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/localnerve/decideforme/internal/models"
)

// Persona opens every chat prompt
const Persona = `You are DecideForMe, a trendy, Gen Z-friendly AI decision assistant.
Tone: Fun, concise, premium, helpful, and objective.
Goal: Help the user make a decision about outfits, food, travel, or shopping.
Format: Use emojis. Be direct. If comparing, give pros/cons.`

// historyTurns is how many past messages are replayed as context
const historyTurns = 5

// Photo analysis kinds
const (
	PhotoFace        = "Face"
	PhotoOutfit      = "Outfit"
	PhotoInspiration = "Inspiration"
	PhotoGeneral     = "General"
)

var analysisPrompts = map[string]string{
	PhotoFace:        "Analyze this face photo. Determine the face shape and skin tone. Suggest suitable hairstyles, glasses, jewelry, or makeup looks that would enhance these features. Be kind, objective, and specific.",
	PhotoOutfit:      "Analyze this outfit photo. Rate the style, color coordination, and fit out of 10. Give a 'Vibe Check'. Suggest specific improvements (shoes, accessories, layers) to elevate the look.",
	PhotoInspiration: "Analyze this inspiration/reference photo. Break down the key elements (colors, textures, fit) that make this look work. Suggest how I can recreate this vibe within a reasonable budget.",
}

const generalAnalysisPrompt = "Analyze this image. Identify what it is and give a rating, honest opinion, and specific recommendations to improve or choose better."

// Comparison subjects, scored 0 to 100 for each option
var CompareSubjects = []string{"Price", "Quality", "Trendiness", "Utility", "Vibe"}

// ChatPrompt renders the full text prompt of a chat request
func ChatPrompt(req ChatRequest) string {
	var b strings.Builder
	b.WriteString(Persona)

	if profile := profileContext(req.Profile, req.Vibe); profile != "" {
		b.WriteString("\n\nUser Profile:\n")
		b.WriteString(profile)
	}

	history := req.History
	if len(history) > historyTurns {
		history = history[len(history)-historyTurns:]
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "AI"
		if m.Role == models.RoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+m.Text)
	}

	b.WriteString("\n\nContext:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nUser Question: ")
	b.WriteString(req.Text)
	return b.String()
}

func profileContext(profile *models.UserAccount, vibe string) string {
	var lines []string
	if profile != nil {
		if profile.Name != "" {
			lines = append(lines, "Name: "+profile.Name)
		}
		if profile.Age != "" {
			lines = append(lines, "Age: "+profile.Age)
		}
		if profile.Gender != "" {
			lines = append(lines, "Gender: "+profile.Gender)
		}
		if p := profile.Preferences; p != nil {
			lines = append(lines, fmt.Sprintf("Preferences: style %s, budget %s, food %s, travel %s",
				orNA(p.Style), orNA(p.Budget), orNA(p.Food), orNA(p.Travel)))
		}
	}
	if vibe != "" {
		lines = append(lines, "Vibe: "+vibe)
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// AnalysisPrompt renders the instruction for a photo of the given kind with optional user context
func AnalysisPrompt(kind, userContext string) string {
	prompt, ok := analysisPrompts[kind]
	if !ok {
		prompt = generalAnalysisPrompt
	}
	if userContext == "" {
		return prompt + " "
	}
	return prompt + " \nUser Context: \"" + userContext + "\""
}

// ComparePrompt asks for a strict JSON comparison of a and b
func ComparePrompt(a, b string) string {
	var rows []string
	for _, subject := range CompareSubjects {
		rows = append(rows, fmt.Sprintf(`    {"subject": %q, "A": 1-100 score, "B": 1-100 score}`, subject))
	}
	return fmt.Sprintf(`Compare %q and %q for a user deciding between them.
Return ONLY a JSON object with this structure:
{
  "analysis": "Short text summary of the comparison.",
  "data": [
%s
  ]
}
Do not add markdown formatting like `+"```json"+`. Just the raw JSON string.`, a, b, strings.Join(rows, ",\n"))
}

// ParseDataURI splits an inline image into its mime type and bytes.
// A bare base64 payload is taken as image/jpeg.
func ParseDataURI(uri string) (string, []byte, error) {
	mimeType := "image/jpeg"
	payload := uri

	if strings.Contains(uri, "base64,") {
		if parts := strings.Split(uri, ";base64,"); len(parts) == 2 {
			mimeType = strings.TrimPrefix(parts[0], "data:")
			payload = parts[1]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid inline image: %w", err)
	}
	return mimeType, data, nil
}

// ParseComparison decodes a model comparison answer, tolerating a markdown fence
func ParseComparison(text string) (*models.Comparison, error) {
	text = stripFence(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedComparison)
	}

	var out models.Comparison
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedComparison, err)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("%w: no scores", ErrMalformedComparison)
	}

	for i := range out.Data {
		out.Data[i].A = clampScore(out.Data[i].A)
		out.Data[i].B = clampScore(out.Data[i].B)
		out.Data[i].FullMark = 100
	}
	return &out, nil
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
