package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/handlers"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/middleware"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/services"
	"github.com/localnerve/decideforme/internal/testhelpers"
)

// setupApp builds the API over an in-memory store without a model API key
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{StoreType: kvstore.TypeMemory, GeminiModel: "test-model"}
	registry := services.NewRegistry(kvstore.NewMemory(), events.NewBus(), ai.Unconfigured{}, services.Options{
		AdminIdentifiers:  []string{"admin", "admin@decideforme.app"},
		AdminPasswordHash: services.HashPassword("admin123"),
		Random:            func() float64 { return 0.25 },
	})

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	handlers.Register(api, cfg, registry)
	app.Use(handlers.NotFound)
	return app
}

// newProfile returns a client with its own profile cookie
func newProfile(t *testing.T, app *fiber.App) *testhelpers.Client {
	return testhelpers.NewClient(t, app, &http.Cookie{Name: middleware.ProfileCookie, Value: uuid.NewString()})
}

func login(t *testing.T, client *testhelpers.Client, identifier, password string) {
	t.Helper()
	resp := client.Do("POST", "/api/auth/login", map[string]string{"identifier": identifier, "password": password})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

// signup creates an account in the client's profile and signs it in
func signup(t *testing.T, client *testhelpers.Client, username string) {
	t.Helper()
	resp := client.Do("POST", "/api/auth/signup", map[string]string{
		"username": username,
		"email":    username + "@decideforme.test",
		"password": "secret",
	})
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
}

func TestProfileCookieIssued(t *testing.T) {
	app := setupApp(t)

	resp := testhelpers.NewClient(t, app, nil).Do("GET", "/api/auth/status", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	if !strings.Contains(resp.Header.Get("Set-Cookie"), middleware.ProfileCookie+"=") {
		t.Errorf("Expected a profile cookie, got %q", resp.Header.Get("Set-Cookie"))
	}
	if v := resp.Header.Get("X-Api-Version"); v != middleware.APIVersion {
		t.Errorf("Expected API version header, got %q", v)
	}

	var status handlers.StatusResponse
	testhelpers.ParseJSON(t, resp, &status)
	if status.Authenticated || status.Admin || status.User.Username != "@guest" {
		t.Errorf("Unexpected status %+v", status)
	}
}

func TestUserRoutesRequireSignIn(t *testing.T) {
	app := setupApp(t)

	resp := newProfile(t, app).Do("GET", "/api/user", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)

	var body map[string]interface{}
	testhelpers.ParseJSON(t, resp, &body)
	if body["type"] != "data.authorization.user" || body["ok"] != false {
		t.Errorf("Unexpected error envelope %v", body)
	}
}

func TestLoginIsPerProfile(t *testing.T) {
	app := setupApp(t)
	kim := newProfile(t, app)

	signup(t, kim, "kim")
	resp := kim.Do("POST", "/api/auth/logout", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = kim.Do("GET", "/api/user", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)

	login(t, kim, "@kim", "secret")

	resp = kim.Do("GET", "/api/user", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var user models.UserAccount
	testhelpers.ParseJSON(t, resp, &user)
	if user.Name != "kim" || user.Email != "kim@decideforme.test" {
		t.Errorf("Expected kim, got %+v", user)
	}

	resp = newProfile(t, app).Do("GET", "/api/user", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)
}

func TestLoginOutcomes(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)

	resp := client.Do("POST", "/api/auth/login", map[string]string{"identifier": "nobody", "password": "x"})
	testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)

	// Seeded accounts carry no credential
	resp = client.Do("POST", "/api/auth/login", map[string]string{"identifier": "alex@example.com", "password": "anything"})
	testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)

	resp = client.Do("POST", "/api/auth/login", map[string]string{"password": "x"})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("POST", "/api/auth/login", map[string]string{"identifier": "admin", "password": "admin123"})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var result handlers.LoginResponse
	testhelpers.ParseJSON(t, resp, &result)
	if result.Result != "admin" {
		t.Errorf("Expected admin, got %+v", result)
	}

	resp = client.Do("PUT", "/api/admin/users/2/status", map[string]string{"status": models.StatusBanned})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = client.Do("POST", "/api/auth/login", map[string]string{"identifier": "@sarah", "password": "x"})
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)
	var body map[string]interface{}
	testhelpers.ParseJSON(t, resp, &body)
	if body["type"] != "auth.banned" {
		t.Errorf("Expected banned error, got %v", body)
	}
}

func TestSignup(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)

	resp := client.Do("POST", "/api/auth/signup", map[string]string{"username": "kim", "email": "kim@example.com"})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("POST", "/api/auth/signup", map[string]string{"username": "kim", "email": "kim@example.com", "password": "secret"})
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var account map[string]interface{}
	testhelpers.ParseJSON(t, resp, &account)
	if account["username"] != "@kim" {
		t.Errorf("Unexpected account %v", account)
	}
	if _, ok := account["passwordHash"]; ok {
		t.Error("Expected the password hash kept out of the response")
	}

	resp = client.Do("GET", "/api/user", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

func TestAdminLoginRoute(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)

	resp := client.Do("POST", "/api/auth/admin/login", map[string]string{"identifier": "alex@example.com", "password": "x"})
	testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)

	resp = client.Do("POST", "/api/auth/admin/login", map[string]string{"identifier": "admin@decideforme.app", "password": "admin123"})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = client.Do("GET", "/api/admin/stats", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var stats models.Stats
	testhelpers.ParseJSON(t, resp, &stats)
	if stats.Users != 2 || len(stats.Categories) != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	resp = client.Do("POST", "/api/auth/admin/logout", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = client.Do("GET", "/api/admin/stats", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("GET", "/api/admin/users", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusForbidden)
}

func TestAdminCategoriesVersioned(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	login(t, client, "admin", "admin123")

	resp := client.Do("GET", "/api/admin/categories", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var table struct {
		Version string            `json:"version"`
		Items   []models.Category `json:"items"`
	}
	testhelpers.ParseJSON(t, resp, &table)
	if table.Version != "0" || len(table.Items) != 4 {
		t.Fatalf("Unexpected table %+v", table)
	}

	update := map[string]interface{}{
		"version":    table.Version,
		"categories": []models.Category{{ID: 1, Name: "Gifts", Count: 3}},
	}
	resp = client.Do("PUT", "/api/admin/categories", update)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var result map[string]interface{}
	testhelpers.ParseJSON(t, resp, &result)
	if result["newVersion"] != "1" {
		t.Errorf("Expected version 1, got %v", result)
	}

	resp = client.Do("PUT", "/api/admin/categories", update)
	testhelpers.AssertStatus(t, resp, fiber.StatusConflict)
	testhelpers.ParseJSON(t, resp, &result)
	if result["versionError"] != true {
		t.Errorf("Expected a version error, got %v", result)
	}

	resp = client.Do("PUT", "/api/admin/categories", map[string]interface{}{
		"version":    1,
		"categories": []map[string]interface{}{{"id": 1}},
	})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("GET", "/api/categories", nil)
	var cats []models.Category
	testhelpers.ParseJSON(t, resp, &cats)
	if len(cats) != 1 || cats[0].Name != "Gifts" {
		t.Errorf("Expected the public list replaced, got %+v", cats)
	}
}

func TestSpinRoute(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("POST", "/api/user/spin", map[string]interface{}{"options": "Pizza"})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("POST", "/api/user/spin", map[string]interface{}{"options": []string{"Pizza", "Tacos", "Sushi", "Salad"}})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var outcome models.SpinOutcome
	testhelpers.ParseJSON(t, resp, &outcome)
	if outcome.Winner != "Salad" || outcome.Index != 3 || outcome.Rotation != 1890 {
		t.Errorf("Unexpected outcome %+v", outcome)
	}

	resp = client.Do("GET", "/api/user/spins", nil)
	var spins handlers.SpinResponse
	testhelpers.ParseJSON(t, resp, &spins)
	if spins.Rotation != 1890 || len(spins.History) != 1 || spins.History[0].Result != "Salad" {
		t.Errorf("Unexpected wheel state %+v", spins)
	}
}

func TestQuizRoutes(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("GET", "/api/quiz/result", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusNoContent)
	testhelpers.AssertNoContent(t, resp)

	resp = client.Do("GET", "/api/quiz", nil)
	var questions []models.QuizQuestion
	testhelpers.ParseJSON(t, resp, &questions)
	if len(questions) != 3 {
		t.Errorf("Expected 3 questions, got %d", len(questions))
	}

	resp = client.Do("POST", "/api/quiz", map[string]interface{}{"answers": []string{"Trendy", "Trendy", "Grounded"}})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var result models.QuizResult
	testhelpers.ParseJSON(t, resp, &result)
	if result.Vibe != "Trendy" {
		t.Errorf("Expected Trendy, got %+v", result)
	}

	resp = client.Do("GET", "/api/quiz/result", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

func TestDecisionRoutes(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("POST", "/api/user/decisions", map[string]string{"title": "Dinner", "category": "Dessert"})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("POST", "/api/user/decisions", map[string]string{"title": "Dinner", "category": models.DecisionFood, "summary": "Ramen"})
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var saved models.SavedDecision
	testhelpers.ParseJSON(t, resp, &saved)
	if saved.ID == "" || saved.Date == "" {
		t.Errorf("Expected id and date, got %+v", saved)
	}

	resp = client.Do("DELETE", "/api/user/decisions/"+saved.ID, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = client.Do("GET", "/api/user/decisions", nil)
	var decisions []models.SavedDecision
	testhelpers.ParseJSON(t, resp, &decisions)
	if len(decisions) != 0 {
		t.Errorf("Expected no decisions, got %+v", decisions)
	}
}

func TestProfileUpdateRoute(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	login(t, client, "admin", "admin123")
	resp := client.Do("PATCH", "/api/admin/users/2", map[string]string{"passwordHash": services.HashPassword("pw")})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	login(t, client, "sarah@example.com", "pw")

	resp = client.Do("PUT", "/api/user", map[string]interface{}{
		"name":        "Sarah C.",
		"username":    "@sarah",
		"email":       "sarah@example.com",
		"preferences": models.Preferences{Style: "Edgy", Budget: "Low", Food: "Vegan"},
	})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	login(t, client, "admin", "admin123")
	resp = client.Do("GET", "/api/admin/users", nil)
	var users []models.UserAccount
	testhelpers.ParseJSON(t, resp, &users)
	if users[1].Name != "Sarah C." || users[1].Preferences.Style != "Edgy" || users[1].JoinDate != "2023-11-05" {
		t.Errorf("Expected merged account, got %+v", users[1])
	}
}

func TestChatWithoutAPIKey(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("POST", "/api/chat", map[string]string{"text": "Where should we eat tonight?"})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var reply services.ChatReply
	testhelpers.ParseJSON(t, resp, &reply)
	if reply.Message.Text != ai.MissingKeyMessage || reply.Status != models.LogFailed || reply.Category != models.DecisionFood {
		t.Errorf("Unexpected reply %+v", reply)
	}

	resp = client.Do("POST", "/api/compare", map[string]string{"a": "Tea", "b": "Coffee"})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var cmp handlers.CompareResponse
	testhelpers.ParseJSON(t, resp, &cmp)
	if cmp.Comparison != nil || cmp.Message != ai.MissingKeyMessage {
		t.Errorf("Unexpected comparison %+v", cmp)
	}

	resp = client.Do("GET", "/api/chat", nil)
	var history []models.ChatMessage
	testhelpers.ParseJSON(t, resp, &history)
	if len(history) != 2 {
		t.Errorf("Expected question and fallback answer, got %d", len(history))
	}
}

func TestFeedbackRoundTrip(t *testing.T) {
	app := setupApp(t)
	client := newProfile(t, app)
	signup(t, client, "alex")

	resp := client.Do("POST", "/api/feedback", map[string]string{"msg": "Love it", "type": "Praise"})
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = client.Do("POST", "/api/feedback", map[string]string{"msg": "Wheel froze", "type": models.FeedbackTypeBugReport})
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)

	login(t, client, "admin", "admin123")
	resp = client.Do("GET", "/api/admin/feedback", nil)
	var table struct {
		Version string                `json:"version"`
		Items   []models.FeedbackItem `json:"items"`
	}
	testhelpers.ParseJSON(t, resp, &table)
	if len(table.Items) != 1 || table.Items[0].User != "@alex" || table.Version != "1" {
		t.Fatalf("Unexpected feedback %+v", table)
	}

	table.Items[0].Status = models.FeedbackStatusResolved
	resp = client.Do("PUT", "/api/admin/feedback", map[string]interface{}{"version": table.Version, "feedback": table.Items})
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

func TestHealthAndNotFound(t *testing.T) {
	app := setupApp(t)
	client := testhelpers.NewClient(t, app, nil)

	resp := client.Do("GET", "/api/health", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var health services.HealthCheckResult
	testhelpers.ParseJSON(t, resp, &health)
	if health.AI != "unconfigured" || health.Store != "ok" {
		t.Errorf("Unexpected health %+v", health)
	}
	if resp.Header.Get("Set-Cookie") != "" {
		t.Error("Expected no profile for the health check")
	}

	resp = client.Do("GET", "/nowhere", nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
}
