package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/middleware"
	"github.com/localnerve/decideforme/internal/services"
)

// Register mounts the API routes on api
func Register(api fiber.Router, cfg *config.Config, registry *services.Registry) {
	health := &HealthHandler{Config: cfg, Store: registry.Store(), Gateway: registry.Gateway()}
	api.Get("/health", health.Check)

	// Every route below runs in the namespace of the caller's profile
	api.Use(middleware.Profile(registry))

	authHandler := &AuthHandler{}
	userHandler := &UserHandler{}
	aiHandler := &AIHandler{}
	adminHandler := &AdminHandler{}
	contentHandler := &ContentHandler{}
	eventsHandler := &EventsHandler{Bus: registry.Bus()}

	// Public routes
	auth := api.Group("/auth")
	auth.Get("/status", authHandler.Status)
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/admin/logout", authHandler.AdminLogout)

	api.Get("/categories", contentHandler.GetCategories)
	api.Get("/events", eventsHandler.Stream)

	// Signed in user routes
	user := middleware.AuthUser()
	api.Get("/user", user, userHandler.GetProfile)
	api.Put("/user", user, userHandler.UpdateProfile)
	api.Get("/user/decisions", user, userHandler.GetDecisions)
	api.Post("/user/decisions", user, userHandler.SaveDecision)
	api.Delete("/user/decisions/:id", user, userHandler.DeleteDecision)
	api.Get("/user/spins", user, userHandler.GetSpins)
	api.Post("/user/spin", user, userHandler.Spin)

	api.Get("/quiz", user, userHandler.GetQuiz)
	api.Post("/quiz", user, userHandler.SubmitQuiz)
	api.Get("/quiz/result", user, userHandler.GetQuizResult)

	api.Get("/chat", user, aiHandler.GetChat)
	api.Post("/chat", user, aiHandler.SendChat)
	api.Delete("/chat", user, aiHandler.ClearChat)
	api.Post("/analyze", user, aiHandler.Analyze)
	api.Post("/analyze/save", user, aiHandler.SaveAnalysis)
	api.Post("/compare", user, aiHandler.Compare)
	api.Post("/feedback", user, aiHandler.SendFeedback)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthAdmin())
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/users", adminHandler.GetUsers)
	admin.Put("/users/:id/status", adminHandler.SetUserStatus)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/logs", adminHandler.GetLogs)
	admin.Get("/categories", adminHandler.GetCategories)
	admin.Put("/categories", adminHandler.PutCategories)
	admin.Get("/quiz", adminHandler.GetQuiz)
	admin.Put("/quiz", adminHandler.PutQuiz)
	admin.Get("/feedback", adminHandler.GetFeedback)
	admin.Put("/feedback", adminHandler.PutFeedback)
	admin.Get("/versions", adminHandler.GetVersions)
}
