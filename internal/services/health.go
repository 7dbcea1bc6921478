package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/kvstore"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	AI           string            `json:"ai"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck checks the key-value store and the generative model endpoint.
// A missing API key degrades the AI features but leaves the service healthy.
func HealthCheck(ctx context.Context, cfg *config.Config, store kvstore.Store, gateway ai.Gateway) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check store connectivity
	if err := store.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Store = "unreachable"
		result.Details["store_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Store ping failed: %v", err)
		log.Printf("Health check failed - store ping: %v", err)
	} else {
		result.Store = "ok"
		result.Details["store_type"] = cfg.StoreType
		if cfg.StoreType == kvstore.TypeDatabase {
			result.Details["database_type"] = cfg.DBType
		}
	}

	// Check generative model connectivity
	switch err := gateway.Ping(ctx); {
	case err == nil:
		result.AI = "ok"
		result.Details["ai_model"] = cfg.GeminiModel
	case errors.Is(err, ai.ErrNotConfigured):
		result.AI = "unconfigured"
	default:
		result.Status = "unhealthy"
		result.AI = "unreachable"
		result.Details["ai_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("AI ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; AI ping failed: %v", err)
		}
		log.Printf("Health check failed - ai ping: %v", err)
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
