package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/localnerve/decideforme/internal/config"
)

// Options carries the tunables shared by every profile's services
type Options struct {
	AdminIdentifiers   []string
	AdminPasswordHash  string
	AuthDelay          time.Duration
	ResetPasswordDelay time.Duration
	SpinDuration       time.Duration

	// Bound on cached profile sessions and their idle lifetime
	SessionCacheSize int
	SessionTTL       time.Duration

	// Now and Random default to the wall clock and math/rand
	Now    func() time.Time
	Random func() float64
}

// OptionsFromConfig maps the loaded configuration onto service options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		AdminIdentifiers:   cfg.AdminIdentifiers,
		AdminPasswordHash:  cfg.AdminPasswordHash,
		AuthDelay:          cfg.AuthDelay,
		ResetPasswordDelay: cfg.ResetPasswordDelay,
		SpinDuration:       cfg.SpinDuration,
		SessionCacheSize:   cfg.SessionCacheSize,
		SessionTTL:         cfg.SessionTTL,
	}
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Random == nil {
		o.Random = rand.Float64
	}
	if o.SessionCacheSize <= 0 {
		o.SessionCacheSize = 10000
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = 30 * time.Minute
	}
	return o
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
