package services

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"time"

	"github.com/localnerve/decideforme/internal/metrics"
	"github.com/localnerve/decideforme/internal/models"
)

var (
	// ErrNoOptions is returned when a wheel is spun without slices
	ErrNoOptions = errors.New("no options to spin")
	// ErrSpinInProgress is returned while the profile's wheel is still turning
	ErrSpinInProgress = errors.New("spin in progress")
)

// WinningIndex maps a cumulative clockwise wheel rotation to the slice under the fixed
// pointer at 0 degrees. Slices are laid out clockwise from 0 in list order.
func WinningIndex(rotation float64, slices int) int {
	if slices <= 0 {
		return -1
	}
	effective := math.Mod(360-math.Mod(rotation, 360), 360)
	if effective < 0 {
		effective += 360
	}
	index := int(math.Floor(effective / (360 / float64(slices))))
	if index >= slices {
		index = slices - 1
	}
	return index
}

// Wheel is the spin-wheel of one profile. Its rotation accumulates across spins.
type Wheel struct {
	users    *UserService
	duration time.Duration
	random   func() float64
	spinning atomic.Bool
}

// NewWheel creates the wheel
func NewWheel(users *UserService, opts Options) *Wheel {
	opts = opts.withDefaults()
	return &Wheel{users: users, duration: opts.SpinDuration, random: opts.Random}
}

// Spin turns the wheel by 360 x (5 + U) degrees, waits for it to stop and records the winner
func (w *Wheel) Spin(ctx context.Context, labels []string) (models.SpinOutcome, error) {
	if len(labels) == 0 {
		return models.SpinOutcome{}, ErrNoOptions
	}
	if !w.spinning.CompareAndSwap(false, true) {
		return models.SpinOutcome{}, ErrSpinInProgress
	}
	defer w.spinning.Store(false)

	delta := 360 * (5 + w.random())
	total := w.users.Rotation(ctx) + delta

	// A cancelled spin leaves neither rotation nor history behind
	if err := wait(ctx, w.duration); err != nil {
		return models.SpinOutcome{}, err
	}
	if err := w.users.saveRotation(ctx, total); err != nil {
		return models.SpinOutcome{}, err
	}

	index := WinningIndex(total, len(labels))
	outcome := models.SpinOutcome{
		Rotation: total,
		Delta:    delta,
		Index:    index,
		Winner:   labels[index],
	}
	if err := w.users.SaveSpinResult(ctx, outcome.Winner); err != nil {
		return outcome, err
	}

	metrics.Spins.Inc()
	return outcome, nil
}
