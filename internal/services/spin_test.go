package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/decideforme/internal/events"
)

func TestWinningIndex(t *testing.T) {
	tests := []struct {
		rotation float64
		slices   int
		want     int
	}{
		{720, 4, 0},
		{810, 4, 3},
		{0, 3, 0},
		{1890, 2, 1},
		{1800 + 359.9, 4, 0},
		{1800 + 0.1, 4, 3},
		{45, 0, -1},
	}
	for _, tt := range tests {
		if got := WinningIndex(tt.rotation, tt.slices); got != tt.want {
			t.Errorf("WinningIndex(%v, %d) = %d, want %d", tt.rotation, tt.slices, got, tt.want)
		}
	}
}

func TestWheelSpin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	labels := []string{"Pizza", "Tacos", "Sushi", "Salad"}

	// random is fixed at 0.25: each spin adds 1890 degrees
	outcome, err := env.session.Wheel.Spin(ctx, labels)
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if outcome.Delta != 1890 || outcome.Rotation != 1890 {
		t.Errorf("Unexpected rotation %+v", outcome)
	}
	if outcome.Index != 3 || outcome.Winner != "Salad" {
		t.Errorf("Expected Salad, got %+v", outcome)
	}

	outcome, err = env.session.Wheel.Spin(ctx, labels)
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if outcome.Rotation != 3780 || outcome.Winner != "Sushi" {
		t.Errorf("Expected accumulated rotation landing on Sushi, got %+v", outcome)
	}

	history := env.session.Users.SpinHistory(ctx)
	if len(history) != 2 || history[0].Result != "Sushi" || history[1].Result != "Salad" {
		t.Errorf("Unexpected history %+v", history)
	}
	if rotation := env.session.Users.Rotation(ctx); rotation != 3780 {
		t.Errorf("Expected persisted rotation, got %v", rotation)
	}
	if n := env.events.count(events.DataChange); n != 2 {
		t.Errorf("Expected a data change per spin, got %d", n)
	}
}

func TestWheelSpinWithoutOptions(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.session.Wheel.Spin(context.Background(), nil); !errors.Is(err, ErrNoOptions) {
		t.Errorf("Expected ErrNoOptions, got %v", err)
	}
	if len(env.session.Users.SpinHistory(context.Background())) != 0 {
		t.Error("Expected no history")
	}
}

func TestWheelRejectsConcurrentSpin(t *testing.T) {
	env := newTestEnv(t)
	wheel := NewWheel(env.session.Users, Options{SpinDuration: time.Hour, Random: func() float64 { return 0 }})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := wheel.Spin(ctx, []string{"A", "B"})
		done <- err
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !wheel.spinning.Load() {
		if time.Now().After(deadline) {
			t.Fatal("Spin never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := wheel.Spin(context.Background(), []string{"A", "B"}); !errors.Is(err, ErrSpinInProgress) {
		t.Errorf("Expected ErrSpinInProgress, got %v", err)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected the first spin cancelled, got %v", err)
	}

	ctx = context.Background()
	if rotation := env.session.Users.Rotation(ctx); rotation != 0 {
		t.Errorf("Expected the cancelled spin to leave the wheel in place, got %v", rotation)
	}
	if history := env.session.Users.SpinHistory(ctx); len(history) != 0 {
		t.Errorf("Expected no history after a cancelled spin, got %+v", history)
	}
}
