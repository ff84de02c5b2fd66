package runtime_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"brewbot/contract"
	"brewbot/domain"
	"brewbot/runtime"

	"github.com/stretchr/testify/require"
)

// manualClock drives subscribers by hand so tests never depend on
// wall-clock timers.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	onTick func()
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Subscribe(_ time.Duration, onTick func()) contract.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = onTick
	return &manualSubscription{clock: c}
}

func (c *manualClock) Tick() {
	c.mu.Lock()
	fn := c.onTick
	c.now = c.now.Add(time.Second)
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type manualSubscription struct {
	clock *manualClock
}

func (s *manualSubscription) Stop() {
	s.clock.mu.Lock()
	defer s.clock.mu.Unlock()
	s.clock.onTick = nil
}

func Test_Manager_allows_only_one_active_round(t *testing.T) {
	req := require.New(t)
	clock := newManualClock()
	manager := runtime.NewRoundManager(slog.Default(), clock, 60, time.Second, nil)

	first := manager.Start(domain.Participant{ID: "1"}, func(*domain.Round) {})
	req.NotNil(first)

	second := manager.Start(domain.Participant{ID: "2"}, func(*domain.Round) {})
	req.Nil(second)
	req.Same(first, manager.Current())
	req.Equal("1", manager.Current().Server().ID)
}

func Test_Manager_hides_the_round_once_expired(t *testing.T) {
	req := require.New(t)
	clock := newManualClock()
	manager := runtime.NewRoundManager(slog.Default(), clock, 2, time.Second, nil)

	round := manager.Start(domain.Participant{ID: "1"}, func(*domain.Round) {})
	req.NotNil(round)
	req.NotNil(manager.Current())

	clock.Tick()
	req.NotNil(manager.Current())
	clock.Tick()

	// The object still exists, but activeness is the remaining-seconds
	// field, so the manager no longer exposes it.
	req.Nil(manager.Current())
}

func Test_Manager_accepts_a_new_round_after_expiry(t *testing.T) {
	req := require.New(t)
	clock := newManualClock()
	manager := runtime.NewRoundManager(slog.Default(), clock, 1, time.Second, nil)

	first := manager.Start(domain.Participant{ID: "1"}, func(*domain.Round) {})
	req.NotNil(first)
	clock.Tick()

	second := manager.Start(domain.Participant{ID: "2"}, func(*domain.Round) {})
	req.NotNil(second)
	req.Equal("2", manager.Current().Server().ID)
}

func Test_Manager_applies_the_configured_guest_limit(t *testing.T) {
	req := require.New(t)
	clock := newManualClock()
	limit := 2
	manager := runtime.NewRoundManager(slog.Default(), clock, 60, time.Second, &limit)

	round := manager.Start(domain.Participant{ID: "1"}, func(*domain.Round) {})
	req.NotNil(round)
	req.NotNil(round.GuestLimit())
	req.Equal(2, *round.GuestLimit())
}
