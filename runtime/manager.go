package runtime

import (
	"log/slog"
	"sync"
	"time"

	"brewbot/contract"
	"brewbot/domain"
)

// RoundManager owns the "at most one active round" invariant. It is the
// only place rounds are created or replaced, and it is injected into the
// handlers that need it rather than living as a package global.
type RoundManager struct {
	mu       sync.Mutex
	log      *slog.Logger
	clock    contract.Clock
	timeout  int
	interval time.Duration
	limit    *int
	current  *domain.Round
}

// NewRoundManager builds a manager whose rounds count down from timeout
// seconds, ticked at the given interval (one second in production,
// driven by hand in tests). A non-nil limit caps every round's guests.
func NewRoundManager(log *slog.Logger, clock contract.Clock, timeout int, interval time.Duration, limit *int) *RoundManager {
	return &RoundManager{
		log:      log,
		clock:    clock,
		timeout:  timeout,
		interval: interval,
		limit:    limit,
	}
}

// Start creates a round for the server and arms its clock subscription.
// Returns nil without side effects while another round is active; the
// caller branches on that to phrase the right reply.
func (m *RoundManager) Start(server domain.Participant, complete func(*domain.Round), opts ...domain.RoundOption) *domain.Round {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Active() {
		return nil
	}

	if m.limit != nil {
		opts = append([]domain.RoundOption{domain.WithGuestLimit(*m.limit)}, opts...)
	}
	round := domain.NewRound(server, m.timeout, complete, opts...)
	sub := m.clock.Subscribe(m.interval, round.Tick)
	round.BindSubscription(sub.Stop)
	m.current = round

	m.log.Info("Round started", "server", server.ID, "timeout_seconds", m.timeout)
	return round
}

// Current returns the active round, or nil. Activeness is the round's
// remaining-seconds field, not reference nullity: an expired round that
// has not been dereferenced yet is already invisible here.
func (m *RoundManager) Current() *domain.Round {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || !m.current.Active() {
		return nil
	}
	return m.current
}
