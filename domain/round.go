package domain

import (
	"sync"

	"brewbot/errors"
)

// Round is one time-boxed brewing session: one server, the guests who
// joined before expiry, and a countdown in seconds. A Round is single-use:
// once the countdown reaches zero the completion callback runs exactly
// once and the object is dead.
//
// All state transitions are serialized by the internal mutex so that a
// join racing the expiry tick is either fully counted or fully rejected.
type Round struct {
	mu          sync.Mutex
	server      Participant
	guests      []Participant
	remaining   *int // nil once expired; activeness is defined by this field
	nominated   bool
	limit       *int
	unsubscribe func()
	complete    func(*Round)
}

type RoundOption func(*Round)

// WithNomination marks the round as started on the server's behalf.
func WithNomination() RoundOption {
	return func(r *Round) { r.nominated = true }
}

// WithGuestLimit caps how many guests may join.
func WithGuestLimit(limit int) RoundOption {
	return func(r *Round) { r.limit = &limit }
}

// NewRound creates an Active round counting down from timeout seconds.
// complete is invoked exactly once, after the transition to Expired.
func NewRound(server Participant, timeout int, complete func(*Round), opts ...RoundOption) *Round {
	r := &Round{
		server:    server,
		remaining: &timeout,
		complete:  complete,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BindSubscription hands the round the means to detach itself from the
// clock when it expires. Safe to call after ticking has started.
func (r *Round) BindSubscription(unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsubscribe = unsubscribe
}

// Active reports whether the countdown is still running. Defined on the
// remaining-seconds field, not on object existence: an expired Round that
// has not been dereferenced yet is not active.
func (r *Round) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining != nil
}

// Remaining returns the seconds left, or 0 once expired.
func (r *Round) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remaining == nil {
		return 0
	}
	return *r.remaining
}

func (r *Round) Server() Participant {
	return r.server
}

func (r *Round) Nominated() bool {
	return r.nominated
}

// GuestLimit returns the optional cap on guests, nil meaning unlimited.
func (r *Round) GuestLimit() *int {
	return r.limit
}

// Guests returns the joined participants in insertion order.
func (r *Round) Guests() []Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Participant, len(r.guests))
	copy(out, r.guests)
	return out
}

// HasGuest reports whether the participant already joined.
func (r *Round) HasGuest(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasGuestLocked(id)
}

func (r *Round) hasGuestLocked(id string) bool {
	for _, g := range r.guests {
		if g.ID == id {
			return true
		}
	}
	return false
}

// Enroll adds a participant to the round. The server is never added to
// their own round, a duplicate join leaves the guest list untouched, and
// joining an expired or full round is rejected.
func (r *Round) Enroll(p Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining == nil {
		return errors.ErrRoundOver
	}
	if p.ID == r.server.ID {
		return errors.ErrSelfJoin
	}
	if r.hasGuestLocked(p.ID) {
		return errors.ErrAlreadyJoined
	}
	if r.limit != nil && len(r.guests) >= *r.limit {
		return errors.ErrRoundFull
	}
	r.guests = append(r.guests, p)
	return nil
}

// Tick advances the countdown by one second. When it reaches exactly
// zero the round detaches from the clock, transitions to Expired and
// fires the completion callback. Ticks after expiry are no-ops.
func (r *Round) Tick() {
	r.mu.Lock()

	if r.remaining == nil {
		r.mu.Unlock()
		return
	}
	if *r.remaining > 0 {
		*r.remaining--
	}
	if *r.remaining != 0 {
		r.mu.Unlock()
		return
	}

	r.remaining = nil
	unsubscribe := r.unsubscribe
	complete := r.complete
	// The callback must not run under the lock: it queries the round
	// (guests, server) through the same mutex.
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if complete != nil {
		complete(r)
	}
}
