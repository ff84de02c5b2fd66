// Package runtime wires the round lifecycle together: the tick source,
// the singleton-active round holder, and the supervised workers around
// them. It orchestrates without containing domain rules.
package runtime

import (
	"sync"
	"time"

	"brewbot/contract"
)

// TickerClock is the production tick source, one goroutine per
// subscription around a time.Ticker.
type TickerClock struct{}

func NewTickerClock() *TickerClock {
	return &TickerClock{}
}

func (c *TickerClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *TickerClock) Subscribe(interval time.Duration, onTick func()) contract.Subscription {
	sub := &tickerSubscription{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.done:
				return
			case <-ticker.C:
				onTick()
			}
		}
	}()
	return sub
}

type tickerSubscription struct {
	once sync.Once
	done chan struct{}
}

// Stop detaches the subscriber. Safe to call more than once: a round
// stops its own subscription at expiry and the manager may stop it
// again on shutdown.
func (s *tickerSubscription) Stop() {
	s.once.Do(func() { close(s.done) })
}
