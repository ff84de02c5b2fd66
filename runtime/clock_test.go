package runtime_test

import (
	"sync/atomic"
	"testing"
	"time"

	"brewbot/runtime"

	"github.com/stretchr/testify/require"
)

func Test_TickerClock_delivers_and_stops(t *testing.T) {
	req := require.New(t)
	clock := runtime.NewTickerClock()

	var ticks atomic.Int64
	sub := clock.Subscribe(10*time.Millisecond, func() {
		ticks.Add(1)
	})

	time.Sleep(100 * time.Millisecond)
	sub.Stop()
	req.Greater(ticks.Load(), int64(0))

	// Let any tick already in flight land before taking the baseline.
	time.Sleep(20 * time.Millisecond)
	seen := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	req.Equal(seen, ticks.Load())

	// Stopping twice must be safe: the round stops its own
	// subscription at expiry and shutdown may stop it again.
	sub.Stop()
}
