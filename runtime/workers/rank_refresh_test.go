package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"brewbot/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRankRefresh_RecomputesOnSchedule(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranks := mocks.NewMockIRankService(ctrl)
	done := make(chan struct{})
	ranks.EXPECT().Recompute().DoAndReturn(func() error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	worker := NewRankRefreshWorker(slog.Default(), ranks, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("worker never recomputed")
	}
}

func TestRankRefresh_SurvivesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranks := mocks.NewMockIRankService(ctrl)
	calls := make(chan struct{}, 10)
	ranks.EXPECT().Recompute().DoAndReturn(func() error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return fmt.Errorf("aggregate store unavailable")
	}).MinTimes(2)

	worker := NewRankRefreshWorker(slog.Default(), ranks, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = worker.Run(ctx)

	// A failed pass is retried on the next tick, not fatal.
	require.GreaterOrEqual(t, len(calls), 2)
}
