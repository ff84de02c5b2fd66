//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"
)

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Subscription detaches a tick consumer from the clock.
type Subscription interface {
	Stop()
}

// Clock is the injectable tick source driving round countdowns.
// A single stream: at most one subscriber at a time, and the subscriber
// detaches itself when it no longer wants ticks. Tests drive ticks by
// hand instead of depending on wall-clock timers.
type Clock interface {
	Now() time.Time
	Subscribe(interval time.Duration, onTick func()) Subscription
}

// Attachment is one card of an outbound notification: a participant's
// name, stated preference and running counters. Formatting is the
// transport's concern.
type Attachment struct {
	AuthorName string
	AuthorIcon string
	Text       string
	Footer     string
}

// Notifier delivers outbound messages to the chat room. The round
// completion sequence relies on exactly one Notify call per completed
// round.
type Notifier interface {
	Notify(text string, attachments ...Attachment) error
}
