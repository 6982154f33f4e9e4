// Package messaging implements in-process event dispatch for the
// student registry.
//
// Delivery is strictly synchronous: Publish runs every matching handler
// on the caller's goroutine and returns when the last one finished. The
// core contract has no background work, so there is no worker pool and
// no buffering here. Handler errors are logged, never propagated; events
// are observational and must not affect the operation that emitted them.
package messaging

import (
	"sync"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// Handler processes a single domain event.
type Handler func(event student.Event) error

// EventBus is a synchronous in-memory event dispatcher.
type EventBus struct {
	mu          sync.RWMutex
	handlers    map[student.EventName][]Handler
	allHandlers []Handler
	log         *logger.Logger
}

// NewEventBus creates an event bus.
func NewEventBus(log *logger.Logger) *EventBus {
	if log == nil {
		log = logger.Default()
	}
	return &EventBus{
		handlers: make(map[student.EventName][]Handler),
		log:      log.With(logger.Component("eventbus")),
	}
}

// Subscribe registers a handler for a specific event name.
func (b *EventBus) Subscribe(name student.EventName, h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// SubscribeAll registers a handler for every event.
func (b *EventBus) SubscribeAll(h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.allHandlers = append(b.allHandlers, h)
}

// Publish delivers the event to all matching handlers, in subscription
// order, on the calling goroutine.
func (b *EventBus) Publish(event student.Event) {
	b.mu.RLock()
	matched := make([]Handler, 0, len(b.allHandlers)+len(b.handlers[event.Name()]))
	matched = append(matched, b.allHandlers...)
	matched = append(matched, b.handlers[event.Name()]...)
	b.mu.RUnlock()

	for _, h := range matched {
		if err := h(event); err != nil {
			b.log.Warn("event handler failed",
				logger.EventField(string(event.Name())),
				logger.Err(err))
		}
	}
}

var _ student.Publisher = (*EventBus)(nil)

// NewLoggingSubscriber returns a handler that logs every event it sees.
// Wire it with SubscribeAll to get an audit trail of roster mutations.
func NewLoggingSubscriber(log *logger.Logger) Handler {
	audit := log.With(logger.Component("audit"))
	return func(event student.Event) error {
		audit.Info("domain event",
			logger.EventField(string(event.Name())),
			logger.StudentID(int(event.AggregateID())))
		return nil
	}
}
