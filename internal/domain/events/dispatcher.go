package events

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// EventHandler is a function that handles a domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

// Dispatcher fans a domain event out to every handler registered for its type
type Dispatcher struct {
	handlers map[string][]EventHandler
	logger   *zap.Logger
	mu       sync.RWMutex
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
		logger:   logger,
	}
}

// Register registers an event handler for a specific event type
func (d *Dispatcher) Register(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch runs all handlers for the event concurrently and waits for them.
// Handler errors are logged and returned joined.
func (d *Dispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventType()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(handlers))

	for i, handler := range handlers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := handler(ctx, event); err != nil {
				d.logger.Warn("Event handler failed",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID()),
					zap.Error(err))
				errs[i] = err
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}
