package events_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"agoralab-core/internal/domain/events"
)

type testEvent struct {
	events.BaseEvent
}

func newTestEvent(eventType string) testEvent {
	return testEvent{BaseEvent: events.NewBaseEvent(eventType, "aggregate-1")}
}

func TestDispatchRunsAllHandlers(t *testing.T) {
	d := events.NewDispatcher(zap.NewNop())

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		d.Register("thing.happened", func(ctx context.Context, event events.DomainEvent) error {
			calls.Add(1)
			return nil
		})
	}
	d.Register("other.thing", func(ctx context.Context, event events.DomainEvent) error {
		t.Error("handler for another event type must not run")
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), newTestEvent("thing.happened")))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDispatchWithoutHandlers(t *testing.T) {
	d := events.NewDispatcher(nil)
	assert.NoError(t, d.Dispatch(context.Background(), newTestEvent("nobody.listens")))
}

func TestDispatchJoinsAndLogsHandlerErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := events.NewDispatcher(zap.New(core))

	errBoom := errors.New("boom")
	d.Register("thing.happened", func(ctx context.Context, event events.DomainEvent) error {
		return errBoom
	})
	d.Register("thing.happened", func(ctx context.Context, event events.DomainEvent) error {
		return nil
	})

	err := d.Dispatch(context.Background(), newTestEvent("thing.happened"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, logs.FilterMessage("Event handler failed").Len())
}

func TestBaseEvent(t *testing.T) {
	e := events.NewBaseEvent("thing.happened", "aggregate-1")

	assert.NotEmpty(t, e.EventID())
	assert.Equal(t, "thing.happened", e.EventType())
	assert.Equal(t, "aggregate-1", e.AggregateID())
	assert.False(t, e.OccurredAt().IsZero())
	assert.NotEqual(t, e.EventID(), events.NewBaseEvent("thing.happened", "aggregate-1").EventID())
}
