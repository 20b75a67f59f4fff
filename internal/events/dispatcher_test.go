package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var received []Event
	d.Subscribe(EventPostCreated, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventPostCreated, SubjectID: "u1"})
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "e1", received[0].ID)

	// Events of other types are not delivered.
	err = d.Publish(context.Background(), Event{ID: "e2", Type: EventPostDeleted})
	require.NoError(t, err)
	require.Len(t, received, 1)
}

func TestDispatcher_CatchAllReceivesEveryType(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var seen []EventType
	d.SubscribeAll(func(_ context.Context, event Event) error {
		seen = append(seen, event.Type)
		return nil
	})

	for _, eventType := range []EventType{EventUserRegistered, EventPostCreated, EventPostDeleted} {
		require.NoError(t, d.Publish(context.Background(), Event{Type: eventType}))
	}
	require.Equal(t, []EventType{EventUserRegistered, EventPostCreated, EventPostDeleted}, seen)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	secondRan := false
	catchAllRan := false
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		secondRan = true
		return nil
	})
	d.SubscribeAll(func(context.Context, Event) error {
		catchAllRan = true
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventUserRegistered})
	require.NoError(t, err)
	require.True(t, secondRan)
	require.True(t, catchAllRan)
}
