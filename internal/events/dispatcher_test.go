package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventEmployeeBookmarked, func(_ context.Context, e Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventEmployeeBookmarked, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventRosterLoaded, func(_ context.Context, e Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventEmployeeBookmarked})
	assert.EqualError(t, err, "first failed")
	assert.Equal(t, []string{"first", "second"}, calls)

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventEmployeeUnbookmarked}))
}

func TestSubscribeDuringPublish(t *testing.T) {
	d := NewInMemoryDispatcher()
	late := 0
	d.Subscribe(EventRosterLoaded, func(ctx context.Context, e Event) error {
		d.Subscribe(EventRosterLoaded, func(context.Context, Event) error {
			late++
			return nil
		})
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventRosterLoaded}))
	assert.Zero(t, late, "handlers added mid-publish wait for the next event")
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventRosterLoaded}))
	assert.Equal(t, 1, late)
}
