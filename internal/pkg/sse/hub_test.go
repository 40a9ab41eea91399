package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Broadcast(Event{Event: "schedule_generated", Data: "payload"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "schedule_generated", event.Event)
		default:
			t.Fatal("expected event on subscriber channel")
		}
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	cleanup()

	assert.Zero(t, hub.SubscriberCount())
}

func TestHubBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	// Fill the buffer past capacity; the overflow is dropped, not blocked on.
	for i := 0; i < 20; i++ {
		hub.Broadcast(Event{Event: "ping"})
	}

	require.Equal(t, 10, len(ch))
}
