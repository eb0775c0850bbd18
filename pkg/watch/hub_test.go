package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := hub.Subscribe(ctx, "topic")
	b := hub.Subscribe(ctx, "topic")

	hub.Publish("topic", "snapshot-1")
	assert.Equal(t, "snapshot-1", recv(t, a))
	assert.Equal(t, "snapshot-1", recv(t, b))
}

func TestTopicsAreIsolated(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	other := hub.Subscribe(ctx, "other")
	hub.Publish("topic", "snapshot-1")

	select {
	case v := <-other:
		t.Fatalf("unexpected delivery on unrelated topic: %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowSubscriberKeepsNewestSnapshot(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx, "topic")
	hub.Publish("topic", "stale")
	hub.Publish("topic", "fresh")

	assert.Equal(t, "fresh", recv(t, ch))
}

func TestSubscribeClosesOnCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	ch := hub.Subscribe(ctx, "topic")
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok, "channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed after cancel")
	}

	// publishing after the last subscriber left must not panic
	hub.Publish("topic", "ignored")
}
