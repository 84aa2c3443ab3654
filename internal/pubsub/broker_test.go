package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishDeliversToSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.Subscribe(ctx)
	b.Publish(EntryEvent, "hello")

	select {
	case ev := <-sub:
		assert.Equal(t, EntryEvent, ev.Type)
		assert.Equal(t, "hello", ev.Payload)
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroker_MultipleSubscribers(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(InvalidatedEvent, 42)

	for _, sub := range []<-chan Event[int]{sub1, sub2} {
		select {
		case ev := <-sub:
			assert.Equal(t, 42, ev.Payload)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBroker_PublishDropsWhenBufferFull(t *testing.T) {
	b := NewBrokerWithBuffer[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.Subscribe(ctx)

	// Second publish must not block even though nobody is draining.
	b.Publish(EntryEvent, 1)
	b.Publish(EntryEvent, 2)

	ev := <-sub
	assert.Equal(t, 1, ev.Payload)
}

func TestBroker_SubscribeAfterCloseReturnsClosedChannel(t *testing.T) {
	b := NewBroker[string]()
	b.Close()

	sub := b.Subscribe(context.Background())
	_, open := <-sub
	assert.False(t, open)
}

func TestBroker_CloseIsIdempotent(t *testing.T) {
	b := NewBroker[string]()
	b.Close()
	require.NotPanics(t, func() { b.Close() })
}

func TestBroker_ContextCancelRemovesSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	// The channel closes once the cleanup goroutine runs.
	require.Eventually(t, func() bool {
		select {
		case _, open := <-sub:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, b.SubscriberCount())
}
