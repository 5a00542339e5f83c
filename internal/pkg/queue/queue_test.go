package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(8)
	messages, err := q.Consume(ctx)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, Message{Type: "notification_event", Body: []byte(`{"x":1}`)}))

	select {
	case msg := <-messages:
		assert.Equal(t, "notification_event", msg.Type)
		assert.Equal(t, []byte(`{"x":1}`), msg.Body)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestInMemoryPublishCancelledContext(t *testing.T) {
	q := NewInMemory(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Publish(ctx, Message{Type: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInMemoryConsumeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := NewInMemory(1)
	messages, err := q.Consume(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-messages:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("consume channel did not close")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{Type: "notification_event", Body: []byte(`{"kind":"NOTICE","body":"a|b"}`)}

	got, err := deserialize(serialize(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestDeserializeNoSeparator(t *testing.T) {
	got, err := deserialize("plain payload")
	require.NoError(t, err)
	assert.Empty(t, got.Type)
	assert.Equal(t, []byte("plain payload"), got.Body)
}
