package sse

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "notification", Data: "hello"})

	select {
	case event := <-ch:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "hello", event.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubPublishOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: "notification"})

	select {
	case <-ch:
		t.Fatal("event leaked to the wrong user")
	default:
	}
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.PublishToMany([]string{"user-1", "user-2"}, Event{Event: "notice"})

	event1 := <-ch1
	assert.Equal(t, "user-1", event1.UserID)
	event2 := <-ch2
	assert.Equal(t, "user-2", event2.UserID)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Empty(t, hub.ActiveUsers())
}

func TestHubActiveUsers(t *testing.T) {
	hub := NewHub()

	_, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	_, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()
	_, cleanup3 := hub.Subscribe("user-1") // second tab, same user
	defer cleanup3()

	users := hub.ActiveUsers()
	sort.Strings(users)
	assert.Equal(t, []string{"user-1", "user-2"}, users)
	assert.Equal(t, 3, hub.TotalSubscribers())
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; publishing more must not deadlock
	for i := 0; i < 25; i++ {
		hub.Publish("user-1", Event{Event: "burst"})
	}
	assert.Equal(t, 1, hub.SubscriberCount("user-1"))
}
