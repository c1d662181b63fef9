package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	b := NewBus()

	ch, cleanup := b.Subscribe("org-1")
	defer cleanup()

	b.Publish("org-1", TopicEmployeeAdded, map[string]string{"id": "emp-1"})

	select {
	case ev := <-ch:
		assert.Equal(t, "org-1", ev.OrganizationID)
		assert.Equal(t, TopicEmployeeAdded, ev.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestBus_PublishScopedToOrganization(t *testing.T) {
	t.Parallel()
	b := NewBus()

	ch, cleanup := b.Subscribe("org-1")
	defer cleanup()

	b.Publish("org-2", TopicSettingsUpdated, nil)

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event for other organization: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_CleanupDeregisters(t *testing.T) {
	t.Parallel()
	b := NewBus()

	_, cleanup := b.Subscribe("org-1")
	_, cleanup2 := b.Subscribe("org-1")
	require.Equal(t, 2, b.SubscriberCount("org-1"))

	cleanup()
	assert.Equal(t, 1, b.SubscriberCount("org-1"))

	cleanup2()
	assert.Equal(t, 0, b.SubscriberCount("org-1"))

	// Publishing with no subscribers must not panic.
	b.Publish("org-1", TopicEmployeeDeleted, nil)
}

func TestBus_FullChannelDoesNotBlock(t *testing.T) {
	t.Parallel()
	b := NewBus()

	ch, cleanup := b.Subscribe("org-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			b.Publish("org-1", TopicScheduleCreated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
	assert.NotEmpty(t, ch)
}
