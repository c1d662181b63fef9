package bus

import (
	"sync"
)

// Topic names broadcast after mutations so sibling views can refresh.
const (
	TopicEmployeeAdded       = "employee.added"
	TopicEmployeeUpdated     = "employee.updated"
	TopicEmployeeDeleted     = "employee.deleted"
	TopicSettingsUpdated     = "settings.updated"
	TopicScheduleCreated     = "schedule.created"
	TopicScheduleUpdated     = "schedule.updated"
	TopicScheduleDeleted     = "schedule.deleted"
	TopicOrganizationCreated = "organization.created"
)

// Event is a notification delivered to subscribers of one organization
type Event struct {
	OrganizationID string      `json:"organization_id"`
	Topic          string      `json:"topic"`
	Data           interface{} `json:"data,omitempty"`
}

// Bus is the in-process notification hub. Subscribers register per
// organization on activation and deregister via the returned cleanup
// function on teardown; nothing survives a process restart.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewBus creates a new Bus instance
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for an organization and returns the
// event channel and cleanup function
func (b *Bus) Subscribe(organizationID string) (chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 10)

	if b.subscribers[organizationID] == nil {
		b.subscribers[organizationID] = make(map[chan Event]struct{})
	}
	b.subscribers[organizationID][ch] = struct{}{}

	cleanup := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers[organizationID], ch)
		close(ch)
		if len(b.subscribers[organizationID]) == 0 {
			delete(b.subscribers, organizationID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a specific organization
func (b *Bus) Publish(organizationID string, topic string, data interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	event := Event{OrganizationID: organizationID, Topic: topic, Data: data}
	if subs, ok := b.subscribers[organizationID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for an organization
func (b *Bus) SubscriberCount(organizationID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if subs, ok := b.subscribers[organizationID]; ok {
		return len(subs)
	}
	return 0
}
