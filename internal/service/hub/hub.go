// Package hub implements the in-process broadcast channel that fans out
// alert notifications to connected clinician sessions. Delivery is
// best-effort and at-most-once: there is no backlog, no replay, and a
// subscriber that connects after a publish simply never sees it. The
// persisted notification inbox remains the source of truth; a payload from
// the hub is a hint to refresh.
package hub

import (
	"sync"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
)

const subscriberBuffer = 16

// Hub holds the live subscriber registry. Construct one per process with
// New and hand it to producers and the stream handler; it is safe for
// concurrent use.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*Subscription]struct{}
	closed      bool
}

// Subscription is one live connection for one recipient. Payloads arrive on
// C until Close is called; the channel is closed afterwards.
type Subscription struct {
	recipientID uuid.UUID
	ch          chan domain.NotificationPayload
	hub         *Hub
	closeOnce   sync.Once
}

func New() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[*Subscription]struct{}),
	}
}

// Subscribe registers a fresh subscription for the recipient. It starts
// receiving from the moment of the call; nothing published earlier is
// delivered.
func (h *Hub) Subscribe(recipientID uuid.UUID) *Subscription {
	sub := &Subscription{
		recipientID: recipientID,
		ch:          make(chan domain.NotificationPayload, subscriberBuffer),
		hub:         h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.ch)
		return sub
	}

	subs, ok := h.subscribers[recipientID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.subscribers[recipientID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Publish fans the payload out to every current subscription owned by the
// payload's target recipient. It never blocks: a subscriber whose buffer is
// full misses this payload, and other subscribers are unaffected.
func (h *Hub) Publish(payload domain.NotificationPayload) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for sub := range h.subscribers[payload.TargetRecipientID] {
		select {
		case sub.ch <- payload:
		default:
			// Slow consumer; drop rather than block the publisher.
		}
	}
}

// SubscriberCount reports the number of live subscriptions for a recipient.
func (h *Hub) SubscriberCount(recipientID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[recipientID])
}

// Shutdown closes every subscription and rejects further publishes. Called
// once at process exit.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for _, subs := range h.subscribers {
		for sub := range subs {
			sub.closeOnce.Do(func() { close(sub.ch) })
		}
	}
	h.subscribers = make(map[uuid.UUID]map[*Subscription]struct{})
}

// C is the receive side of the subscription.
func (s *Subscription) C() <-chan domain.NotificationPayload {
	return s.ch
}

// RecipientID returns the clinician this subscription is scoped to.
func (s *Subscription) RecipientID() uuid.UUID {
	return s.recipientID
}

// Close removes the subscription from the hub and closes its channel.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	if subs, ok := s.hub.subscribers[s.recipientID]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(s.hub.subscribers, s.recipientID)
		}
	}
	s.hub.mu.Unlock()

	s.closeOnce.Do(func() { close(s.ch) })
}
