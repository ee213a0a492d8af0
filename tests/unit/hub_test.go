package unit_test

import (
	"testing"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/hub"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHub_RoutesToTargetRecipientOnly(t *testing.T) {
	h := hub.New()
	defer h.Shutdown()

	doctorA := uuid.New()
	doctorB := uuid.New()

	subA := h.Subscribe(doctorA)
	subB := h.Subscribe(doctorB)

	h.Publish(domain.NotificationPayload{
		TargetRecipientID: doctorA,
		EventType:         domain.EventNewAlert,
	})

	select {
	case payload := <-subA.C():
		assert.Equal(t, domain.EventNewAlert, payload.EventType)
	default:
		t.Fatal("expected a payload for doctor A")
	}

	select {
	case <-subB.C():
		t.Fatal("doctor B must not receive doctor A's payload")
	default:
	}
}

func TestHub_MultipleSubscriptionsSameRecipient(t *testing.T) {
	h := hub.New()
	defer h.Shutdown()

	doctor := uuid.New()
	first := h.Subscribe(doctor)
	second := h.Subscribe(doctor)

	h.Publish(domain.NotificationPayload{TargetRecipientID: doctor, EventType: domain.EventNewAlert})

	assert.Len(t, first.C(), 1)
	assert.Len(t, second.C(), 1)
}

func TestHub_NoBacklogForLateSubscribers(t *testing.T) {
	h := hub.New()
	defer h.Shutdown()

	doctor := uuid.New()

	h.Publish(domain.NotificationPayload{TargetRecipientID: doctor, EventType: domain.EventNewAlert})

	sub := h.Subscribe(doctor)
	assert.Len(t, sub.C(), 0)
}

func TestHub_SlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	h := hub.New()
	defer h.Shutdown()

	doctor := uuid.New()
	sub := h.Subscribe(doctor)

	// Push well past the buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		h.Publish(domain.NotificationPayload{TargetRecipientID: doctor, EventType: domain.EventNewAlert})
	}

	assert.Equal(t, 16, len(sub.C()))
}

func TestHub_CloseUnregistersSubscription(t *testing.T) {
	h := hub.New()
	defer h.Shutdown()

	doctor := uuid.New()
	sub := h.Subscribe(doctor)
	assert.Equal(t, 1, h.SubscriberCount(doctor))

	sub.Close()
	assert.Equal(t, 0, h.SubscriberCount(doctor))

	// Safe to call again.
	sub.Close()

	_, open := <-sub.C()
	assert.False(t, open)

	// Publishing after close must not panic.
	h.Publish(domain.NotificationPayload{TargetRecipientID: doctor, EventType: domain.EventNewAlert})
}

func TestHub_ShutdownClosesAllChannels(t *testing.T) {
	h := hub.New()

	doctor := uuid.New()
	sub := h.Subscribe(doctor)

	h.Shutdown()

	_, open := <-sub.C()
	assert.False(t, open)

	// Subscriptions made after shutdown come back already closed.
	late := h.Subscribe(doctor)
	_, open = <-late.C()
	assert.False(t, open)

	// Publish after shutdown is a no-op.
	h.Publish(domain.NotificationPayload{TargetRecipientID: doctor, EventType: domain.EventNewAlert})
}
