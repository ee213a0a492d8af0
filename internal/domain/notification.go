package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is the persisted per-user inbox entry. It is the authoritative
// record; live payloads pushed through the hub are only a hint to refresh.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifNewAlert             NotificationType = "NEW_ALERT"
	NotifAlertUpdated         NotificationType = "ALERT_UPDATED"
	NotifConsultationBooked   NotificationType = "CONSULTATION_BOOKED"
	NotifConsultationChanged  NotificationType = "CONSULTATION_CHANGED"
	NotifPrescriptionIssued   NotificationType = "PRESCRIPTION_ISSUED"
)

// Event types carried on live NotificationPayloads.
const (
	EventNewAlert     = "new_alert"
	EventAlertUpdated = "alert_updated"
)

// NotificationPayload is the ephemeral message fanned out by the live hub.
// It is never persisted; subscribers not connected at publish time miss it.
type NotificationPayload struct {
	TargetRecipientID uuid.UUID   `json:"-"`
	EventType         string      `json:"type"`
	Data              interface{} `json:"data,omitempty"`
}
