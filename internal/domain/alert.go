package domain

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	PatientID     uuid.UUID     `json:"patient_id" db:"patient_id"`
	Severity      AlertSeverity `json:"severity" db:"severity"`
	TriggerSource string        `json:"trigger_source" db:"trigger_source"`
	Status        AlertStatus   `json:"status" db:"status"`
	ResolvedBy    *uuid.UUID    `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt    *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "LOW"
	SeverityMedium AlertSeverity = "MEDIUM"
	SeverityHigh   AlertSeverity = "HIGH"
)

func (s AlertSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertPending   AlertStatus = "PENDING"
	AlertViewed    AlertStatus = "VIEWED"
	AlertContacted AlertStatus = "CONTACTED"
	AlertResolved  AlertStatus = "RESOLVED"
)

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertPending, AlertViewed, AlertContacted, AlertResolved:
		return true
	}
	return false
}

// Trigger reason labels recorded in Alert.TriggerSource. Multiple reasons
// from one evaluation are joined with ", ".
const (
	TriggerSuicidalIdeation  = "SUICIDAL_IDEATION"
	TriggerDepressionEpisode = "DEPRESSION_EPISODE"
)

type CreateAlertInput struct {
	PatientID     uuid.UUID     `json:"patient_id" validate:"required"`
	Severity      AlertSeverity `json:"severity" validate:"required"`
	TriggerSource string        `json:"trigger_source" validate:"required,min=1"`
}

type UpdateAlertStatusInput struct {
	Status AlertStatus `json:"status" validate:"required"`
}

// AlertSummary is the serializable body pushed to live subscribers when an
// alert is created or changes status.
type AlertSummary struct {
	ID            uuid.UUID     `json:"id"`
	PatientID     uuid.UUID     `json:"patient_id"`
	PatientName   string        `json:"patient_name,omitempty"`
	Severity      AlertSeverity `json:"severity"`
	TriggerSource string        `json:"trigger_source"`
	Status        AlertStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
