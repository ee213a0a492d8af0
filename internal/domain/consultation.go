package domain

import (
	"time"

	"github.com/google/uuid"
)

type Consultation struct {
	ID              uuid.UUID          `json:"id" db:"id"`
	PatientID       uuid.UUID          `json:"patient_id" db:"patient_id"`
	ClinicianID     uuid.UUID          `json:"clinician_id" db:"clinician_id"`
	ScheduledAt     time.Time          `json:"scheduled_at" db:"scheduled_at"`
	DurationMinutes int                `json:"duration_minutes" db:"duration_minutes"`
	Type            ConsultationType   `json:"type" db:"type"`
	Status          ConsultationStatus `json:"status" db:"status"`
	Notes           *string            `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time         `json:"-" db:"deleted_at"`
}

type ConsultationType string

const (
	ConsultationVideo    ConsultationType = "VIDEO"
	ConsultationInPerson ConsultationType = "IN_PERSON"
	ConsultationPhone    ConsultationType = "PHONE"
)

func (t ConsultationType) IsValid() bool {
	switch t {
	case ConsultationVideo, ConsultationInPerson, ConsultationPhone:
		return true
	}
	return false
}

type ConsultationStatus string

const (
	ConsultationScheduled ConsultationStatus = "SCHEDULED"
	ConsultationCompleted ConsultationStatus = "COMPLETED"
	ConsultationCancelled ConsultationStatus = "CANCELLED"
)

func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationScheduled, ConsultationCompleted, ConsultationCancelled:
		return true
	}
	return false
}

type CreateConsultationInput struct {
	PatientID       uuid.UUID        `json:"patient_id" validate:"required"`
	ScheduledAt     time.Time        `json:"scheduled_at" validate:"required"`
	DurationMinutes int              `json:"duration_minutes" validate:"required,min=5,max=240"`
	Type            ConsultationType `json:"type" validate:"required"`
	Notes           *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateConsultationInput struct {
	ScheduledAt     *time.Time          `json:"scheduled_at,omitempty"`
	DurationMinutes *int                `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=240"`
	Type            *ConsultationType   `json:"type,omitempty"`
	Status          *ConsultationStatus `json:"status,omitempty"`
	Notes           *string             `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
