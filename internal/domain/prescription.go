package domain

import (
	"time"

	"github.com/google/uuid"
)

type Prescription struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	PatientID    uuid.UUID  `json:"patient_id" db:"patient_id"`
	ClinicianID  uuid.UUID  `json:"clinician_id" db:"clinician_id"`
	Medication   string     `json:"medication" db:"medication"`
	Dosage       string     `json:"dosage" db:"dosage"`
	Frequency    string     `json:"frequency" db:"frequency"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
	Instructions *string    `json:"instructions,omitempty" db:"instructions"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type CreatePrescriptionInput struct {
	PatientID    uuid.UUID  `json:"patient_id" validate:"required"`
	Medication   string     `json:"medication" validate:"required,min=1,max=200"`
	Dosage       string     `json:"dosage" validate:"required,max=100"`
	Frequency    string     `json:"frequency" validate:"required,max=100"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Instructions *string    `json:"instructions,omitempty" validate:"omitempty,max=1000"`
}

type UpdatePrescriptionInput struct {
	Medication   *string    `json:"medication,omitempty" validate:"omitempty,min=1,max=200"`
	Dosage       *string    `json:"dosage,omitempty" validate:"omitempty,max=100"`
	Frequency    *string    `json:"frequency,omitempty" validate:"omitempty,max=100"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Instructions *string    `json:"instructions,omitempty" validate:"omitempty,max=1000"`
	IsActive     *bool      `json:"is_active,omitempty"`
}
