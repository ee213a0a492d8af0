package domain

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	ClinicianID      uuid.UUID  `json:"clinician_id" db:"clinician_id"`
	FirstName        string     `json:"first_name" db:"first_name"`
	LastName         *string    `json:"last_name,omitempty" db:"last_name"`
	Gender           Gender     `json:"gender" db:"gender"`
	BirthDate        *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	Email            *string    `json:"email,omitempty" db:"email"`
	Address          *string    `json:"address,omitempty" db:"address"`
	Diagnosis        *string    `json:"diagnosis,omitempty" db:"diagnosis"`
	EmergencyContact *string    `json:"emergency_contact,omitempty" db:"emergency_contact"`
	EmergencyPhone   *string    `json:"emergency_phone,omitempty" db:"emergency_phone"`
	Notes            *string    `json:"notes,omitempty" db:"notes"`
	CreatedBy        uuid.UUID  `json:"created_by" db:"created_by"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt        *time.Time `json:"-" db:"deleted_at"`
}

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

type CreatePatientInput struct {
	UserID           *uuid.UUID `json:"user_id,omitempty"`
	ClinicianID      uuid.UUID  `json:"clinician_id" validate:"required"`
	FirstName        string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName         *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Gender           Gender     `json:"gender" validate:"required"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email            *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address          *string    `json:"address,omitempty" validate:"omitempty,max=500"`
	Diagnosis        *string    `json:"diagnosis,omitempty" validate:"omitempty,max=500"`
	EmergencyContact *string    `json:"emergency_contact,omitempty" validate:"omitempty,max=200"`
	EmergencyPhone   *string    `json:"emergency_phone,omitempty" validate:"omitempty,max=20"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdatePatientInput struct {
	ClinicianID      *uuid.UUID `json:"clinician_id,omitempty"`
	FirstName        *string    `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName         *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Gender           *Gender    `json:"gender,omitempty"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email            *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address          *string    `json:"address,omitempty" validate:"omitempty,max=500"`
	Diagnosis        *string    `json:"diagnosis,omitempty" validate:"omitempty,max=500"`
	EmergencyContact *string    `json:"emergency_contact,omitempty" validate:"omitempty,max=200"`
	EmergencyPhone   *string    `json:"emergency_phone,omitempty" validate:"omitempty,max=20"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

func (p *Patient) FullName() string {
	if p.LastName != nil {
		return p.FirstName + " " + *p.LastName
	}
	return p.FirstName
}
