package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is a patient's once-per-day self-reported wellbeing record.
// The (patient_id, log_date) pair is unique; a second submission for the
// same day is rejected by the storage layer.
type DailyLog struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	PatientID         uuid.UUID  `json:"patient_id" db:"patient_id"`
	LogDate           time.Time  `json:"log_date" db:"log_date"`
	MoodRating        *int       `json:"mood_rating,omitempty" db:"mood_rating"`
	SleepHours        *float64   `json:"sleep_hours,omitempty" db:"sleep_hours"`
	SleepQuality      *int       `json:"sleep_quality,omitempty" db:"sleep_quality"`
	SuicidalIdeation  *bool      `json:"suicidal_ideation,omitempty" db:"suicidal_ideation"`
	MedicationTaken   *bool      `json:"medication_taken,omitempty" db:"medication_taken"`
	Notes             *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

type CreateDailyLogInput struct {
	LogDate          time.Time `json:"log_date" validate:"required"`
	MoodRating       *int      `json:"mood_rating,omitempty" validate:"omitempty,min=1,max=5"`
	SleepHours       *float64  `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	SleepQuality     *int      `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5"`
	SuicidalIdeation *bool     `json:"suicidal_ideation,omitempty"`
	MedicationTaken  *bool     `json:"medication_taken,omitempty"`
	Notes            *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// HasSuicidalIdeation reports whether the flag is present and set.
func (l *DailyLog) HasSuicidalIdeation() bool {
	return l.SuicidalIdeation != nil && *l.SuicidalIdeation
}
