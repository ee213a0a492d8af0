package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mindtrack/internal/domain"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *domain.Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultation, error)
	Update(ctx context.Context, consultation *domain.Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Consultation, int64, error)
	ListByClinician(ctx context.Context, clinicianID uuid.UUID, from, to *time.Time, params domain.PaginationParams) ([]domain.Consultation, int64, error)
	CountUpcomingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error)
}

type consultationRepository struct {
	db *sqlx.DB
}

func NewConsultationRepository(db *sqlx.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	query := `
		INSERT INTO consultations (id, patient_id, clinician_id, scheduled_at,
			duration_minutes, type, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		consultation.ID, consultation.PatientID, consultation.ClinicianID,
		consultation.ScheduledAt, consultation.DurationMinutes, consultation.Type,
		consultation.Status, consultation.Notes,
	).Scan(&consultation.CreatedAt, &consultation.UpdatedAt)
}

func (r *consultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultation, error) {
	var consultation domain.Consultation
	query := `SELECT * FROM consultations WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &consultation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	query := `
		UPDATE consultations
		SET scheduled_at = $2, duration_minutes = $3, type = $4, status = $5,
			notes = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		consultation.ID, consultation.ScheduledAt, consultation.DurationMinutes,
		consultation.Type, consultation.Status, consultation.Notes,
	).Scan(&consultation.UpdatedAt)
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE consultations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *consultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Consultation, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM consultations WHERE patient_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, patientID); err != nil {
		return nil, 0, err
	}

	var consultations []domain.Consultation
	query := `
		SELECT * FROM consultations
		WHERE patient_id = $1 AND deleted_at IS NULL
		ORDER BY scheduled_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &consultations, query, patientID, params.PageSize, params.Offset())
	return consultations, total, err
}

func (r *consultationRepository) ListByClinician(ctx context.Context, clinicianID uuid.UUID, from, to *time.Time, params domain.PaginationParams) ([]domain.Consultation, int64, error) {
	params.Validate()

	where := `clinician_id = $1 AND deleted_at IS NULL`
	args := []interface{}{clinicianID}

	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(` AND scheduled_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(` AND scheduled_at < $%d`, len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM consultations WHERE ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`SELECT * FROM consultations WHERE %s ORDER BY scheduled_at ASC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var consultations []domain.Consultation
	err := r.db.SelectContext(ctx, &consultations, query, args...)
	return consultations, total, err
}

func (r *consultationRepository) CountUpcomingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*) FROM consultations
		WHERE clinician_id = $1 AND status = 'SCHEDULED' AND scheduled_at >= NOW() AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, clinicianID)
	return count, err
}
