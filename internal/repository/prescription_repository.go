package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mindtrack/internal/domain"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, rx *domain.Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prescription, error)
	Update(ctx context.Context, rx *domain.Prescription) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool, params domain.PaginationParams) ([]domain.Prescription, int64, error)
}

type prescriptionRepository struct {
	db *sqlx.DB
}

func NewPrescriptionRepository(db *sqlx.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, rx *domain.Prescription) error {
	query := `
		INSERT INTO prescriptions (id, patient_id, clinician_id, medication, dosage,
			frequency, start_date, end_date, instructions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		rx.ID, rx.PatientID, rx.ClinicianID, rx.Medication, rx.Dosage,
		rx.Frequency, rx.StartDate, rx.EndDate, rx.Instructions, rx.IsActive,
	).Scan(&rx.CreatedAt, &rx.UpdatedAt)
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prescription, error) {
	var rx domain.Prescription
	query := `SELECT * FROM prescriptions WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &rx, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rx, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, rx *domain.Prescription) error {
	query := `
		UPDATE prescriptions
		SET medication = $2, dosage = $3, frequency = $4, start_date = $5,
			end_date = $6, instructions = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		rx.ID, rx.Medication, rx.Dosage, rx.Frequency, rx.StartDate,
		rx.EndDate, rx.Instructions, rx.IsActive,
	).Scan(&rx.UpdatedAt)
}

func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE prescriptions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool, params domain.PaginationParams) ([]domain.Prescription, int64, error) {
	params.Validate()

	var total int64
	var prescriptions []domain.Prescription

	if activeOnly {
		countQuery := `SELECT COUNT(*) FROM prescriptions WHERE patient_id = $1 AND is_active = true AND deleted_at IS NULL`
		if err := r.db.GetContext(ctx, &total, countQuery, patientID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM prescriptions
			WHERE patient_id = $1 AND is_active = true AND deleted_at IS NULL
			ORDER BY start_date DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &prescriptions, query, patientID, params.PageSize, params.Offset())
		return prescriptions, total, err
	}

	countQuery := `SELECT COUNT(*) FROM prescriptions WHERE patient_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, patientID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM prescriptions
		WHERE patient_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &prescriptions, query, patientID, params.PageSize, params.Offset())
	return prescriptions, total, err
}
