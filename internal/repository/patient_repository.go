package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mindtrack/internal/domain"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, clinicianID *uuid.UUID, params domain.PaginationParams) ([]domain.Patient, int64, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Patient, error)
	CountAll(ctx context.Context) (int64, error)
	CountByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error)
}

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	query := `
		INSERT INTO patients (id, user_id, clinician_id, first_name, last_name, gender,
			birth_date, phone, email, address, diagnosis, emergency_contact, emergency_phone,
			notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		patient.ID, patient.UserID, patient.ClinicianID, patient.FirstName, patient.LastName,
		patient.Gender, patient.BirthDate, patient.Phone, patient.Email, patient.Address,
		patient.Diagnosis, patient.EmergencyContact, patient.EmergencyPhone,
		patient.Notes, patient.CreatedBy,
	).Scan(&patient.CreatedAt, &patient.UpdatedAt)
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	var patient domain.Patient
	query := `SELECT * FROM patients WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Patient, error) {
	var patient domain.Patient
	query := `SELECT * FROM patients WHERE user_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &patient, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	query := `
		UPDATE patients
		SET clinician_id = $2, first_name = $3, last_name = $4, gender = $5,
			birth_date = $6, phone = $7, email = $8, address = $9, diagnosis = $10,
			emergency_contact = $11, emergency_phone = $12, notes = $13, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		patient.ID, patient.ClinicianID, patient.FirstName, patient.LastName, patient.Gender,
		patient.BirthDate, patient.Phone, patient.Email, patient.Address, patient.Diagnosis,
		patient.EmergencyContact, patient.EmergencyPhone, patient.Notes,
	).Scan(&patient.UpdatedAt)
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE patients SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *patientRepository) List(ctx context.Context, clinicianID *uuid.UUID, params domain.PaginationParams) ([]domain.Patient, int64, error) {
	params.Validate()

	var total int64
	var patients []domain.Patient

	if clinicianID != nil {
		countQuery := `SELECT COUNT(*) FROM patients WHERE clinician_id = $1 AND deleted_at IS NULL`
		if err := r.db.GetContext(ctx, &total, countQuery, *clinicianID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM patients
			WHERE clinician_id = $1 AND deleted_at IS NULL
			ORDER BY first_name, last_name
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &patients, query, *clinicianID, params.PageSize, params.Offset())
		return patients, total, err
	}

	countQuery := `SELECT COUNT(*) FROM patients WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM patients
		WHERE deleted_at IS NULL
		ORDER BY first_name, last_name
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &patients, query, params.PageSize, params.Offset())
	return patients, total, err
}

func (r *patientRepository) Search(ctx context.Context, query string, limit int) ([]domain.Patient, error) {
	var patients []domain.Patient
	sqlQuery := `
		SELECT * FROM patients
		WHERE deleted_at IS NULL
			AND (first_name ILIKE '%' || $1 || '%'
				OR last_name ILIKE '%' || $1 || '%'
				OR diagnosis ILIKE '%' || $1 || '%')
		ORDER BY first_name
		LIMIT $2`
	err := r.db.SelectContext(ctx, &patients, sqlQuery, query, limit)
	return patients, err
}

func (r *patientRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM patients WHERE deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *patientRepository) CountByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM patients WHERE clinician_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, clinicianID)
	return count, err
}
