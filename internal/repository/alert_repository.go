package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mindtrack/internal/domain"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListByClinician(ctx context.Context, clinicianID uuid.UUID, status *domain.AlertStatus, params domain.PaginationParams) ([]domain.Alert, int64, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Alert, int64, error)
	UpdateStatus(ctx context.Context, alert *domain.Alert) error
	CountPending(ctx context.Context) (int64, error)
	CountPendingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error)
}

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (id, patient_id, severity, trigger_source, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		alert.ID, alert.PatientID, alert.Severity, alert.TriggerSource, alert.Status,
	).Scan(&alert.CreatedAt, &alert.UpdatedAt)
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	var alert domain.Alert
	query := `SELECT * FROM alerts WHERE id = $1`

	err := r.db.GetContext(ctx, &alert, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) ListByClinician(ctx context.Context, clinicianID uuid.UUID, status *domain.AlertStatus, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	params.Validate()

	var total int64
	var alerts []domain.Alert

	if status != nil {
		countQuery := `
			SELECT COUNT(*) FROM alerts a
			JOIN patients p ON p.id = a.patient_id
			WHERE p.clinician_id = $1 AND a.status = $2`
		if err := r.db.GetContext(ctx, &total, countQuery, clinicianID, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT a.* FROM alerts a
			JOIN patients p ON p.id = a.patient_id
			WHERE p.clinician_id = $1 AND a.status = $2
			ORDER BY a.created_at DESC
			LIMIT $3 OFFSET $4`
		err := r.db.SelectContext(ctx, &alerts, query, clinicianID, *status, params.PageSize, params.Offset())
		return alerts, total, err
	}

	countQuery := `
		SELECT COUNT(*) FROM alerts a
		JOIN patients p ON p.id = a.patient_id
		WHERE p.clinician_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, clinicianID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.* FROM alerts a
		JOIN patients p ON p.id = a.patient_id
		WHERE p.clinician_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &alerts, query, clinicianID, params.PageSize, params.Offset())
	return alerts, total, err
}

func (r *alertRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM alerts WHERE patient_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, patientID); err != nil {
		return nil, 0, err
	}

	var alerts []domain.Alert
	query := `
		SELECT * FROM alerts
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &alerts, query, patientID, params.PageSize, params.Offset())
	return alerts, total, err
}

func (r *alertRepository) UpdateStatus(ctx context.Context, alert *domain.Alert) error {
	query := `
		UPDATE alerts
		SET status = $2, resolved_by = $3, resolved_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		alert.ID, alert.Status, alert.ResolvedBy, alert.ResolvedAt,
	).Scan(&alert.UpdatedAt)
}

func (r *alertRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM alerts WHERE status = 'PENDING'`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *alertRepository) CountPendingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*) FROM alerts a
		JOIN patients p ON p.id = a.patient_id
		WHERE p.clinician_id = $1 AND a.status = 'PENDING'`
	err := r.db.GetContext(ctx, &count, query, clinicianID)
	return count, err
}
