package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"mindtrack/internal/domain"
)

type DailyLogRepository interface {
	Create(ctx context.Context, log *domain.DailyLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyLog, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.DailyLog, int64, error)
	// FindPriorWithMood returns the logs for a patient dated strictly before
	// the given date that carry a mood rating, newest first, at most limit.
	FindPriorWithMood(ctx context.Context, patientID uuid.UUID, before time.Time, limit int) ([]domain.DailyLog, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type dailyLogRepository struct {
	db *sqlx.DB
}

func NewDailyLogRepository(db *sqlx.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

func (r *dailyLogRepository) Create(ctx context.Context, log *domain.DailyLog) error {
	query := `
		INSERT INTO daily_logs (id, patient_id, log_date, mood_rating, sleep_hours,
			sleep_quality, suicidal_ideation, medication_taken, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		log.ID, log.PatientID, log.LogDate, log.MoodRating, log.SleepHours,
		log.SleepQuality, log.SuicidalIdeation, log.MedicationTaken, log.Notes,
	).Scan(&log.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDailyLogExists
	}
	return err
}

func (r *dailyLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyLog, error) {
	var log domain.DailyLog
	query := `SELECT * FROM daily_logs WHERE id = $1`

	err := r.db.GetContext(ctx, &log, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *dailyLogRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.DailyLog, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM daily_logs WHERE patient_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, patientID); err != nil {
		return nil, 0, err
	}

	var logs []domain.DailyLog
	query := `
		SELECT * FROM daily_logs
		WHERE patient_id = $1
		ORDER BY log_date DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &logs, query, patientID, params.PageSize, params.Offset())
	return logs, total, err
}

func (r *dailyLogRepository) FindPriorWithMood(ctx context.Context, patientID uuid.UUID, before time.Time, limit int) ([]domain.DailyLog, error) {
	var logs []domain.DailyLog
	query := `
		SELECT * FROM daily_logs
		WHERE patient_id = $1 AND log_date < $2 AND mood_rating IS NOT NULL
		ORDER BY log_date DESC
		LIMIT $3`
	err := r.db.SelectContext(ctx, &logs, query, patientID, before, limit)
	return logs, err
}

func (r *dailyLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM daily_logs WHERE created_at >= $1`
	err := r.db.GetContext(ctx, &count, query, since)
	return count, err
}
