package dailylog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
	"mindtrack/internal/service/sentinel"
)

const recentLogsCacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, patientID uuid.UUID, input domain.CreateDailyLogInput) (*domain.DailyLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyLog, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.DailyLog], error)
}

type service struct {
	dailyLogRepo repository.DailyLogRepository
	patientRepo  repository.PatientRepository
	sentinelSvc  sentinel.Service
	redis        *redis.Client
}

func NewService(dailyLogRepo repository.DailyLogRepository, patientRepo repository.PatientRepository, sentinelSvc sentinel.Service, redis *redis.Client) Service {
	return &service{
		dailyLogRepo: dailyLogRepo,
		patientRepo:  patientRepo,
		sentinelSvc:  sentinelSvc,
		redis:        redis,
	}
}

func (s *service) Create(ctx context.Context, patientID uuid.UUID, input domain.CreateDailyLogInput) (*domain.DailyLog, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}

	dailyLog := &domain.DailyLog{
		ID:               uuid.New(),
		PatientID:        patientID,
		LogDate:          input.LogDate,
		MoodRating:       input.MoodRating,
		SleepHours:       input.SleepHours,
		SleepQuality:     input.SleepQuality,
		SuicidalIdeation: input.SuicidalIdeation,
		MedicationTaken:  input.MedicationTaken,
		Notes:            input.Notes,
	}

	if err := s.dailyLogRepo.Create(ctx, dailyLog); err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx,
			"dashboard:stats:"+patient.ClinicianID.String(),
			recentLogsCacheKey(patientID),
		).Err()
	}

	// Risk evaluation runs once per stored log and can never fail the
	// submission; the insert above has already committed.
	if s.sentinelSvc != nil {
		s.sentinelSvc.Evaluate(ctx, dailyLog, patientID)
	}

	return dailyLog, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyLog, error) {
	dailyLog, err := s.dailyLogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dailyLog == nil {
		return nil, domain.ErrDailyLogNotFound
	}
	return dailyLog, nil
}

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.DailyLog], error) {
	// Only the first page in the default size is cached; it is what the
	// patient detail view requests on every open.
	cacheable := s.redis != nil && params.Page == 1 && params.PageSize == domain.DefaultPageSize

	if cacheable {
		if cached, err := s.redis.Get(ctx, recentLogsCacheKey(patientID)).Result(); err == nil {
			var resp domain.PaginatedResponse[domain.DailyLog]
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	logs, total, err := s.dailyLogRepo.ListByPatient(ctx, patientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.DailyLog]{}, err
	}
	resp := domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total)

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.redis.Set(ctx, recentLogsCacheKey(patientID), data, recentLogsCacheTTL).Err()
		}
	}

	return resp, nil
}

func recentLogsCacheKey(patientID uuid.UUID) string {
	return "daily_logs:recent:" + patientID.String()
}
