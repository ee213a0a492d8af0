package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mindtrack/internal/repository"
)

type Stats struct {
	TotalPatients         int64 `json:"total_patients"`
	MyPatients            int64 `json:"my_patients"`
	PendingAlerts         int64 `json:"pending_alerts"`
	MyPendingAlerts       int64 `json:"my_pending_alerts"`
	LogsLast7Days         int64 `json:"logs_last_7_days"`
	UpcomingConsultations int64 `json:"upcoming_consultations"`
}

type Service interface {
	GetStats(ctx context.Context, clinicianID uuid.UUID) (*Stats, error)
}

type service struct {
	patientRepo      repository.PatientRepository
	alertRepo        repository.AlertRepository
	dailyLogRepo     repository.DailyLogRepository
	consultationRepo repository.ConsultationRepository
	redis            *redis.Client
}

func NewService(patientRepo repository.PatientRepository, alertRepo repository.AlertRepository, dailyLogRepo repository.DailyLogRepository, consultationRepo repository.ConsultationRepository, redis *redis.Client) Service {
	return &service{
		patientRepo:      patientRepo,
		alertRepo:        alertRepo,
		dailyLogRepo:     dailyLogRepo,
		consultationRepo: consultationRepo,
		redis:            redis,
	}
}

func (s *service) GetStats(ctx context.Context, clinicianID uuid.UUID) (*Stats, error) {
	cacheKey := "dashboard:stats:" + clinicianID.String()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	totalPatients, err := s.patientRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	myPatients, err := s.patientRepo.CountByClinician(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	pendingAlerts, err := s.alertRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	myPendingAlerts, err := s.alertRepo.CountPendingByClinician(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	recentLogs, err := s.dailyLogRepo.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	upcoming, err := s.consultationRepo.CountUpcomingByClinician(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalPatients:         totalPatients,
		MyPatients:            myPatients,
		PendingAlerts:         pendingAlerts,
		MyPendingAlerts:       myPendingAlerts,
		LogsLast7Days:         recentLogs,
		UpcomingConsultations: upcoming,
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
