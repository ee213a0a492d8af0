package mocks

import (
	"context"
	"time"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DailyLogRepository struct {
	mock.Mock
}

func (m *DailyLogRepository) Create(ctx context.Context, log *domain.DailyLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *DailyLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLog), args.Error(1)
}

func (m *DailyLogRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.DailyLog, int64, error) {
	args := m.Called(ctx, patientID, params)
	return args.Get(0).([]domain.DailyLog), args.Get(1).(int64), args.Error(2)
}

func (m *DailyLogRepository) FindPriorWithMood(ctx context.Context, patientID uuid.UUID, before time.Time, limit int) ([]domain.DailyLog, error) {
	args := m.Called(ctx, patientID, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

func (m *DailyLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
