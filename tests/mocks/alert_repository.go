package mocks

import (
	"context"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AlertRepository struct {
	mock.Mock
}

func (m *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}

func (m *AlertRepository) ListByClinician(ctx context.Context, clinicianID uuid.UUID, status *domain.AlertStatus, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	args := m.Called(ctx, clinicianID, status, params)
	return args.Get(0).([]domain.Alert), args.Get(1).(int64), args.Error(2)
}

func (m *AlertRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	args := m.Called(ctx, patientID, params)
	return args.Get(0).([]domain.Alert), args.Get(1).(int64), args.Error(2)
}

func (m *AlertRepository) UpdateStatus(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *AlertRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AlertRepository) CountPendingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clinicianID)
	return args.Get(0).(int64), args.Error(1)
}
