package mocks

import (
	"context"
	"time"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ConsultationRepository struct {
	mock.Mock
}

func (m *ConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *ConsultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

func (m *ConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *ConsultationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ConsultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) ([]domain.Consultation, int64, error) {
	args := m.Called(ctx, patientID, params)
	return args.Get(0).([]domain.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *ConsultationRepository) ListByClinician(ctx context.Context, clinicianID uuid.UUID, from, to *time.Time, params domain.PaginationParams) ([]domain.Consultation, int64, error) {
	args := m.Called(ctx, clinicianID, from, to, params)
	return args.Get(0).([]domain.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *ConsultationRepository) CountUpcomingByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clinicianID)
	return args.Get(0).(int64), args.Error(1)
}
