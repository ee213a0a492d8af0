package mocks

import (
	"context"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Create(ctx context.Context, rx *domain.Prescription) error {
	args := m.Called(ctx, rx)
	return args.Error(0)
}

func (m *PrescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prescription), args.Error(1)
}

func (m *PrescriptionRepository) Update(ctx context.Context, rx *domain.Prescription) error {
	args := m.Called(ctx, rx)
	return args.Error(0)
}

func (m *PrescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PrescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool, params domain.PaginationParams) ([]domain.Prescription, int64, error) {
	args := m.Called(ctx, patientID, activeOnly, params)
	return args.Get(0).([]domain.Prescription), args.Get(1).(int64), args.Error(2)
}
