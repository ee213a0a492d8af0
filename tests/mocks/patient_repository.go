package mocks

import (
	"context"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *PatientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *PatientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PatientRepository) List(ctx context.Context, clinicianID *uuid.UUID, params domain.PaginationParams) ([]domain.Patient, int64, error) {
	args := m.Called(ctx, clinicianID, params)
	return args.Get(0).([]domain.Patient), args.Get(1).(int64), args.Error(2)
}

func (m *PatientRepository) Search(ctx context.Context, query string, limit int) ([]domain.Patient, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Patient), args.Error(1)
}

func (m *PatientRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PatientRepository) CountByClinician(ctx context.Context, clinicianID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clinicianID)
	return args.Get(0).(int64), args.Error(1)
}
