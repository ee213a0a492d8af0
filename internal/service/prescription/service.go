package prescription

import (
	"context"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

type Service interface {
	Create(ctx context.Context, clinicianID uuid.UUID, input domain.CreatePrescriptionInput) (*domain.Prescription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prescription, error)
	Update(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID, input domain.UpdatePrescriptionInput) (*domain.Prescription, error)
	Delete(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Prescription], error)
}

type service struct {
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	auditRepo        repository.AuditLogRepository
}

func NewService(prescriptionRepo repository.PrescriptionRepository, patientRepo repository.PatientRepository, auditRepo repository.AuditLogRepository) Service {
	return &service{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		auditRepo:        auditRepo,
	}
}

func (s *service) Create(ctx context.Context, clinicianID uuid.UUID, input domain.CreatePrescriptionInput) (*domain.Prescription, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}

	rx := &domain.Prescription{
		ID:           uuid.New(),
		PatientID:    input.PatientID,
		ClinicianID:  clinicianID,
		Medication:   input.Medication,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Instructions: input.Instructions,
		IsActive:     true,
	}

	if err := s.prescriptionRepo.Create(ctx, rx); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "CREATE",
		EntityType: "PRESCRIPTION",
		EntityID:   rx.ID,
		NewValue:   rx,
	})

	return rx, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prescription, error) {
	rx, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rx == nil {
		return nil, domain.ErrPrescriptionNotFound
	}
	return rx, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID, input domain.UpdatePrescriptionInput) (*domain.Prescription, error) {
	rx, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rx == nil {
		return nil, domain.ErrPrescriptionNotFound
	}

	oldValue := *rx

	if input.Medication != nil {
		rx.Medication = *input.Medication
	}
	if input.Dosage != nil {
		rx.Dosage = *input.Dosage
	}
	if input.Frequency != nil {
		rx.Frequency = *input.Frequency
	}
	if input.StartDate != nil {
		rx.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		rx.EndDate = input.EndDate
	}
	if input.Instructions != nil {
		rx.Instructions = input.Instructions
	}
	if input.IsActive != nil {
		rx.IsActive = *input.IsActive
	}

	if err := s.prescriptionRepo.Update(ctx, rx); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "UPDATE",
		EntityType: "PRESCRIPTION",
		EntityID:   rx.ID,
		OldValue:   oldValue,
		NewValue:   rx,
	})

	return rx, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID) error {
	rx, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rx == nil {
		return domain.ErrPrescriptionNotFound
	}

	if err := s.prescriptionRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "DELETE",
		EntityType: "PRESCRIPTION",
		EntityID:   id,
		OldValue:   rx,
	})

	return nil
}

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Prescription], error) {
	prescriptions, total, err := s.prescriptionRepo.ListByPatient(ctx, patientID, activeOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Prescription]{}, err
	}
	return domain.NewPaginatedResponse(prescriptions, params.Page, params.PageSize, total), nil
}
