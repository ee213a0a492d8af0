package consultation

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
	"mindtrack/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, clinicianID uuid.UUID, input domain.CreateConsultationInput) (*domain.Consultation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultation, error)
	Update(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID, input domain.UpdateConsultationInput) (*domain.Consultation, error)
	Cancel(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Consultation], error)
	ListByClinician(ctx context.Context, clinicianID uuid.UUID, from, to *time.Time, params domain.PaginationParams) (domain.PaginatedResponse[domain.Consultation], error)
}

type service struct {
	consultationRepo repository.ConsultationRepository
	patientRepo      repository.PatientRepository
	auditRepo        repository.AuditLogRepository
	notifSvc         notification.Service
}

func NewService(consultationRepo repository.ConsultationRepository, patientRepo repository.PatientRepository, auditRepo repository.AuditLogRepository, notifSvc notification.Service) Service {
	return &service{
		consultationRepo: consultationRepo,
		patientRepo:      patientRepo,
		auditRepo:        auditRepo,
		notifSvc:         notifSvc,
	}
}

func (s *service) Create(ctx context.Context, clinicianID uuid.UUID, input domain.CreateConsultationInput) (*domain.Consultation, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}

	consultation := &domain.Consultation{
		ID:              uuid.New(),
		PatientID:       input.PatientID,
		ClinicianID:     clinicianID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Type:            input.Type,
		Status:          domain.ConsultationScheduled,
		Notes:           input.Notes,
	}

	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "CREATE",
		EntityType: "CONSULTATION",
		EntityID:   consultation.ID,
		NewValue:   consultation,
	})

	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyConsultationBooked(ctx, patient.ClinicianID, consultation, patient.FullName()); err != nil {
			log.Printf("consultation: failed to notify clinician %s: %v", patient.ClinicianID, err)
		}
	}

	return consultation, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, domain.ErrConsultationNotFound
	}
	return consultation, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID, input domain.UpdateConsultationInput) (*domain.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, domain.ErrConsultationNotFound
	}

	oldValue := *consultation

	if input.ScheduledAt != nil {
		consultation.ScheduledAt = *input.ScheduledAt
	}
	if input.DurationMinutes != nil {
		consultation.DurationMinutes = *input.DurationMinutes
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		consultation.Type = *input.Type
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		consultation.Status = *input.Status
	}
	if input.Notes != nil {
		consultation.Notes = input.Notes
	}

	if err := s.consultationRepo.Update(ctx, consultation); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "UPDATE",
		EntityType: "CONSULTATION",
		EntityID:   consultation.ID,
		OldValue:   oldValue,
		NewValue:   consultation,
	})

	return consultation, nil
}

func (s *service) Cancel(ctx context.Context, id uuid.UUID, clinicianID uuid.UUID) error {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if consultation == nil {
		return domain.ErrConsultationNotFound
	}
	if consultation.Status != domain.ConsultationScheduled {
		return domain.ErrInvalidStatus
	}

	consultation.Status = domain.ConsultationCancelled
	if err := s.consultationRepo.Update(ctx, consultation); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     clinicianID,
		Action:     "CANCEL",
		EntityType: "CONSULTATION",
		EntityID:   consultation.ID,
	})

	return nil
}

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Consultation], error) {
	consultations, total, err := s.consultationRepo.ListByPatient(ctx, patientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Consultation]{}, err
	}
	return domain.NewPaginatedResponse(consultations, params.Page, params.PageSize, total), nil
}

func (s *service) ListByClinician(ctx context.Context, clinicianID uuid.UUID, from, to *time.Time, params domain.PaginationParams) (domain.PaginatedResponse[domain.Consultation], error) {
	consultations, total, err := s.consultationRepo.ListByClinician(ctx, clinicianID, from, to, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Consultation]{}, err
	}
	return domain.NewPaginatedResponse(consultations, params.Page, params.PageSize, total), nil
}
