package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreatePatientInput) (*domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, input domain.UpdatePatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	List(ctx context.Context, clinicianID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Patient], error)
	Search(ctx context.Context, query string, limit int) ([]domain.Patient, error)
}

type service struct {
	patientRepo repository.PatientRepository
	auditRepo   repository.AuditLogRepository
	redis       *redis.Client
}

func NewService(patientRepo repository.PatientRepository, auditRepo repository.AuditLogRepository, redis *redis.Client) Service {
	return &service{
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
		redis:       redis,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreatePatientInput) (*domain.Patient, error) {
	patient := &domain.Patient{
		ID:               uuid.New(),
		UserID:           input.UserID,
		ClinicianID:      input.ClinicianID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Gender:           input.Gender,
		BirthDate:        input.BirthDate,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		Diagnosis:        input.Diagnosis,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		Notes:            input.Notes,
		CreatedBy:        userID,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "CREATE",
		EntityType: "PATIENT",
		EntityID:   patient.ID,
		NewValue:   patient,
	})

	s.invalidateStats(ctx, patient.ClinicianID)

	return patient, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}
	return patient, nil
}

func (s *service) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}
	return patient, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, input domain.UpdatePatientInput) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}

	oldValue := *patient

	if input.ClinicianID != nil {
		patient.ClinicianID = *input.ClinicianID
	}
	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = input.LastName
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.BirthDate != nil {
		patient.BirthDate = input.BirthDate
	}
	if input.Phone != nil {
		patient.Phone = input.Phone
	}
	if input.Email != nil {
		patient.Email = input.Email
	}
	if input.Address != nil {
		patient.Address = input.Address
	}
	if input.Diagnosis != nil {
		patient.Diagnosis = input.Diagnosis
	}
	if input.EmergencyContact != nil {
		patient.EmergencyContact = input.EmergencyContact
	}
	if input.EmergencyPhone != nil {
		patient.EmergencyPhone = input.EmergencyPhone
	}
	if input.Notes != nil {
		patient.Notes = input.Notes
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "UPDATE",
		EntityType: "PATIENT",
		EntityID:   patient.ID,
		OldValue:   oldValue,
		NewValue:   patient,
	})

	return patient, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return domain.ErrPatientNotFound
	}

	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "DELETE",
		EntityType: "PATIENT",
		EntityID:   id,
		OldValue:   patient,
	})

	s.invalidateStats(ctx, patient.ClinicianID)

	return nil
}

func (s *service) List(ctx context.Context, clinicianID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Patient], error) {
	patients, total, err := s.patientRepo.List(ctx, clinicianID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Patient]{}, err
	}
	return domain.NewPaginatedResponse(patients, params.Page, params.PageSize, total), nil
}

func (s *service) Search(ctx context.Context, query string, limit int) ([]domain.Patient, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.patientRepo.Search(ctx, query, limit)
}

func (s *service) invalidateStats(ctx context.Context, clinicianID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, "dashboard:stats:"+clinicianID.String()).Err()
	}
}
