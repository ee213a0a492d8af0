package alert

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
	"mindtrack/internal/service/email"
	"mindtrack/internal/service/hub"
	"mindtrack/internal/service/notification"
)

type Service interface {
	// Create inserts an alert with status PENDING and fans out the
	// new_alert notification to the patient's assigned clinician. All
	// alerts, whether raised by the sentinel or by a clinician action,
	// go through here.
	Create(ctx context.Context, input domain.CreateAlertInput) (*domain.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListByClinician(ctx context.Context, clinicianID uuid.UUID, status *domain.AlertStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, input domain.UpdateAlertStatusInput) (*domain.Alert, error)
}

type service struct {
	alertRepo   repository.AlertRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	hub         *hub.Hub
	notifSvc    notification.Service
	emailSvc    email.Service
}

func NewService(
	alertRepo repository.AlertRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	liveHub *hub.Hub,
	notifSvc notification.Service,
	emailSvc email.Service,
) Service {
	return &service{
		alertRepo:   alertRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		hub:         liveHub,
		notifSvc:    notifSvc,
		emailSvc:    emailSvc,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateAlertInput) (*domain.Alert, error) {
	alert := &domain.Alert{
		ID:            uuid.New(),
		PatientID:     input.PatientID,
		Severity:      input.Severity,
		TriggerSource: input.TriggerSource,
		Status:        domain.AlertPending,
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.fanOut(ctx, alert, domain.EventNewAlert)

	return alert, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrAlertNotFound
	}
	return alert, nil
}

func (s *service) ListByClinician(ctx context.Context, clinicianID uuid.UUID, status *domain.AlertStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error) {
	alerts, total, err := s.alertRepo.ListByClinician(ctx, clinicianID, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Alert]{}, err
	}
	return domain.NewPaginatedResponse(alerts, params.Page, params.PageSize, total), nil
}

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error) {
	alerts, total, err := s.alertRepo.ListByPatient(ctx, patientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Alert]{}, err
	}
	return domain.NewPaginatedResponse(alerts, params.Page, params.PageSize, total), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, input domain.UpdateAlertStatusInput) (*domain.Alert, error) {
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrAlertNotFound
	}

	if alert.Status == domain.AlertResolved {
		return nil, domain.ErrInvalidStatus
	}

	alert.Status = input.Status
	if input.Status == domain.AlertResolved {
		now := time.Now()
		alert.ResolvedBy = &userID
		alert.ResolvedAt = &now
	}

	if err := s.alertRepo.UpdateStatus(ctx, alert); err != nil {
		return nil, err
	}

	s.fanOut(ctx, alert, domain.EventAlertUpdated)

	return alert, nil
}

// fanOut delivers an alert event to the assigned clinician: a live hub
// payload, a persisted inbox entry, and for new HIGH alerts an email.
// Failures here never fail the alert write; they are logged and dropped.
func (s *service) fanOut(ctx context.Context, alert *domain.Alert, eventType string) {
	patient, err := s.patientRepo.GetByID(ctx, alert.PatientID)
	if err != nil || patient == nil {
		log.Printf("alert: clinician lookup failed for patient %s: %v", alert.PatientID, err)
		return
	}

	summary := domain.AlertSummary{
		ID:            alert.ID,
		PatientID:     alert.PatientID,
		PatientName:   patient.FullName(),
		Severity:      alert.Severity,
		TriggerSource: alert.TriggerSource,
		Status:        alert.Status,
		CreatedAt:     alert.CreatedAt,
	}

	s.hub.Publish(domain.NotificationPayload{
		TargetRecipientID: patient.ClinicianID,
		EventType:         eventType,
		Data:              summary,
	})

	switch eventType {
	case domain.EventNewAlert:
		if err := s.notifSvc.NotifyNewAlert(ctx, patient.ClinicianID, summary); err != nil {
			log.Printf("alert: failed to persist notification for clinician %s: %v", patient.ClinicianID, err)
		}
	case domain.EventAlertUpdated:
		if err := s.notifSvc.NotifyAlertUpdated(ctx, patient.ClinicianID, summary); err != nil {
			log.Printf("alert: failed to persist notification for clinician %s: %v", patient.ClinicianID, err)
		}
	}

	if eventType == domain.EventNewAlert && alert.Severity == domain.SeverityHigh && s.emailSvc != nil {
		clinician, err := s.userRepo.GetByID(ctx, patient.ClinicianID)
		if err != nil || clinician == nil {
			return
		}
		go func(toEmail, clinicianName, patientName string) {
			ctx := context.Background()
			if err := s.emailSvc.SendAlertEmail(ctx, toEmail, clinicianName, patientName, string(alert.Severity), alert.TriggerSource); err != nil {
				log.Printf("alert: failed to send alert email to %s: %v", toEmail, err)
			}
		}(clinician.Email, clinician.FullName, patient.FullName())
	}
}
