package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

type Service interface {
	Create(ctx context.Context, notif *domain.Notification) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyNewAlert(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error
	NotifyAlertUpdated(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error
	NotifyConsultationBooked(ctx context.Context, clinicianID uuid.UUID, consultation *domain.Consultation, patientName string) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) Create(ctx context.Context, notif *domain.Notification) error {
	return s.notifRepo.Create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) NotifyNewAlert(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error {
	data, _ := json.Marshal(summary)

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  clinicianID,
		Type:    domain.NotifNewAlert,
		Title:   "New risk alert",
		Message: fmt.Sprintf("%s alert for %s: %s", summary.Severity, summary.PatientName, summary.TriggerSource),
		Data:    json.RawMessage(data),
	}

	return s.notifRepo.Create(ctx, notif)
}

func (s *service) NotifyAlertUpdated(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error {
	data, _ := json.Marshal(summary)

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  clinicianID,
		Type:    domain.NotifAlertUpdated,
		Title:   "Alert updated",
		Message: fmt.Sprintf("Alert for %s is now %s", summary.PatientName, summary.Status),
		Data:    json.RawMessage(data),
	}

	return s.notifRepo.Create(ctx, notif)
}

func (s *service) NotifyConsultationBooked(ctx context.Context, clinicianID uuid.UUID, consultation *domain.Consultation, patientName string) error {
	dataMap := map[string]string{
		"consultation_id": consultation.ID.String(),
		"patient_id":      consultation.PatientID.String(),
	}
	data, _ := json.Marshal(dataMap)

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  clinicianID,
		Type:    domain.NotifConsultationBooked,
		Title:   "Consultation scheduled",
		Message: fmt.Sprintf("Consultation with %s on %s", patientName, consultation.ScheduledAt.Format("2 Jan 2006 15:04")),
		Data:    json.RawMessage(data),
	}

	return s.notifRepo.Create(ctx, notif)
}
