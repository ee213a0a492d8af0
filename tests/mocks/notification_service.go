package mocks

import (
	"context"

	"mindtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyNewAlert(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error {
	args := m.Called(ctx, clinicianID, summary)
	return args.Error(0)
}

func (m *NotificationService) NotifyAlertUpdated(ctx context.Context, clinicianID uuid.UUID, summary domain.AlertSummary) error {
	args := m.Called(ctx, clinicianID, summary)
	return args.Error(0)
}

func (m *NotificationService) NotifyConsultationBooked(ctx context.Context, clinicianID uuid.UUID, consultation *domain.Consultation, patientName string) error {
	args := m.Called(ctx, clinicianID, consultation, patientName)
	return args.Error(0)
}
