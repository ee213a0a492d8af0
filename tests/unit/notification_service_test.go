package unit_test

import (
	"context"
	"testing"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/notification"
	"mindtrack/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_NotifyNewAlert(t *testing.T) {
	ctx := context.Background()
	clinicianID := uuid.New()

	mockNotifRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockNotifRepo)

	summary := domain.AlertSummary{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		PatientName:   "Maya Singh",
		Severity:      domain.SeverityHigh,
		TriggerSource: domain.TriggerSuicidalIdeation,
		Status:        domain.AlertPending,
	}

	mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == clinicianID &&
			n.Type == domain.NotifNewAlert &&
			len(n.Data) > 0
	})).Return(nil).Once()

	err := svc.NotifyNewAlert(ctx, clinicianID, summary)

	assert.NoError(t, err)
	mockNotifRepo.AssertExpectations(t)
}

func TestNotificationService_UnreadFlow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockNotifRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockNotifRepo)

	t.Run("Unread count", func(t *testing.T) {
		mockNotifRepo.On("CountUnread", ctx, userID).Return(int64(3), nil).Once()

		count, err := svc.GetUnreadCount(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("List paginates", func(t *testing.T) {
		params := domain.PaginationParams{Page: 1, PageSize: 10}
		items := []domain.Notification{{ID: uuid.New(), UserID: userID}}
		mockNotifRepo.On("ListByUser", ctx, userID, true, params).Return(items, int64(1), nil).Once()

		result, err := svc.List(ctx, userID, true, params)

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, int64(1), result.TotalItems)
	})

	t.Run("Mark all read", func(t *testing.T) {
		mockNotifRepo.On("MarkAllAsRead", ctx, userID).Return(nil).Once()

		assert.NoError(t, svc.MarkAllAsRead(ctx, userID))
	})
}
