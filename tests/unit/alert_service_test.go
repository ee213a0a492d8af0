package unit_test

import (
	"context"
	"errors"
	"testing"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/alert"
	"mindtrack/internal/service/hub"
	"mindtrack/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAlertService_Create(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()

	patient := &domain.Patient{
		ID:          patientID,
		ClinicianID: clinicianID,
		FirstName:   "Maya",
		LastName:    stringPtr("Singh"),
	}

	input := domain.CreateAlertInput{
		PatientID:     patientID,
		Severity:      domain.SeverityMedium,
		TriggerSource: domain.TriggerDepressionEpisode,
	}

	t.Run("Persists PENDING and fans out to clinician", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		sub := liveHub.Subscribe(clinicianID)

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		mockAlertRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Alert) bool {
			return a.PatientID == patientID && a.Status == domain.AlertPending
		})).Return(nil).Once()
		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockNotifSvc.On("NotifyNewAlert", ctx, clinicianID, mock.MatchedBy(func(s domain.AlertSummary) bool {
			return s.PatientID == patientID && s.PatientName == "Maya Singh"
		})).Return(nil).Once()

		created, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, domain.AlertPending, created.Status)

		select {
		case payload := <-sub.C():
			assert.Equal(t, domain.EventNewAlert, payload.EventType)
			summary, ok := payload.Data.(domain.AlertSummary)
			assert.True(t, ok)
			assert.Equal(t, created.ID, summary.ID)
		default:
			t.Fatal("expected a live payload for the assigned clinician")
		}

		mockAlertRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Repo failure returns error without fan-out", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		mockAlertRepo.On("Create", ctx, mock.Anything).Return(errors.New("db error")).Once()

		created, err := svc.Create(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, created)
		mockNotifSvc.AssertNotCalled(t, "NotifyNewAlert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Clinician lookup failure does not fail creation", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		mockAlertRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockPatientRepo.On("GetByID", ctx, patientID).Return(nil, errors.New("lookup failed")).Once()

		created, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		mockNotifSvc.AssertNotCalled(t, "NotifyNewAlert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAlertService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	alertID := uuid.New()
	patientID := uuid.New()
	clinicianID := uuid.New()

	patient := &domain.Patient{ID: patientID, ClinicianID: clinicianID, FirstName: "Maya"}

	t.Run("Acknowledge publishes alert_updated", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		sub := liveHub.Subscribe(clinicianID)

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		existing := &domain.Alert{ID: alertID, PatientID: patientID, Status: domain.AlertPending, Severity: domain.SeverityHigh}
		mockAlertRepo.On("GetByID", ctx, alertID).Return(existing, nil).Once()
		mockAlertRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(a *domain.Alert) bool {
			return a.Status == domain.AlertViewed
		})).Return(nil).Once()
		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockNotifSvc.On("NotifyAlertUpdated", ctx, clinicianID, mock.Anything).Return(nil).Once()

		updated, err := svc.UpdateStatus(ctx, alertID, clinicianID, domain.UpdateAlertStatusInput{Status: domain.AlertViewed})

		assert.NoError(t, err)
		assert.Equal(t, domain.AlertViewed, updated.Status)
		assert.Nil(t, updated.ResolvedBy)

		select {
		case payload := <-sub.C():
			assert.Equal(t, domain.EventAlertUpdated, payload.EventType)
		default:
			t.Fatal("expected a live payload for the status change")
		}
	})

	t.Run("Resolving stamps resolver and time", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		existing := &domain.Alert{ID: alertID, PatientID: patientID, Status: domain.AlertContacted}
		mockAlertRepo.On("GetByID", ctx, alertID).Return(existing, nil).Once()
		mockAlertRepo.On("UpdateStatus", ctx, mock.Anything).Return(nil).Once()
		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockNotifSvc.On("NotifyAlertUpdated", ctx, clinicianID, mock.Anything).Return(nil).Once()

		updated, err := svc.UpdateStatus(ctx, alertID, clinicianID, domain.UpdateAlertStatusInput{Status: domain.AlertResolved})

		assert.NoError(t, err)
		assert.Equal(t, domain.AlertResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedBy)
		assert.Equal(t, clinicianID, *updated.ResolvedBy)
		assert.NotNil(t, updated.ResolvedAt)
	})

	t.Run("Resolved alerts are final", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		existing := &domain.Alert{ID: alertID, PatientID: patientID, Status: domain.AlertResolved}
		mockAlertRepo.On("GetByID", ctx, alertID).Return(existing, nil).Once()

		updated, err := svc.UpdateStatus(ctx, alertID, clinicianID, domain.UpdateAlertStatusInput{Status: domain.AlertViewed})

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.Nil(t, updated)
		mockAlertRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("Unknown alert", func(t *testing.T) {
		mockAlertRepo := new(mocks.AlertRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		liveHub := hub.New()
		defer liveHub.Shutdown()

		svc := alert.NewService(mockAlertRepo, mockPatientRepo, mockUserRepo, liveHub, mockNotifSvc, nil)

		mockAlertRepo.On("GetByID", ctx, alertID).Return(nil, nil).Once()

		updated, err := svc.UpdateStatus(ctx, alertID, clinicianID, domain.UpdateAlertStatusInput{Status: domain.AlertViewed})

		assert.ErrorIs(t, err, domain.ErrAlertNotFound)
		assert.Nil(t, updated)
	})
}
