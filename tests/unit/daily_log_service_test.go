package unit_test

import (
	"context"
	"testing"
	"time"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/dailylog"
	"mindtrack/internal/service/sentinel"
	"mindtrack/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDailyLogService_Create(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	patient := &domain.Patient{ID: patientID, ClinicianID: clinicianID, FirstName: "Maya"}

	t.Run("Stores log and runs evaluation", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockAlerts := new(mocks.AlertCreator)

		sentinelSvc := sentinel.NewService(mockLogRepo, mockAlerts)
		svc := dailylog.NewService(mockLogRepo, mockPatientRepo, sentinelSvc, nil)

		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockLogRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.DailyLog) bool {
			return l.PatientID == patientID && l.LogDate.Equal(logDate)
		})).Return(nil).Once()

		// The submitted log reports suicidal ideation, so the evaluation
		// raises a HIGH alert in the same call.
		mockAlerts.On("Create", ctx, mock.MatchedBy(func(in domain.CreateAlertInput) bool {
			return in.Severity == domain.SeverityHigh &&
				in.TriggerSource == domain.TriggerSuicidalIdeation
		})).Return(&domain.Alert{ID: uuid.New()}, nil).Once()

		log, err := svc.Create(ctx, patientID, domain.CreateDailyLogInput{
			LogDate:          logDate,
			MoodRating:       intPtr(4),
			SuicidalIdeation: boolPtr(true),
		})

		assert.NoError(t, err)
		assert.NotNil(t, log)
		mockLogRepo.AssertExpectations(t)
		mockAlerts.AssertExpectations(t)
	})

	t.Run("Quiet log stores without alert", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockAlerts := new(mocks.AlertCreator)

		sentinelSvc := sentinel.NewService(mockLogRepo, mockAlerts)
		svc := dailylog.NewService(mockLogRepo, mockPatientRepo, sentinelSvc, nil)

		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockLogRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		log, err := svc.Create(ctx, patientID, domain.CreateDailyLogInput{
			LogDate:    logDate,
			MoodRating: intPtr(4),
		})

		assert.NoError(t, err)
		assert.NotNil(t, log)
		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate date surfaces conflict", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockPatientRepo := new(mocks.PatientRepository)
		mockAlerts := new(mocks.AlertCreator)

		sentinelSvc := sentinel.NewService(mockLogRepo, mockAlerts)
		svc := dailylog.NewService(mockLogRepo, mockPatientRepo, sentinelSvc, nil)

		mockPatientRepo.On("GetByID", ctx, patientID).Return(patient, nil).Once()
		mockLogRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDailyLogExists).Once()

		log, err := svc.Create(ctx, patientID, domain.CreateDailyLogInput{LogDate: logDate})

		assert.ErrorIs(t, err, domain.ErrDailyLogExists)
		assert.Nil(t, log)
		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown patient", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockPatientRepo := new(mocks.PatientRepository)

		svc := dailylog.NewService(mockLogRepo, mockPatientRepo, nil, nil)

		mockPatientRepo.On("GetByID", ctx, patientID).Return(nil, nil).Once()

		log, err := svc.Create(ctx, patientID, domain.CreateDailyLogInput{LogDate: logDate})

		assert.ErrorIs(t, err, domain.ErrPatientNotFound)
		assert.Nil(t, log)
		mockLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDailyLogService_GetByID(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()

	mockLogRepo := new(mocks.DailyLogRepository)
	mockPatientRepo := new(mocks.PatientRepository)
	svc := dailylog.NewService(mockLogRepo, mockPatientRepo, nil, nil)

	t.Run("Found", func(t *testing.T) {
		expected := &domain.DailyLog{ID: logID}
		mockLogRepo.On("GetByID", ctx, logID).Return(expected, nil).Once()

		log, err := svc.GetByID(ctx, logID)

		assert.NoError(t, err)
		assert.Equal(t, logID, log.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		mockLogRepo.On("GetByID", ctx, logID).Return(nil, nil).Once()

		log, err := svc.GetByID(ctx, logID)

		assert.ErrorIs(t, err, domain.ErrDailyLogNotFound)
		assert.Nil(t, log)
	})
}
