package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/sentinel"
	"mindtrack/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDailyLog(patientID uuid.UUID, logDate time.Time, mood *int, ideation *bool) *domain.DailyLog {
	return &domain.DailyLog{
		ID:               uuid.New(),
		PatientID:        patientID,
		LogDate:          logDate,
		MoodRating:       mood,
		SuicidalIdeation: ideation,
	}
}

func TestSentinelService_SuicidalIdeation(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Raises HIGH alert", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockAlerts.On("Create", ctx, mock.MatchedBy(func(in domain.CreateAlertInput) bool {
			return in.PatientID == patientID &&
				in.Severity == domain.SeverityHigh &&
				in.TriggerSource == domain.TriggerSuicidalIdeation
		})).Return(&domain.Alert{ID: uuid.New()}, nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, nil, boolPtr(true)), patientID)

		mockAlerts.AssertExpectations(t)
		mockLogRepo.AssertNotCalled(t, "FindPriorWithMood", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Flag false raises nothing", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(4), boolPtr(false)), patientID)

		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Alert creation failure is swallowed", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockAlerts.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed")).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, nil, boolPtr(true)), patientID)

		mockAlerts.AssertExpectations(t)
	})
}

func TestSentinelService_DepressionEpisode(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	lowPriors := []domain.DailyLog{
		{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -1), MoodRating: intPtr(2)},
		{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -2), MoodRating: intPtr(1)},
	}

	t.Run("Three consecutive low-mood days raise MEDIUM", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).Return(lowPriors, nil).Once()
		mockAlerts.On("Create", ctx, mock.MatchedBy(func(in domain.CreateAlertInput) bool {
			return in.Severity == domain.SeverityMedium &&
				in.TriggerSource == domain.TriggerDepressionEpisode
		})).Return(&domain.Alert{ID: uuid.New()}, nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(2), nil), patientID)

		mockLogRepo.AssertExpectations(t)
		mockAlerts.AssertExpectations(t)
	})

	t.Run("Current mood of 1 escalates to HIGH", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).Return(lowPriors, nil).Once()
		mockAlerts.On("Create", ctx, mock.MatchedBy(func(in domain.CreateAlertInput) bool {
			return in.Severity == domain.SeverityHigh &&
				in.TriggerSource == domain.TriggerDepressionEpisode
		})).Return(&domain.Alert{ID: uuid.New()}, nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(1), nil), patientID)

		mockAlerts.AssertExpectations(t)
	})

	t.Run("Only one qualifying prior raises nothing", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).
			Return(lowPriors[:1], nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(1), nil), patientID)

		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("A prior above the threshold raises nothing", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		priors := []domain.DailyLog{
			{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -1), MoodRating: intPtr(3)},
			{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -2), MoodRating: intPtr(1)},
		}
		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).Return(priors, nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(2), nil), patientID)

		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Mood above threshold skips history lookup", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(3), nil), patientID)

		mockLogRepo.AssertNotCalled(t, "FindPriorWithMood", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSentinelService_CombinedTriggers(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Both reasons joined in one alert", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		priors := []domain.DailyLog{
			{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -1), MoodRating: intPtr(1)},
			{PatientID: patientID, LogDate: logDate.AddDate(0, 0, -2), MoodRating: intPtr(2)},
		}
		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).Return(priors, nil).Once()
		mockAlerts.On("Create", ctx, mock.MatchedBy(func(in domain.CreateAlertInput) bool {
			return in.Severity == domain.SeverityHigh &&
				in.TriggerSource == "SUICIDAL_IDEATION, DEPRESSION_EPISODE"
		})).Return(&domain.Alert{ID: uuid.New()}, nil).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(2), boolPtr(true)), patientID)

		mockAlerts.AssertExpectations(t)
	})

	t.Run("History failure aborts even with ideation", func(t *testing.T) {
		mockLogRepo := new(mocks.DailyLogRepository)
		mockAlerts := new(mocks.AlertCreator)
		svc := sentinel.NewService(mockLogRepo, mockAlerts)

		mockLogRepo.On("FindPriorWithMood", ctx, patientID, logDate, 2).
			Return(nil, errors.New("query timeout")).Once()

		svc.Evaluate(ctx, newDailyLog(patientID, logDate, intPtr(2), boolPtr(true)), patientID)

		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSentinelService_MalformedLog(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()

	mockLogRepo := new(mocks.DailyLogRepository)
	mockAlerts := new(mocks.AlertCreator)
	svc := sentinel.NewService(mockLogRepo, mockAlerts)

	t.Run("Nil log", func(t *testing.T) {
		svc.Evaluate(ctx, nil, patientID)
		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Zero log date", func(t *testing.T) {
		svc.Evaluate(ctx, &domain.DailyLog{PatientID: patientID, SuicidalIdeation: boolPtr(true)}, patientID)
		mockAlerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
