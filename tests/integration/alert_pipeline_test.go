//go:build integration
// +build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
	alertsvc "mindtrack/internal/service/alert"
	"mindtrack/internal/service/dailylog"
	"mindtrack/internal/service/hub"
	"mindtrack/internal/service/notification"
	"mindtrack/internal/service/sentinel"
)

func seedClinicianAndPatient(t *testing.T, repos *repository.Repositories) (*domain.User, *domain.Patient) {
	ctx := context.Background()

	clinician := &domain.User{
		ID:           uuid.New(),
		Email:        "clinician@example.com",
		PasswordHash: "x",
		FullName:     "Dr. Chen",
		Role:         "clinician",
		IsActive:     true,
	}
	require.NoError(t, repos.User.Create(ctx, clinician))

	patient := &domain.Patient{
		ID:          uuid.New(),
		ClinicianID: clinician.ID,
		FirstName:   "Maya",
		Gender:      domain.GenderFemale,
		CreatedBy:   clinician.ID,
	}
	require.NoError(t, repos.Patient.Create(ctx, patient))

	return clinician, patient
}

// Submitting a third consecutive low-mood day must produce a PENDING alert,
// a persisted inbox notification, and a live payload for the clinician.
func TestLowMoodStreakRaisesAlert(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.DB.Close()

	ctx := context.Background()
	repos := repository.NewRepositories(env.DB)
	clinician, patient := seedClinicianAndPatient(t, repos)

	liveHub := hub.New()
	defer liveHub.Shutdown()

	notifSvc := notification.NewService(repos.Notification)
	alerts := alertsvc.NewService(repos.Alert, repos.Patient, repos.User, liveHub, notifSvc, nil)
	sentinelSvc := sentinel.NewService(repos.DailyLog, alerts)
	logs := dailylog.NewService(repos.DailyLog, repos.Patient, sentinelSvc, nil)

	sub := liveHub.Subscribe(clinician.ID)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mood := 2
	for offset := -2; offset <= 0; offset++ {
		m := mood
		_, err := logs.Create(ctx, patient.ID, domain.CreateDailyLogInput{
			LogDate:    day.AddDate(0, 0, offset),
			MoodRating: &m,
		})
		require.NoError(t, err)
	}

	created, total, err := repos.Alert.ListByPatient(ctx, patient.ID, domain.DefaultPagination())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, domain.AlertPending, created[0].Status)
	assert.Equal(t, domain.SeverityMedium, created[0].Severity)
	assert.Equal(t, domain.TriggerDepressionEpisode, created[0].TriggerSource)

	select {
	case payload := <-sub.C():
		assert.Equal(t, domain.EventNewAlert, payload.EventType)
	case <-time.After(time.Second):
		t.Fatal("expected a live payload for the clinician")
	}

	count, err := repos.Notification.CountUnread(ctx, clinician.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// A second log for the same day must be rejected by the unique constraint.
func TestDuplicateDailyLogRejected(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.DB.Close()

	ctx := context.Background()
	repos := repository.NewRepositories(env.DB)
	_, patient := seedClinicianAndPatient(t, repos)

	logs := dailylog.NewService(repos.DailyLog, repos.Patient, nil, nil)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mood := 4

	_, err := logs.Create(ctx, patient.ID, domain.CreateDailyLogInput{LogDate: day, MoodRating: &mood})
	require.NoError(t, err)

	_, err = logs.Create(ctx, patient.ID, domain.CreateDailyLogInput{LogDate: day, MoodRating: &mood})
	assert.ErrorIs(t, err, domain.ErrDailyLogExists)
}

// Resolving an alert is final; any later status change is rejected.
func TestAlertLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.DB.Close()

	ctx := context.Background()
	repos := repository.NewRepositories(env.DB)
	clinician, patient := seedClinicianAndPatient(t, repos)

	liveHub := hub.New()
	defer liveHub.Shutdown()

	notifSvc := notification.NewService(repos.Notification)
	alerts := alertsvc.NewService(repos.Alert, repos.Patient, repos.User, liveHub, notifSvc, nil)

	created, err := alerts.Create(ctx, domain.CreateAlertInput{
		PatientID:     patient.ID,
		Severity:      domain.SeverityHigh,
		TriggerSource: domain.TriggerSuicidalIdeation,
	})
	require.NoError(t, err)

	_, err = alerts.UpdateStatus(ctx, created.ID, clinician.ID, domain.UpdateAlertStatusInput{Status: domain.AlertViewed})
	require.NoError(t, err)

	resolved, err := alerts.UpdateStatus(ctx, created.ID, clinician.ID, domain.UpdateAlertStatusInput{Status: domain.AlertResolved})
	require.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, clinician.ID, *resolved.ResolvedBy)

	_, err = alerts.UpdateStatus(ctx, created.ID, clinician.ID, domain.UpdateAlertStatusInput{Status: domain.AlertContacted})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
