package unit_test

import (
	"context"
	"errors"
	"testing"

	"mindtrack/internal/domain"
	"mindtrack/internal/service/patient"
	"mindtrack/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPatientService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	clinicianID := uuid.New()

	input := domain.CreatePatientInput{
		ClinicianID: clinicianID,
		FirstName:   "Maya",
		LastName:    stringPtr("Singh"),
		Gender:      domain.GenderFemale,
	}

	t.Run("Success writes audit entry", func(t *testing.T) {
		mockPatientRepo := new(mocks.PatientRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		svc := patient.NewService(mockPatientRepo, mockAuditRepo, nil)

		mockPatientRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
			return p.FirstName == "Maya" && p.ClinicianID == clinicianID && p.CreatedBy == userID
		})).Return(nil).Once()

		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "CREATE" && log.EntityType == "PATIENT" && log.UserID == userID
		})).Return(nil).Once()

		created, err := svc.Create(ctx, userID, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "Maya Singh", created.FullName())

		mockPatientRepo.AssertExpectations(t)
		mockAuditRepo.AssertExpectations(t)
	})

	t.Run("Repo error", func(t *testing.T) {
		mockPatientRepo := new(mocks.PatientRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		svc := patient.NewService(mockPatientRepo, mockAuditRepo, nil)

		mockPatientRepo.On("Create", ctx, mock.Anything).Return(errors.New("db error")).Once()

		created, err := svc.Create(ctx, userID, input)

		assert.Error(t, err)
		assert.Nil(t, created)
		mockAuditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPatientService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	patientID := uuid.New()

	t.Run("Reassignment changes clinician", func(t *testing.T) {
		mockPatientRepo := new(mocks.PatientRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		svc := patient.NewService(mockPatientRepo, mockAuditRepo, nil)

		existing := &domain.Patient{ID: patientID, ClinicianID: uuid.New(), FirstName: "Maya"}
		newClinician := uuid.New()

		mockPatientRepo.On("GetByID", ctx, patientID).Return(existing, nil).Once()
		mockPatientRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
			return p.ClinicianID == newClinician
		})).Return(nil).Once()
		mockAuditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		updated, err := svc.Update(ctx, patientID, userID, domain.UpdatePatientInput{ClinicianID: &newClinician})

		assert.NoError(t, err)
		assert.Equal(t, newClinician, updated.ClinicianID)
	})

	t.Run("Missing patient", func(t *testing.T) {
		mockPatientRepo := new(mocks.PatientRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		svc := patient.NewService(mockPatientRepo, mockAuditRepo, nil)

		mockPatientRepo.On("GetByID", ctx, patientID).Return(nil, nil).Once()

		updated, err := svc.Update(ctx, patientID, userID, domain.UpdatePatientInput{})

		assert.ErrorIs(t, err, domain.ErrPatientNotFound)
		assert.Nil(t, updated)
	})
}

func TestPatientService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	patientID := uuid.New()

	mockPatientRepo := new(mocks.PatientRepository)
	mockAuditRepo := new(mocks.AuditLogRepository)
	svc := patient.NewService(mockPatientRepo, mockAuditRepo, nil)

	existing := &domain.Patient{ID: patientID, ClinicianID: uuid.New(), FirstName: "Maya"}

	mockPatientRepo.On("GetByID", ctx, patientID).Return(existing, nil).Once()
	mockPatientRepo.On("Delete", ctx, patientID).Return(nil).Once()
	mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
		return log.Action == "DELETE" && log.EntityType == "PATIENT"
	})).Return(nil).Once()

	err := svc.Delete(ctx, patientID, userID)

	assert.NoError(t, err)
	mockPatientRepo.AssertExpectations(t)
	mockAuditRepo.AssertExpectations(t)
}
