package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Patient      PatientRepository
	DailyLog     DailyLogRepository
	Alert        AlertRepository
	Prescription PrescriptionRepository
	Consultation ConsultationRepository
	Notification NotificationRepository
	Document     DocumentRepository
	AuditLog     AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Patient:      NewPatientRepository(db),
		DailyLog:     NewDailyLogRepository(db),
		Alert:        NewAlertRepository(db),
		Prescription: NewPrescriptionRepository(db),
		Consultation: NewConsultationRepository(db),
		Notification: NewNotificationRepository(db),
		Document:     NewDocumentRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
