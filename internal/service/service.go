package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"mindtrack/internal/config"
	"mindtrack/internal/repository"
	"mindtrack/internal/service/alert"
	"mindtrack/internal/service/audit"
	"mindtrack/internal/service/auth"
	"mindtrack/internal/service/consultation"
	"mindtrack/internal/service/dailylog"
	"mindtrack/internal/service/dashboard"
	"mindtrack/internal/service/document"
	"mindtrack/internal/service/email"
	"mindtrack/internal/service/hub"
	"mindtrack/internal/service/notification"
	"mindtrack/internal/service/patient"
	"mindtrack/internal/service/prescription"
	"mindtrack/internal/service/sentinel"
	"mindtrack/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Patient      patient.Service
	DailyLog     dailylog.Service
	Alert        alert.Service
	Sentinel     sentinel.Service
	Prescription prescription.Service
	Consultation consultation.Service
	Notification notification.Service
	Document     document.Service
	Dashboard    dashboard.Service
	Audit        audit.Service
	Email        email.Service
	Hub          *hub.Hub
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	liveHub := hub.New()

	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	notificationService := notification.NewService(repos.Notification)
	alertService := alert.NewService(repos.Alert, repos.Patient, repos.User, liveHub, notificationService, emailService)
	sentinelService := sentinel.NewService(repos.DailyLog, alertService)
	dailyLogService := dailylog.NewService(repos.DailyLog, repos.Patient, sentinelService, redis)
	patientService := patient.NewService(repos.Patient, repos.AuditLog, redis)
	prescriptionService := prescription.NewService(repos.Prescription, repos.Patient, repos.AuditLog)
	consultationService := consultation.NewService(repos.Consultation, repos.Patient, repos.AuditLog, notificationService)
	documentService := document.NewService(repos.Document, minioClient, cfg)
	dashboardService := dashboard.NewService(repos.Patient, repos.Alert, repos.DailyLog, repos.Consultation, redis)
	auditService := audit.NewService(repos.AuditLog)
	userService := user.NewService(repos.User)

	return &Services{
		Auth:         authService,
		User:         userService,
		Patient:      patientService,
		DailyLog:     dailyLogService,
		Alert:        alertService,
		Sentinel:     sentinelService,
		Prescription: prescriptionService,
		Consultation: consultationService,
		Notification: notificationService,
		Document:     documentService,
		Dashboard:    dashboardService,
		Audit:        auditService,
		Email:        emailService,
		Hub:          liveHub,
	}
}
