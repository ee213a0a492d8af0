package handler

import "mindtrack/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Patient      *PatientHandler
	DailyLog     *DailyLogHandler
	Alert        *AlertHandler
	Prescription *PrescriptionHandler
	Consultation *ConsultationHandler
	Notification *NotificationHandler
	Document     *DocumentHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
	Stream       *StreamHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Patient:      NewPatientHandler(services.Patient),
		DailyLog:     NewDailyLogHandler(services.DailyLog, services.Patient),
		Alert:        NewAlertHandler(services.Alert),
		Prescription: NewPrescriptionHandler(services.Prescription),
		Consultation: NewConsultationHandler(services.Consultation),
		Notification: NewNotificationHandler(services.Notification),
		Document:     NewDocumentHandler(services.Document),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
		Stream:       NewStreamHandler(services.Hub),
	}
}
