package domain

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrDailyLogNotFound     = errors.New("daily log not found")
	ErrDailyLogExists       = errors.New("daily log already exists for this date")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidStatus        = errors.New("invalid status transition")
	ErrNotPatientOwner      = errors.New("log does not belong to the authenticated patient")
)
