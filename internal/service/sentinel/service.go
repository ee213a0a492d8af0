// Package sentinel holds the risk-detection rule that runs after every
// daily log submission. It inspects the new log and the patient's recent
// history and raises a clinical alert when a risk condition is met.
package sentinel

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

// Mood ratings at or below this threshold count as a low-mood day
// (1–5 ordinal scale, lower is worse).
const lowMoodThreshold = 2

// Number of qualifying prior logs that must all be low-mood for the
// depression-episode trigger to fire.
const episodeLookback = 2

// AlertCreator is what the evaluator needs from the alert side: a single
// creation entry point that also handles downstream notification fan-out.
type AlertCreator interface {
	Create(ctx context.Context, input domain.CreateAlertInput) (*domain.Alert, error)
}

type Service interface {
	// Evaluate runs the risk rules against a just-persisted daily log.
	// It is called exactly once per successful log creation, after the
	// insert has committed. It never fails the caller: every error is
	// logged and swallowed.
	Evaluate(ctx context.Context, dailyLog *domain.DailyLog, patientID uuid.UUID)
}

type service struct {
	dailyLogRepo repository.DailyLogRepository
	alerts       AlertCreator
}

func NewService(dailyLogRepo repository.DailyLogRepository, alerts AlertCreator) Service {
	return &service{
		dailyLogRepo: dailyLogRepo,
		alerts:       alerts,
	}
}

func (s *service) Evaluate(ctx context.Context, dailyLog *domain.DailyLog, patientID uuid.UUID) {
	if dailyLog == nil || dailyLog.LogDate.IsZero() {
		log.Printf("sentinel: skipping malformed daily log for patient %s", patientID)
		return
	}

	shouldAlert := false
	severity := domain.SeverityMedium
	var triggerReasons []string

	if dailyLog.HasSuicidalIdeation() {
		shouldAlert = true
		severity = domain.SeverityHigh
		triggerReasons = append(triggerReasons, domain.TriggerSuicidalIdeation)
	}

	if dailyLog.MoodRating != nil && *dailyLog.MoodRating <= lowMoodThreshold {
		episode, err := s.hasDepressionEpisode(ctx, patientID, dailyLog)
		if err != nil {
			log.Printf("sentinel: history lookup failed for patient %s: %v", patientID, err)
			return
		}
		if episode {
			shouldAlert = true
			triggerReasons = append(triggerReasons, domain.TriggerDepressionEpisode)
			if severity != domain.SeverityHigh {
				if *dailyLog.MoodRating == 1 {
					severity = domain.SeverityHigh
				} else {
					severity = domain.SeverityMedium
				}
			}
		}
	}

	if !shouldAlert {
		return
	}

	input := domain.CreateAlertInput{
		PatientID:     patientID,
		Severity:      severity,
		TriggerSource: strings.Join(triggerReasons, ", "),
	}

	if _, err := s.alerts.Create(ctx, input); err != nil {
		log.Printf("sentinel: alert creation failed for patient %s: %v", patientID, err)
	}
}

// hasDepressionEpisode reports whether the two most recent prior logs with a
// mood rating both sit at or below the low-mood threshold. Fewer than two
// qualifying priors never triggers.
func (s *service) hasDepressionEpisode(ctx context.Context, patientID uuid.UUID, current *domain.DailyLog) (bool, error) {
	priors, err := s.dailyLogRepo.FindPriorWithMood(ctx, patientID, current.LogDate, episodeLookback)
	if err != nil {
		return false, err
	}
	if len(priors) < episodeLookback {
		return false, nil
	}

	for _, prior := range priors {
		if prior.MoodRating == nil || *prior.MoodRating > lowMoodThreshold {
			return false, nil
		}
	}
	return true, nil
}
