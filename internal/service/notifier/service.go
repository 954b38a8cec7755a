// Package notifier simulates the emergency fan-out the portal shows after an
// emergency submission. Alerts fire after fixed delays with no retry, ack,
// or cancellation; this is cosmetic feedback, not a messaging system.
package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/logger"
)

// Alert is one staged notification
type Alert struct {
	RequestID uuid.UUID `json:"request_id"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
}

// Alert stages
const (
	StageSubmitted          = "submitted"
	StageHospitalsContacted = "hospitals_contacted"
	StageDonorsNotified     = "donors_notified"
)

// Dispatcher is the alert sink. The default sink logs; tests inject their own.
type Dispatcher interface {
	Dispatch(alert Alert)
}

type logDispatcher struct {
	log *logger.Logger
}

func (d *logDispatcher) Dispatch(alert Alert) {
	d.log.Info("emergency alert",
		"request_id", alert.RequestID.String(),
		"stage", alert.Stage,
		"message", alert.Message,
	)
}

// Config holds the staged delays
type Config struct {
	HospitalContactDelay time.Duration
	DonorNotifyDelay     time.Duration
}

func DefaultConfig() Config {
	return Config{
		HospitalContactDelay: 2 * time.Second,
		DonorNotifyDelay:     4 * time.Second,
	}
}

// Service schedules the staged alerts
type Service struct {
	dispatcher Dispatcher
	cfg        Config
}

func NewService(dispatcher Dispatcher, cfg Config, log *logger.Logger) *Service {
	if dispatcher == nil {
		dispatcher = &logDispatcher{log: log}
	}
	return &Service{dispatcher: dispatcher, cfg: cfg}
}

// EmergencyCreated acknowledges the submission immediately, then fires the
// two staged follow-ups. Fire-and-forget: the timers outlive the call and
// nothing tracks whether they ran.
func (s *Service) EmergencyCreated(req *model.MedicalRequest) {
	s.dispatcher.Dispatch(Alert{
		RequestID: req.ID,
		Stage:     StageSubmitted,
		Message:   "Emergency request submitted, nearby hospitals and donors will be notified",
	})

	time.AfterFunc(s.cfg.HospitalContactDelay, func() {
		s.dispatcher.Dispatch(Alert{
			RequestID: req.ID,
			Stage:     StageHospitalsContacted,
			Message:   "3 nearby hospitals contacted",
		})
	})

	time.AfterFunc(s.cfg.DonorNotifyDelay, func() {
		s.dispatcher.Dispatch(Alert{
			RequestID: req.ID,
			Stage:     StageDonorsNotified,
			Message:   "12 compatible donors notified",
		})
	})
}
