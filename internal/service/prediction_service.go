package service

import (
	"context"

	"energyai/internal/logger"
	"energyai/internal/models"
	"energyai/internal/repository"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// PredictionService runs the submission flow: call the ML service, persist
// records, and hand threshold alerts to the dispatcher.
type PredictionService struct {
	predRepo     repository.PredictionRepo
	settingsRepo repository.SettingsRepo
	authRepo     repository.Authorization
	ml           Predictor
	alerts       AlertQueue
	region       string
	log          *logger.Logger
}

func NewPredictionService(
	repos *repository.Repository,
	ml Predictor,
	alerts AlertQueue,
	region string,
	log *logger.Logger,
) *PredictionService {
	return &PredictionService{
		predRepo:     repos.Predictions,
		settingsRepo: repos.Settings,
		authRepo:     repos.Auth,
		ml:           ml,
		alerts:       alerts,
		region:       region,
		log:          log,
	}
}

// Predict forwards household parameters to the ML service.
func (s *PredictionService) Predict(ctx context.Context, req PredictRequest) (PredictResponse, error) {
	return s.ml.Predict(ctx, req)
}

// Store persists a prediction record, deriving the carbon footprint when the
// caller didn't supply one, then evaluates the owner's alert thresholds.
// Triggered alerts are enqueued best-effort; delivery never blocks or fails
// the store.
func (s *PredictionService) Store(ctx context.Context, rec models.PredictionRecord) (int, error) {
	if rec.CarbonFootprint == 0 {
		rec.CarbonFootprint = EstimateCarbon(rec.PredictedConsumption, s.region)
	}

	id, err := s.predRepo.Store(ctx, rec)
	if err != nil {
		return 0, err
	}
	rec.ID = id

	if rec.UserID != nil {
		s.evaluateAlerts(ctx, *rec.UserID, rec)
	}
	return id, nil
}

// Recent returns a user's latest predictions, most recent first. Limit is
// clamped to a sane range; zero means the default.
func (s *PredictionService) Recent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.predRepo.ListRecent(ctx, userID, limit)
}

// evaluateAlerts checks the new record against the owner's thresholds and
// enqueues any triggered intents. Failures here are logged and swallowed;
// alerting must not affect the submission path.
func (s *PredictionService) evaluateAlerts(ctx context.Context, userID int, rec models.PredictionRecord) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("alert_settings_load_failed", "user_id", userID, "err", err)
		}
		return
	}
	if !settings.EmailAlertsEnabled {
		return
	}

	intents := CheckThresholds(ThresholdInput{
		Consumption: rec.PredictedConsumption,
		Cost:        rec.Cost,
	}, settings)
	if len(intents) == 0 {
		return
	}

	user, err := s.authRepo.GetByID(userID)
	if err != nil || user == nil {
		if s.log != nil {
			s.log.Errorw("alert_user_lookup_failed", "user_id", userID, "err", err)
		}
		return
	}

	for _, intent := range intents {
		s.alerts.Enqueue(user.Email, intent)
	}
}
