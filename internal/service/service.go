package service

import (
	"context"

	"energyai/internal/logger"
	"energyai/internal/mail"
	"energyai/internal/models"
	"energyai/internal/repository"
)

type Authorization interface {
	SignUp(name, email, password string) (models.User, string, error)
	SignIn(email, password string) (models.User, string, error)
	ParseToken(accessToken string) (int, error)
	UpdateName(userID int, name string) error
}

// Predictions covers the submission flow: ML calls, persistence, history.
type Predictions interface {
	Predict(ctx context.Context, req PredictRequest) (PredictResponse, error)
	Store(ctx context.Context, rec models.PredictionRecord) (int, error)
	Recent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error)
}

// Analytics exposes per-request reports over a user's prediction history.
type Analytics interface {
	Insights(ctx context.Context, userID int) (InsightsReport, error)
	Efficiency(ctx context.Context, userID int) (EfficiencyReport, error)
	ExportCSV(ctx context.Context, userID int) ([]byte, error)
}

// Settings reads and updates per-user alert thresholds.
type Settings interface {
	Get(ctx context.Context, userID int) (models.UserSettings, error)
	Update(ctx context.Context, settings models.UserSettings) error
}

// WeatherSource supplies the current-conditions snapshot analytics treats as
// optional input.
type WeatherSource interface {
	Current(ctx context.Context) models.Weather
}

// Predictor is the boundary to the external ML service.
type Predictor interface {
	Predict(ctx context.Context, req PredictRequest) (PredictResponse, error)
	Health(ctx context.Context) error
}

// AlertQueue accepts alert intents for asynchronous best-effort delivery.
type AlertQueue interface {
	Enqueue(to string, intent models.AlertIntent) bool
}

// Alerts is the full dispatcher surface: synchronous dispatch, queued
// dispatch, and the background worker loop. Stop via context cancellation in
// main() for graceful shutdown.
type Alerts interface {
	AlertQueue
	Dispatch(to string, intent models.AlertIntent) bool
	Run(ctx context.Context)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Predictions
	Analytics
	Settings
	Weather WeatherSource
	Alerts  Alerts
}

// Deps carries the process-wide collaborators, constructed once in main with
// injected configuration and passed down by handle.
type Deps struct {
	ML         Predictor
	Weather    WeatherSource
	Mail       mail.Sender
	SigningKey string
	Region     string // emission-factor region code, e.g. "US"
	Log        *logger.Logger
}

// NewService wires the repository layer and collaborators into concrete
// services.
func NewService(repos *repository.Repository, deps Deps) (*Service, error) {
	dispatcher, err := NewDispatcherService(deps.Mail, deps.Log)
	if err != nil {
		return nil, err
	}

	return &Service{
		Authorization: NewAuthService(repos.Auth, deps.SigningKey),
		Predictions:   NewPredictionService(repos, deps.ML, dispatcher, deps.Region, deps.Log),
		Analytics:     NewAnalyticsService(repos.Predictions, deps.Weather),
		Settings:      NewSettingsService(repos.Settings),
		Weather:       deps.Weather,
		Alerts:        dispatcher,
	}, nil
}
