package service

import (
	"context"
	"errors"

	"energyai/internal/models"
	"energyai/internal/repository"
)

var errInvalidThreshold = errors.New("thresholds must be positive")

// SettingsService reads and updates per-user alert thresholds.
type SettingsService struct {
	settingsRepo repository.SettingsRepo
}

func NewSettingsService(repo repository.SettingsRepo) *SettingsService {
	return &SettingsService{settingsRepo: repo}
}

// Get returns the user's settings, falling back to defaults for users who
// never saved any.
func (s *SettingsService) Get(ctx context.Context, userID int) (models.UserSettings, error) {
	return s.settingsRepo.Get(ctx, userID)
}

// Update validates and persists new thresholds for a user.
func (s *SettingsService) Update(ctx context.Context, settings models.UserSettings) error {
	if settings.HighConsumptionThreshold <= 0 || settings.CostThreshold <= 0 || settings.NormalConsumption <= 0 {
		return errInvalidThreshold
	}
	return s.settingsRepo.Upsert(ctx, settings)
}
