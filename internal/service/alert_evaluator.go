package service

import (
	"math"

	"energyai/internal/models"
)

// ThresholdInput is the slice of a stored prediction that threshold checks
// look at.
type ThresholdInput struct {
	Consumption float64 // kWh
	Cost        float64 // $
}

// CheckThresholds compares one prediction against a user's thresholds and
// returns the alert intents that should be dispatched. Both checks are
// independent, so zero, one, or two intents may result. Pure: no storage
// access, no delivery.
//
// The reported percentage is relative to the user's normal consumption, not
// the threshold, so it can come out negative when consumption sits below
// normal yet above the absolute threshold. That asymmetry is intentional.
func CheckThresholds(p ThresholdInput, settings models.UserSettings) []models.AlertIntent {
	var intents []models.AlertIntent

	if p.Consumption > settings.HighConsumptionThreshold {
		percentage := math.Round(((p.Consumption - settings.NormalConsumption) / settings.NormalConsumption) * 100)
		intents = append(intents, models.AlertIntent{
			Kind: models.AlertHighConsumption,
			Payload: map[string]any{
				"consumption": p.Consumption,
				"percentage":  percentage,
			},
		})
	}

	if p.Cost > settings.CostThreshold {
		intents = append(intents, models.AlertIntent{
			Kind: models.AlertCostThreshold,
			Payload: map[string]any{
				"cost":      p.Cost,
				"threshold": settings.CostThreshold,
			},
		})
	}

	return intents
}
