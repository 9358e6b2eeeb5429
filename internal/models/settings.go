package models

// Defaults applied when a user has never saved settings.
const (
	DefaultHighConsumptionThreshold = 200.0 // kWh
	DefaultCostThreshold            = 50.0  // $
	DefaultNormalConsumption        = 150.0 // kWh
)

// UserSettings holds per-user alert thresholds. One row per user.
type UserSettings struct {
	UserID                   int     `json:"user_id"`
	HighConsumptionThreshold float64 `json:"high_consumption_threshold"`
	CostThreshold            float64 `json:"cost_threshold"`
	NormalConsumption        float64 `json:"normal_consumption"`
	EmailAlertsEnabled       bool    `json:"email_alerts_enabled"`
}

// DefaultSettings returns the baseline thresholds for a user without a
// settings row.
func DefaultSettings(userID int) UserSettings {
	return UserSettings{
		UserID:                   userID,
		HighConsumptionThreshold: DefaultHighConsumptionThreshold,
		CostThreshold:            DefaultCostThreshold,
		NormalConsumption:        DefaultNormalConsumption,
		EmailAlertsEnabled:       true,
	}
}
