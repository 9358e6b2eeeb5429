package models

import "time"

// Seasons accepted by the prediction pipeline.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn/Rainy"
	SeasonWinter = "Winter"
)

// DeviceUsage is one appliance entry of a prediction request.
type DeviceUsage struct {
	Device  string `json:"device"`
	Minutes int    `json:"minutes"`
}

// PredictionRecord is a stored consumption prediction for a household.
// Immutable once stored, except for the derived cost/carbon fields.
type PredictionRecord struct {
	ID                   int           `json:"id"`
	UserID               *int          `json:"user_id,omitempty"` // nil for anonymous submissions
	Temperature          float64       `json:"temperature"`       // °C outdoor
	HouseholdSize        int           `json:"household_size"`
	Season               string        `json:"season"` // Spring | Summer | Autumn/Rainy | Winter
	Date                 string        `json:"date"`   // YYYY-MM-DD
	Devices              []DeviceUsage `json:"devices,omitempty"`
	PredictedConsumption float64       `json:"predicted_consumption"` // kWh
	ModelUsed            string        `json:"model_used"`
	Confidence           float64       `json:"confidence"`
	Cost                 float64       `json:"cost"`             // estimated $, 0 when unknown
	CarbonFootprint      float64       `json:"carbon_footprint"` // kg CO2, derived at store time
	CreatedAt            time.Time     `json:"created_at"`
}
