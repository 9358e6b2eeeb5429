package models

// AlertKind identifies which notification template an intent maps to.
type AlertKind string

const (
	AlertHighConsumption AlertKind = "high_consumption"
	AlertAnomalyDetected AlertKind = "anomaly_detected"
	AlertCostThreshold   AlertKind = "cost_threshold"
)

// AlertIntent records that a specific notification should go out,
// decoupled from actual delivery. Payload carries the values substituted
// into the template body.
type AlertIntent struct {
	Kind    AlertKind      `json:"kind"`
	Payload map[string]any `json:"payload"`
}
