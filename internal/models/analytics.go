package models

// Insight kinds.
const (
	InsightWarning = "warning"
	InsightTip     = "tip"
	InsightAlert   = "alert"
)

// Insight priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Insight is a display-only analytics finding. Computed per request,
// never persisted.
type Insight struct {
	Type     string `json:"type"` // warning | tip | alert
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"` // high | medium | low
}

// Recommendation is a savings suggestion derived from usage and weather.
type Recommendation struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`  // High | Medium | Low
	Savings     string `json:"savings"` // e.g. "15-25%"
}
