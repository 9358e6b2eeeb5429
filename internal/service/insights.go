package service

import (
	"fmt"

	"energyai/internal/models"
)

// Weather thresholds used by insight/recommendation checks, in °C.
const (
	hotWeatherTempC  = 30.0
	coldWeatherTempC = 20.0
)

// highUsageAvgKWh is the average consumption above which device usage
// recommendations kick in.
const highUsageAvgKWh = 200.0

// GenerateInsights derives display insights from prediction history and an
// optional weather snapshot. The result keeps check-evaluation order; it is
// not sorted by priority. Empty history yields no insights.
func GenerateInsights(records []models.PredictionRecord, weather *models.Weather) []models.Insight {
	insights := []models.Insight{}

	if len(records) == 0 {
		return insights
	}

	if efficiency := EfficiencyScore(records); efficiency < 60 {
		insights = append(insights, models.Insight{
			Type:     models.InsightWarning,
			Title:    "Low Efficiency Detected",
			Message:  fmt.Sprintf("Your energy efficiency score is %.1f%%. Consider optimizing device usage.", efficiency),
			Priority: models.PriorityHigh,
		})
	}

	if weather != nil && weather.Temperature > hotWeatherTempC {
		insights = append(insights, models.Insight{
			Type:     models.InsightTip,
			Title:    "Hot Weather Alert",
			Message:  "High temperatures detected. Consider setting AC to 24°C to save energy.",
			Priority: models.PriorityMedium,
		})
	}

	if anomalies := DetectAnomalies(records, DefaultAnomalySigma); len(anomalies) > 0 {
		insights = append(insights, models.Insight{
			Type:     models.InsightAlert,
			Title:    "Unusual Usage Pattern",
			Message:  fmt.Sprintf("%d anomalous consumption patterns detected in recent predictions.", len(anomalies)),
			Priority: models.PriorityHigh,
		})
	}

	return insights
}

// GenerateRecommendations derives savings suggestions from prediction history
// and an optional weather snapshot. Order is fixed; the LED recommendation is
// always appended when any history exists.
func GenerateRecommendations(records []models.PredictionRecord, weather *models.Weather) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if len(records) == 0 {
		return recommendations
	}

	if meanConsumption(records) > highUsageAvgKWh {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "devices",
			Title:       "Optimize Device Usage",
			Description: "Consider reducing AC usage during peak hours",
			Impact:      "High",
			Savings:     "15-25%",
		})
	}

	if weather != nil && weather.Temperature < coldWeatherTempC {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "heating",
			Title:       "Efficient Heating",
			Description: "Use programmable thermostat to optimize heating schedules",
			Impact:      "Medium",
			Savings:     "10-15%",
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Category:    "general",
		Title:       "LED Lighting",
		Description: "Switch to LED bulbs for 80% lighting energy savings",
		Impact:      "Low",
		Savings:     "5-10%",
	})

	return recommendations
}
