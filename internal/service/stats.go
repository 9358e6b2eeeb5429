package service

import (
	"math"

	"energyai/internal/models"
)

// ----------- Analytics constants -----------
const (
	// BenchmarkKWh is the baseline consumption an efficiency score of 100
	// corresponds to. Averages above it lower the score linearly.
	BenchmarkKWh = 150.0

	// DefaultAnomalySigma is the z-score multiple beyond which a prediction
	// counts as anomalous.
	DefaultAnomalySigma = 2.0

	// minAnomalySamples is the smallest history that gives a usable stddev.
	minAnomalySamples = 3
)

// meanConsumption averages predicted consumption over records.
// Returns 0 for an empty slice.
func meanConsumption(records []models.PredictionRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.PredictedConsumption
	}
	return sum / float64(len(records))
}

// populationStdDev computes the population standard deviation (divide by N)
// of predicted consumption around the given mean.
func populationStdDev(records []models.PredictionRecord, mean float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		d := r.PredictedConsumption - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(records)))
}

// EfficiencyScore rates average consumption against the fixed benchmark on a
// 0-100 scale. Empty history scores 0; results are clamped to [0, 100].
func EfficiencyScore(records []models.PredictionRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	avg := meanConsumption(records)
	score := 100 - ((avg-BenchmarkKWh)/BenchmarkKWh)*100
	return math.Max(0, math.Min(100, score))
}

// DetectAnomalies returns the records whose consumption deviates from the
// sample mean by more than thresholdSigma population standard deviations.
// Fewer than 3 records, or a zero stddev, yields no anomalies.
func DetectAnomalies(records []models.PredictionRecord, thresholdSigma float64) []models.PredictionRecord {
	if len(records) < minAnomalySamples {
		return nil
	}

	mean := meanConsumption(records)
	stdDev := populationStdDev(records, mean)
	if stdDev == 0 {
		return nil
	}

	var anomalies []models.PredictionRecord
	for _, r := range records {
		if math.Abs(r.PredictedConsumption-mean) > thresholdSigma*stdDev {
			anomalies = append(anomalies, r)
		}
	}
	return anomalies
}
