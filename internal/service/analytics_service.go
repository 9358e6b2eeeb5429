package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"energyai/internal/models"
	"energyai/internal/repository"
)

// defaultHistoryLimit is how many recent predictions analytics looks at.
const defaultHistoryLimit = 30

// InsightsReport is the payload for the insights endpoint.
type InsightsReport struct {
	Insights        []models.Insight        `json:"insights"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Weather         models.Weather          `json:"weather"`
}

// EfficiencyReport is the payload for the efficiency endpoint.
type EfficiencyReport struct {
	EfficiencyScore    float64 `json:"efficiency_score"`
	AverageConsumption float64 `json:"average_consumption"`
	Benchmark          float64 `json:"benchmark"`
	AnomalyCount       int     `json:"anomaly_count"`
	RecordsAnalyzed    int     `json:"records_analyzed"`
}

// AnalyticsService computes per-request reports over a fresh snapshot of the
// user's prediction history. No state is shared between requests.
type AnalyticsService struct {
	predRepo repository.PredictionRepo
	weather  WeatherSource
}

func NewAnalyticsService(predRepo repository.PredictionRepo, weather WeatherSource) *AnalyticsService {
	return &AnalyticsService{predRepo: predRepo, weather: weather}
}

// Insights returns insights and recommendations for a user's recent history.
// A user with no history gets a well-formed empty report, not an error.
func (s *AnalyticsService) Insights(ctx context.Context, userID int) (InsightsReport, error) {
	records, err := s.predRepo.ListRecent(ctx, userID, defaultHistoryLimit)
	if err != nil {
		return InsightsReport{}, err
	}

	weather := s.weather.Current(ctx)
	return InsightsReport{
		Insights:        GenerateInsights(records, &weather),
		Recommendations: GenerateRecommendations(records, &weather),
		Weather:         weather,
	}, nil
}

// Efficiency scores a user's recent history against the benchmark.
func (s *AnalyticsService) Efficiency(ctx context.Context, userID int) (EfficiencyReport, error) {
	records, err := s.predRepo.ListRecent(ctx, userID, defaultHistoryLimit)
	if err != nil {
		return EfficiencyReport{}, err
	}

	return EfficiencyReport{
		EfficiencyScore:    EfficiencyScore(records),
		AverageConsumption: meanConsumption(records),
		Benchmark:          BenchmarkKWh,
		AnomalyCount:       len(DetectAnomalies(records, DefaultAnomalySigma)),
		RecordsAnalyzed:    len(records),
	}, nil
}

var csvHeader = []string{
	"id", "date", "season", "temperature", "household_size",
	"predicted_consumption", "model_used", "confidence", "cost", "carbon_footprint",
}

// ExportCSV renders a user's recent predictions as CSV, most recent first.
func (s *AnalyticsService) ExportCSV(ctx context.Context, userID int) ([]byte, error) {
	records, err := s.predRepo.ListRecent(ctx, userID, defaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Date,
			r.Season,
			strconv.FormatFloat(r.Temperature, 'f', 1, 64),
			strconv.Itoa(r.HouseholdSize),
			strconv.FormatFloat(r.PredictedConsumption, 'f', 2, 64),
			r.ModelUsed,
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			strconv.FormatFloat(r.Cost, 'f', 2, 64),
			strconv.FormatFloat(r.CarbonFootprint, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
