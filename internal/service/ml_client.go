package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"energyai/internal/models"
)

// PredictRequest is the feature payload sent to the ML service.
type PredictRequest struct {
	Temperature   float64 `json:"temperature"`
	HouseholdSize int     `json:"householdSize"`
	Season        string  `json:"season"`
	Date          string  `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime     string  `json:"startTime,omitempty"` // HH:MM
	ApplianceType string  `json:"applianceType,omitempty"`
}

// PredictResponse carries per-model consumption predictions in kWh.
type PredictResponse struct {
	LinearRegression float64            `json:"linear_regression"`
	KNN              float64            `json:"knn"`
	RandomForest     float64            `json:"random_forest"`
	ModelScores      map[string]float64 `json:"model_scores,omitempty"`
	IsMock           bool               `json:"is_mock,omitempty"`
}

// MLClient talks to the external Python prediction service.
type MLClient struct {
	serviceURL string
	httpClient *http.Client
}

func NewMLClient(serviceURL string) *MLClient {
	return &MLClient{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Predict calls the ML service. Network or status failures fall back to a
// deterministic seasonal estimate so the submission flow keeps working when
// the model host is down.
func (c *MLClient) Predict(ctx context.Context, req PredictRequest) (PredictResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return PredictResponse{}, fmt.Errorf("ml: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return PredictResponse{}, fmt.Errorf("ml: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.fallbackPrediction(req), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallbackPrediction(req), nil
	}

	var prediction PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return PredictResponse{}, fmt.Errorf("ml: decode response: %w", err)
	}
	return prediction, nil
}

// Health checks ML service connectivity.
func (c *MLClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serviceURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ml: create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ml: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml: health check returned status %d", resp.StatusCode)
	}
	return nil
}

// fallbackPrediction estimates consumption from season and household size
// when the model host is unreachable. Deterministic so repeated calls with
// the same input agree.
func (c *MLClient) fallbackPrediction(req PredictRequest) PredictResponse {
	var base float64
	switch req.Season {
	case models.SeasonSummer:
		base = 180 // cooling load
	case models.SeasonWinter:
		base = 170 // heating load
	default:
		base = 140
	}
	estimate := base + float64(req.HouseholdSize)*12

	return PredictResponse{
		LinearRegression: estimate,
		KNN:              estimate,
		RandomForest:     estimate,
		IsMock:           true,
	}
}
