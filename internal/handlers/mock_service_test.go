package handlers

import (
	"context"
	"errors"

	"energyai/internal/models"
	"energyai/internal/service"

	"github.com/gin-gonic/gin"
)

// Hand-written service mocks with overridable func fields. Unset funcs return
// zero values so tests only stub what they assert on.

type mockAuth struct {
	signUpFn     func(name, email, password string) (models.User, string, error)
	signInFn     func(email, password string) (models.User, string, error)
	parseTokenFn func(token string) (int, error)
	updateNameFn func(userID int, name string) error
}

func (m *mockAuth) SignUp(name, email, password string) (models.User, string, error) {
	if m.signUpFn != nil {
		return m.signUpFn(name, email, password)
	}
	return models.User{}, "", errors.New("not stubbed")
}

func (m *mockAuth) SignIn(email, password string) (models.User, string, error) {
	if m.signInFn != nil {
		return m.signInFn(email, password)
	}
	return models.User{}, "", errors.New("not stubbed")
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(token)
	}
	return 1, nil
}

func (m *mockAuth) UpdateName(userID int, name string) error {
	if m.updateNameFn != nil {
		return m.updateNameFn(userID, name)
	}
	return nil
}

type mockPredictions struct {
	predictFn func(ctx context.Context, req service.PredictRequest) (service.PredictResponse, error)
	storeFn   func(ctx context.Context, rec models.PredictionRecord) (int, error)
	recentFn  func(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error)
}

func (m *mockPredictions) Predict(ctx context.Context, req service.PredictRequest) (service.PredictResponse, error) {
	if m.predictFn != nil {
		return m.predictFn(ctx, req)
	}
	return service.PredictResponse{}, nil
}

func (m *mockPredictions) Store(ctx context.Context, rec models.PredictionRecord) (int, error) {
	if m.storeFn != nil {
		return m.storeFn(ctx, rec)
	}
	return 0, nil
}

func (m *mockPredictions) Recent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return []models.PredictionRecord{}, nil
}

type mockAnalytics struct {
	insightsFn   func(ctx context.Context, userID int) (service.InsightsReport, error)
	efficiencyFn func(ctx context.Context, userID int) (service.EfficiencyReport, error)
	exportFn     func(ctx context.Context, userID int) ([]byte, error)
}

func (m *mockAnalytics) Insights(ctx context.Context, userID int) (service.InsightsReport, error) {
	if m.insightsFn != nil {
		return m.insightsFn(ctx, userID)
	}
	return service.InsightsReport{
		Insights:        []models.Insight{},
		Recommendations: []models.Recommendation{},
	}, nil
}

func (m *mockAnalytics) Efficiency(ctx context.Context, userID int) (service.EfficiencyReport, error) {
	if m.efficiencyFn != nil {
		return m.efficiencyFn(ctx, userID)
	}
	return service.EfficiencyReport{}, nil
}

func (m *mockAnalytics) ExportCSV(ctx context.Context, userID int) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, userID)
	}
	return nil, nil
}

type mockSettings struct {
	getFn    func(ctx context.Context, userID int) (models.UserSettings, error)
	updateFn func(ctx context.Context, settings models.UserSettings) error
}

func (m *mockSettings) Get(ctx context.Context, userID int) (models.UserSettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.DefaultSettings(userID), nil
}

func (m *mockSettings) Update(ctx context.Context, settings models.UserSettings) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, settings)
	}
	return nil
}

type mockWeather struct {
	weather models.Weather
}

func (m *mockWeather) Current(ctx context.Context) models.Weather { return m.weather }

// newTestRouter builds a router over the given sub-service mocks. Nil mocks
// get safe defaults.
func newTestRouter(svc *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if svc.Authorization == nil {
		svc.Authorization = &mockAuth{}
	}
	if svc.Predictions == nil {
		svc.Predictions = &mockPredictions{}
	}
	if svc.Analytics == nil {
		svc.Analytics = &mockAnalytics{}
	}
	if svc.Settings == nil {
		svc.Settings = &mockSettings{}
	}
	if svc.Weather == nil {
		svc.Weather = &mockWeather{}
	}
	return NewHandler(svc, nil).InitRoutes()
}
