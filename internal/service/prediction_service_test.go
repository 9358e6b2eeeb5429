package service

import (
	"context"
	"errors"
	"testing"

	"energyai/internal/models"
	"energyai/internal/repository"
)

// ---- fakes ----

type fakePredictionRepo struct {
	storeID  int
	storeErr error
	stored   []models.PredictionRecord

	listResp []models.PredictionRecord
	listErr  error
}

func (f *fakePredictionRepo) Store(ctx context.Context, rec models.PredictionRecord) (int, error) {
	f.stored = append(f.stored, rec)
	return f.storeID, f.storeErr
}

func (f *fakePredictionRepo) ListRecent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error) {
	return f.listResp, f.listErr
}

type fakeSettingsRepo struct {
	settings models.UserSettings
	getErr   error
	upserted []models.UserSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context, userID int) (models.UserSettings, error) {
	return f.settings, f.getErr
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s models.UserSettings) error {
	f.upserted = append(f.upserted, s)
	return nil
}

type fakeAuthRepo struct {
	user *models.User
	err  error
}

func (f *fakeAuthRepo) Create(name, email, hash string) (int, error) { return 1, nil }
func (f *fakeAuthRepo) GetByEmail(email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, f.err
	}
	return nil, f.err
}
func (f *fakeAuthRepo) GetByID(id int) (*models.User, error) { return f.user, f.err }
func (f *fakeAuthRepo) UpdateName(id int, name string) error { return nil }

type fakeAlertQueue struct {
	enqueued []models.AlertIntent
	tos      []string
}

func (f *fakeAlertQueue) Enqueue(to string, intent models.AlertIntent) bool {
	f.tos = append(f.tos, to)
	f.enqueued = append(f.enqueued, intent)
	return true
}

type fakePredictor struct {
	resp PredictResponse
	err  error
}

func (f *fakePredictor) Predict(ctx context.Context, req PredictRequest) (PredictResponse, error) {
	return f.resp, f.err
}
func (f *fakePredictor) Health(ctx context.Context) error { return nil }

func newTestPredictionService(
	predRepo *fakePredictionRepo,
	settingsRepo *fakeSettingsRepo,
	authRepo *fakeAuthRepo,
	alerts *fakeAlertQueue,
) *PredictionService {
	repos := &repository.Repository{
		Predictions: predRepo,
		Settings:    settingsRepo,
		Auth:        authRepo,
	}
	return NewPredictionService(repos, &fakePredictor{}, alerts, "US", nil)
}

// ---- tests ----

func TestStore_DerivesCarbonFootprint(t *testing.T) {
	predRepo := &fakePredictionRepo{storeID: 7}
	svc := newTestPredictionService(predRepo, &fakeSettingsRepo{settings: models.DefaultSettings(1)}, &fakeAuthRepo{}, &fakeAlertQueue{})

	id, err := svc.Store(context.Background(), models.PredictionRecord{PredictedConsumption: 100})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if len(predRepo.stored) != 1 {
		t.Fatalf("stored %d records, want 1", len(predRepo.stored))
	}
	// 100 kWh * 0.4 (US)
	if got := predRepo.stored[0].CarbonFootprint; got != 40 {
		t.Fatalf("derived carbon = %v, want 40", got)
	}
}

func TestStore_KeepsCallerCarbonFootprint(t *testing.T) {
	predRepo := &fakePredictionRepo{storeID: 1}
	svc := newTestPredictionService(predRepo, &fakeSettingsRepo{settings: models.DefaultSettings(1)}, &fakeAuthRepo{}, &fakeAlertQueue{})

	_, err := svc.Store(context.Background(), models.PredictionRecord{PredictedConsumption: 100, CarbonFootprint: 55})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if got := predRepo.stored[0].CarbonFootprint; got != 55 {
		t.Fatalf("carbon = %v, want caller value 55", got)
	}
}

func TestStore_EnqueuesTriggeredAlerts(t *testing.T) {
	userID := 3
	predRepo := &fakePredictionRepo{storeID: 1}
	alerts := &fakeAlertQueue{}
	auth := &fakeAuthRepo{user: &models.User{ID: userID, Email: "u@example.com"}}
	svc := newTestPredictionService(predRepo, &fakeSettingsRepo{settings: models.DefaultSettings(userID)}, auth, alerts)

	_, err := svc.Store(context.Background(), models.PredictionRecord{
		UserID:               &userID,
		PredictedConsumption: 250, // over the 200 default
		Cost:                 60,  // over the 50 default
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if len(alerts.enqueued) != 2 {
		t.Fatalf("enqueued %d alerts, want 2", len(alerts.enqueued))
	}
	if alerts.enqueued[0].Kind != models.AlertHighConsumption || alerts.enqueued[1].Kind != models.AlertCostThreshold {
		t.Fatalf("got kinds %q, %q", alerts.enqueued[0].Kind, alerts.enqueued[1].Kind)
	}
	for _, to := range alerts.tos {
		if to != "u@example.com" {
			t.Fatalf("alert addressed to %q", to)
		}
	}
}

func TestStore_NoAlertsWhenDisabled(t *testing.T) {
	userID := 3
	settings := models.DefaultSettings(userID)
	settings.EmailAlertsEnabled = false

	alerts := &fakeAlertQueue{}
	auth := &fakeAuthRepo{user: &models.User{ID: userID, Email: "u@example.com"}}
	svc := newTestPredictionService(&fakePredictionRepo{storeID: 1}, &fakeSettingsRepo{settings: settings}, auth, alerts)

	_, err := svc.Store(context.Background(), models.PredictionRecord{
		UserID:               &userID,
		PredictedConsumption: 500,
		Cost:                 500,
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if len(alerts.enqueued) != 0 {
		t.Fatalf("enqueued %d alerts with alerts disabled, want 0", len(alerts.enqueued))
	}
}

func TestStore_NoAlertsForAnonymousRecord(t *testing.T) {
	alerts := &fakeAlertQueue{}
	svc := newTestPredictionService(&fakePredictionRepo{storeID: 1}, &fakeSettingsRepo{settings: models.DefaultSettings(0)}, &fakeAuthRepo{}, alerts)

	_, err := svc.Store(context.Background(), models.PredictionRecord{PredictedConsumption: 500, Cost: 500})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if len(alerts.enqueued) != 0 {
		t.Fatalf("enqueued %d alerts for anonymous record, want 0", len(alerts.enqueued))
	}
}

func TestStore_SettingsFailureDoesNotFailStore(t *testing.T) {
	userID := 3
	settingsRepo := &fakeSettingsRepo{getErr: errors.New("db gone")}
	svc := newTestPredictionService(&fakePredictionRepo{storeID: 9}, settingsRepo, &fakeAuthRepo{}, &fakeAlertQueue{})

	id, err := svc.Store(context.Background(), models.PredictionRecord{UserID: &userID, PredictedConsumption: 500})
	if err != nil {
		t.Fatalf("Store returned error from alert path: %v", err)
	}
	if id != 9 {
		t.Fatalf("id = %d, want 9", id)
	}
}

func TestRecent_ClampsLimit(t *testing.T) {
	predRepo := &fakePredictionRepo{listResp: []models.PredictionRecord{{ID: 1}}}
	svc := newTestPredictionService(predRepo, &fakeSettingsRepo{}, &fakeAuthRepo{}, &fakeAlertQueue{})

	records, err := svc.Recent(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
}
