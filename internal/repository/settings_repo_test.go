package repository_test

import (
	"context"
	"regexp"
	"testing"

	"energyai/internal/models"
	"energyai/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettingsSQLite_Get_ReturnsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)

	rows := sqlmock.NewRows([]string{
		"user_id", "high_consumption_threshold", "cost_threshold", "normal_consumption", "email_alerts_enabled",
	}).AddRow(5, 300.0, 75.0, 180.0, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, high_consumption_threshold")).
		WithArgs(5).
		WillReturnRows(rows)

	s, err := repo.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.HighConsumptionThreshold != 300 || s.CostThreshold != 75 || s.EmailAlertsEnabled {
		t.Fatalf("unexpected settings %+v", s)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsSQLite_Get_DefaultsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, high_consumption_threshold")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "high_consumption_threshold", "cost_threshold", "normal_consumption", "email_alerts_enabled",
		}))

	s, err := repo.Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := models.DefaultSettings(9)
	if s != want {
		t.Fatalf("missing row: got %+v, want defaults %+v", s, want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsSQLite_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_settings")).
		WithArgs(5, 300.0, 75.0, 180.0, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), models.UserSettings{
		UserID:                   5,
		HighConsumptionThreshold: 300,
		CostThreshold:            75,
		NormalConsumption:        180,
		EmailAlertsEnabled:       true,
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
