package repository

import (
	"context"
	"database/sql"

	"energyai/internal/models"
	"energyai/internal/repository/db"
)

type Authorization interface {
	Create(name, email, hash string) (int, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	UpdateName(id int, name string) error
}

// PredictionRepo persists prediction records and serves recent history.
type PredictionRepo interface {
	Store(ctx context.Context, rec models.PredictionRecord) (int, error)
	ListRecent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error)
}

// SettingsRepo reads and writes per-user alert thresholds.
type SettingsRepo interface {
	Get(ctx context.Context, userID int) (models.UserSettings, error)
	Upsert(ctx context.Context, s models.UserSettings) error
}

type Repository struct {
	Predictions PredictionRepo
	Settings    SettingsRepo
	Auth        Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Predictions: NewPredictionSQLite(sqlDB),
		Settings:    NewSettingsSQLite(sqlDB),
		Auth:        NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
