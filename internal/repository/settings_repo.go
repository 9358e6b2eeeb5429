package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"energyai/internal/models"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite { return &SettingsSQLite{db: db} }

var _ SettingsRepo = (*SettingsSQLite)(nil)

const (
	selectSettingsSQL = `
		SELECT user_id, high_consumption_threshold, cost_threshold, normal_consumption, email_alerts_enabled
		FROM user_settings WHERE user_id = ?
	`

	upsertSettingsSQL = `
		INSERT INTO user_settings (user_id, high_consumption_threshold, cost_threshold, normal_consumption, email_alerts_enabled)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			high_consumption_threshold=excluded.high_consumption_threshold,
			cost_threshold=excluded.cost_threshold,
			normal_consumption=excluded.normal_consumption,
			email_alerts_enabled=excluded.email_alerts_enabled
	`
)

// Get fetches settings for a user. A user without a row gets the defaults.
func (r *SettingsSQLite) Get(ctx context.Context, userID int) (models.UserSettings, error) {
	var s models.UserSettings
	err := r.db.QueryRowContext(ctx, selectSettingsSQL, userID).Scan(
		&s.UserID,
		&s.HighConsumptionThreshold,
		&s.CostThreshold,
		&s.NormalConsumption,
		&s.EmailAlertsEnabled,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(userID), nil
		}
		return models.UserSettings{}, fmt.Errorf("select settings for user %d: %w", userID, err)
	}
	return s, nil
}

// Upsert inserts or replaces the settings row for a user.
func (r *SettingsSQLite) Upsert(ctx context.Context, s models.UserSettings) error {
	_, err := r.db.ExecContext(ctx, upsertSettingsSQL,
		s.UserID,
		s.HighConsumptionThreshold,
		s.CostThreshold,
		s.NormalConsumption,
		s.EmailAlertsEnabled,
	)
	if err != nil {
		return fmt.Errorf("upsert settings for user %d: %w", s.UserID, err)
	}
	return nil
}
