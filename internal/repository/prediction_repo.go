package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"energyai/internal/models"
)

type PredictionSQLite struct {
	db *sql.DB
}

func NewPredictionSQLite(db *sql.DB) *PredictionSQLite { return &PredictionSQLite{db: db} }

var _ PredictionRepo = (*PredictionSQLite)(nil)

const (
	insertPredictionSQL = `
		INSERT INTO predictions
			(user_id, temperature, household_size, season, date, devices,
			 predicted_consumption, model_used, confidence, cost, carbon_footprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectRecentPredictionsSQL = `
		SELECT id, user_id, temperature, household_size, season, date, devices,
		       predicted_consumption, model_used, confidence, cost, carbon_footprint, created_at
		FROM predictions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
)

// marshalDevices converts the device list to a JSON string for storage.
func marshalDevices(devices []models.DeviceUsage) (*string, error) {
	if devices == nil {
		return nil, nil
	}
	b, err := json.Marshal(devices)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// Store inserts a new prediction record. A zero CreatedAt is set to now;
// timestamps are always persisted as UTC.
func (r *PredictionSQLite) Store(ctx context.Context, rec models.PredictionRecord) (int, error) {
	devicesJSON, err := marshalDevices(rec.Devices)
	if err != nil {
		return 0, fmt.Errorf("marshal devices: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	} else {
		createdAt = createdAt.UTC()
	}

	var userID any
	if rec.UserID != nil {
		userID = *rec.UserID
	}

	res, err := r.db.ExecContext(ctx, insertPredictionSQL,
		userID,
		rec.Temperature,
		rec.HouseholdSize,
		rec.Season,
		rec.Date,
		devicesJSON,
		rec.PredictedConsumption,
		rec.ModelUsed,
		rec.Confidence,
		rec.Cost,
		rec.CarbonFootprint,
		createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert prediction: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get prediction insert id: %w", err)
	}
	return int(lastID), nil
}

// ListRecent returns up to limit predictions for a user, most recent first.
func (r *PredictionSQLite) ListRecent(ctx context.Context, userID, limit int) ([]models.PredictionRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentPredictionsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent predictions for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.PredictionRecord, 0, limit)
	for rows.Next() {
		var (
			rec         models.PredictionRecord
			uid         sql.NullInt64
			devicesJSON sql.NullString
		)
		if err := rows.Scan(
			&rec.ID,
			&uid,
			&rec.Temperature,
			&rec.HouseholdSize,
			&rec.Season,
			&rec.Date,
			&devicesJSON,
			&rec.PredictedConsumption,
			&rec.ModelUsed,
			&rec.Confidence,
			&rec.Cost,
			&rec.CarbonFootprint,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if uid.Valid {
			id := int(uid.Int64)
			rec.UserID = &id
		}
		if devicesJSON.Valid && devicesJSON.String != "" {
			var devices []models.DeviceUsage
			if err := json.Unmarshal([]byte(devicesJSON.String), &devices); err == nil {
				rec.Devices = devices
			}
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
