package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrDeleteFailed           = errors.New("delete operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrNotFound               = errors.New("record not found")
	ErrConflict               = errors.New("record already exists")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// classify maps constraint violations onto the package sentinels so callers
// can branch without knowing about Postgres error codes.
func classify(err error, fallback error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrNotFound
		case pgUniqueViolation:
			return ErrConflict
		}
	}
	return fallback
}

// nullableTime lets the database default a column when the caller left the
// timestamp unset.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (db *DB) InsertReading(ctx context.Context, r MoistureReading) (MoistureReading, error) {
	const fn = "DB:InsertReading"
	var out MoistureReading
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO moisture_readings (
			device_id,
			moisture,
			raw_adc_value,
			timestamp
		) VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING id, device_id, moisture, raw_adc_value, timestamp
	`, r.DeviceID, r.Moisture, r.RawADCValue, nullableTime(r.Timestamp))
	if err != nil {
		return MoistureReading{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return out, nil
}

func (db *DB) LatestReading(ctx context.Context, deviceID string) (MoistureReading, error) {
	const fn = "DB:LatestReading"
	var r MoistureReading
	err := pgxscan.Get(ctx, db.pool, &r, `
		SELECT
			id,
			device_id,
			moisture,
			raw_adc_value,
			timestamp
		FROM moisture_readings
		WHERE device_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return MoistureReading{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return MoistureReading{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return r, nil
}

func (db *DB) LoadReadingsSince(ctx context.Context, deviceID string, since time.Time) ([]MoistureReading, error) {
	const fn = "DB:LoadReadingsSince"
	readings := []MoistureReading{}
	err := pgxscan.Select(ctx, db.pool, &readings, `
		SELECT
			id,
			device_id,
			moisture,
			raw_adc_value,
			timestamp
		FROM moisture_readings
		WHERE device_id = $1
		AND timestamp >= $2
		ORDER BY timestamp ASC, id ASC
	`, deviceID, since)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return readings, nil
}

// ActiveDevices lists devices that reported at least one reading since the
// given instant.
func (db *DB) ActiveDevices(ctx context.Context, since time.Time) ([]string, error) {
	const fn = "DB:ActiveDevices"
	devices := []string{}
	err := pgxscan.Select(ctx, db.pool, &devices, `
		SELECT DISTINCT device_id
		FROM moisture_readings
		WHERE timestamp >= $1
		ORDER BY device_id
	`, since)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

func (db *DB) InsertValveAction(ctx context.Context, a ValveAction) (ValveAction, error) {
	const fn = "DB:InsertValveAction"
	source := a.Source
	if source == "" {
		source = SourceManual
	}
	var out ValveAction
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO valve_actions (
			device_id,
			state,
			source,
			timestamp
		) VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING id, device_id, state, source, timestamp
	`, a.DeviceID, a.State, source, nullableTime(a.Timestamp))
	if err != nil {
		return ValveAction{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return out, nil
}

// LatestValveAction returns the newest row of the device's valve log. That
// row is the device's current valve state.
func (db *DB) LatestValveAction(ctx context.Context, deviceID string) (ValveAction, error) {
	const fn = "DB:LatestValveAction"
	var a ValveAction
	err := pgxscan.Get(ctx, db.pool, &a, `
		SELECT
			id,
			device_id,
			state,
			source,
			timestamp
		FROM valve_actions
		WHERE device_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return ValveAction{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return ValveAction{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return a, nil
}

func (db *DB) LoadValveActionsSince(ctx context.Context, deviceID string, since time.Time) ([]ValveAction, error) {
	const fn = "DB:LoadValveActionsSince"
	actions := []ValveAction{}
	err := pgxscan.Select(ctx, db.pool, &actions, `
		SELECT
			id,
			device_id,
			state,
			source,
			timestamp
		FROM valve_actions
		WHERE device_id = $1
		AND timestamp >= $2
		ORDER BY timestamp DESC, id DESC
	`, deviceID, since)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return actions, nil
}

// LoadValveOnTimesSince returns when the valve was opened, newest first.
func (db *DB) LoadValveOnTimesSince(ctx context.Context, deviceID string, since time.Time) ([]time.Time, error) {
	const fn = "DB:LoadValveOnTimesSince"
	times := []time.Time{}
	err := pgxscan.Select(ctx, db.pool, &times, `
		SELECT timestamp
		FROM valve_actions
		WHERE device_id = $1
		AND state = 1
		AND timestamp >= $2
		ORDER BY timestamp DESC
	`, deviceID, since)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return times, nil
}

func (db *DB) GetRule(ctx context.Context, deviceID string) (AutomationRule, error) {
	const fn = "DB:GetRule"
	var rule AutomationRule
	err := pgxscan.Get(ctx, db.pool, &rule, `
		SELECT
			device_id,
			enabled,
			low_threshold,
			high_threshold,
			updated_at
		FROM automation_rules
		WHERE device_id = $1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return AutomationRule{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return AutomationRule{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return rule, nil
}

func (db *DB) UpsertRule(ctx context.Context, rule AutomationRule) error {
	const fn = "DB:UpsertRule"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO automation_rules (
			device_id,
			enabled,
			low_threshold,
			high_threshold,
			updated_at
		) VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (device_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			low_threshold = EXCLUDED.low_threshold,
			high_threshold = EXCLUDED.high_threshold,
			updated_at = EXCLUDED.updated_at
	`, rule.DeviceID, rule.Enabled, rule.LowThreshold, rule.HighThreshold)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}
