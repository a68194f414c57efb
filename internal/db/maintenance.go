package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
)

var ErrUnknownTable = errors.New("unknown table")

const (
	TableReadings     = "moisture_readings"
	TableValveActions = "valve_actions"
	TableRules        = "automation_rules"
	TableMeasurements = "plant_measurements"
)

// Column used to filter each exportable table by age.
var exportTables = map[string]string{
	TableReadings:     "timestamp",
	TableValveActions: "timestamp",
	TableRules:        "updated_at",
	TableMeasurements: "timestamp",
}

// Only time-series tables may be purged.
var purgeTables = map[string]bool{
	TableReadings:     true,
	TableValveActions: true,
}

func ExportTables() []string {
	return []string{TableReadings, TableValveActions, TableRules, TableMeasurements}
}

func PurgeTables() []string {
	return []string{TableReadings, TableValveActions}
}

func (db *DB) ListDevices(ctx context.Context) ([]DeviceSummary, error) {
	const fn = "DB:ListDevices"
	devices := []DeviceSummary{}
	err := pgxscan.Select(ctx, db.pool, &devices, `
		WITH ids AS (
			SELECT device_id FROM moisture_readings
			UNION
			SELECT device_id FROM valve_actions
			UNION
			SELECT device_id FROM automation_rules
		)
		SELECT
			ids.device_id,
			(SELECT count(*) FROM moisture_readings m WHERE m.device_id = ids.device_id) AS reading_count,
			(SELECT count(*) FROM valve_actions v WHERE v.device_id = ids.device_id) AS valve_action_count,
			(SELECT max(m.timestamp) FROM moisture_readings m WHERE m.device_id = ids.device_id) AS last_seen,
			r.enabled,
			r.low_threshold,
			r.high_threshold
		FROM ids
		LEFT JOIN automation_rules r ON r.device_id = ids.device_id
		ORDER BY ids.device_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

// Purge deletes rows of a time-series table older than before and returns
// how many were removed.
func (db *DB) Purge(ctx context.Context, table string, before time.Time) (int64, error) {
	const fn = "DB:Purge"
	if !purgeTables[table] {
		return 0, fmt.Errorf("%s:%w: %s", fn, ErrUnknownTable, table)
	}
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE timestamp < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return tag.RowsAffected(), nil
}

// ExportRows returns a header and the rows of table rendered as text, newest
// first. A zero since exports everything.
func (db *DB) ExportRows(ctx context.Context, table string, since time.Time) ([]string, [][]string, error) {
	const fn = "DB:ExportRows"
	tsColumn, ok := exportTables[table]
	if !ok {
		return nil, nil, fmt.Errorf("%s:%w: %s", fn, ErrUnknownTable, table)
	}

	rows, err := db.pool.Query(ctx, `
		SELECT * FROM `+table+`
		WHERE `+tsColumn+` >= $1
		ORDER BY `+tsColumn+` DESC
	`, since)
	if err != nil {
		return nil, nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = string(f.Name)
	}

	var out [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return header, out, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
