package db

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
)

func (db *DB) CreateZone(ctx context.Context, z Zone) (Zone, error) {
	const fn = "DB:CreateZone"
	var out Zone
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO zones (name, device_id, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, device_id, description, created_at
	`, z.Name, z.DeviceID, z.Description)
	if err != nil {
		return Zone{}, fmt.Errorf("%s:%w:%w", fn, classify(err, ErrInsertFailed), err)
	}
	return out, nil
}

func (db *DB) ListZones(ctx context.Context) ([]Zone, error) {
	const fn = "DB:ListZones"
	zones := []Zone{}
	err := pgxscan.Select(ctx, db.pool, &zones, `
		SELECT id, name, device_id, description, created_at
		FROM zones
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return zones, nil
}

func (db *DB) GetZone(ctx context.Context, id int64) (Zone, error) {
	const fn = "DB:GetZone"
	var z Zone
	err := pgxscan.Get(ctx, db.pool, &z, `
		SELECT id, name, device_id, description, created_at
		FROM zones
		WHERE id = $1
	`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Zone{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Zone{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return z, nil
}

func (db *DB) UpdateZone(ctx context.Context, z Zone) (Zone, error) {
	const fn = "DB:UpdateZone"
	var out Zone
	err := pgxscan.Get(ctx, db.pool, &out, `
		UPDATE zones
		SET name = $2, device_id = $3, description = $4
		WHERE id = $1
		RETURNING id, name, device_id, description, created_at
	`, z.ID, z.Name, z.DeviceID, z.Description)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Zone{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Zone{}, fmt.Errorf("%s:%w:%w", fn, classify(err, ErrUpdateFailed), err)
	}
	return out, nil
}

// DeleteZone removes the zone together with its plants and their
// measurements.
func (db *DB) DeleteZone(ctx context.Context, id int64) error {
	const fn = "DB:DeleteZone"
	tag, err := db.pool.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

func (db *DB) CreatePlant(ctx context.Context, p Plant) (Plant, error) {
	const fn = "DB:CreatePlant"
	var out Plant
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO plants (zone_id, name, species, planted_on)
		VALUES ($1, $2, $3, $4)
		RETURNING id, zone_id, name, species, planted_on, created_at
	`, p.ZoneID, p.Name, p.Species, p.PlantedOn)
	if err != nil {
		return Plant{}, fmt.Errorf("%s:%w:%w", fn, classify(err, ErrInsertFailed), err)
	}
	return out, nil
}

func (db *DB) ListPlants(ctx context.Context, zoneID int64) ([]Plant, error) {
	const fn = "DB:ListPlants"
	plants := []Plant{}
	err := pgxscan.Select(ctx, db.pool, &plants, `
		SELECT id, zone_id, name, species, planted_on, created_at
		FROM plants
		WHERE zone_id = $1
		ORDER BY name, id
	`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return plants, nil
}

func (db *DB) GetPlant(ctx context.Context, id int64) (Plant, error) {
	const fn = "DB:GetPlant"
	var p Plant
	err := pgxscan.Get(ctx, db.pool, &p, `
		SELECT id, zone_id, name, species, planted_on, created_at
		FROM plants
		WHERE id = $1
	`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Plant{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Plant{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return p, nil
}

func (db *DB) DeletePlant(ctx context.Context, id int64) error {
	const fn = "DB:DeletePlant"
	tag, err := db.pool.Exec(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

func (db *DB) CreateMeasurement(ctx context.Context, m PlantMeasurement) (PlantMeasurement, error) {
	const fn = "DB:CreateMeasurement"
	var out PlantMeasurement
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO plant_measurements (
			plant_id,
			timestamp,
			height,
			leaf_count,
			stem_thickness,
			canopy_width,
			leaf_color,
			leaf_firmness,
			health_score,
			notes,
			fertilized,
			pruned,
			ph_reading
		) VALUES ($1, COALESCE($2, now()), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING *
	`, m.PlantID, nullableTime(m.Timestamp), m.Height, m.LeafCount, m.StemThickness, m.CanopyWidth,
		m.LeafColor, m.LeafFirmness, m.HealthScore, m.Notes, m.Fertilized, m.Pruned, m.PHReading)
	if err != nil {
		return PlantMeasurement{}, fmt.Errorf("%s:%w:%w", fn, classify(err, ErrInsertFailed), err)
	}
	return out, nil
}

func (db *DB) LoadMeasurementsSince(ctx context.Context, plantID int64, since time.Time) ([]PlantMeasurement, error) {
	const fn = "DB:LoadMeasurementsSince"
	measurements := []PlantMeasurement{}
	err := pgxscan.Select(ctx, db.pool, &measurements, `
		SELECT *
		FROM plant_measurements
		WHERE plant_id = $1
		AND timestamp >= $2
		ORDER BY timestamp DESC, id DESC
	`, plantID, since)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return measurements, nil
}
