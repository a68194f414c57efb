package db

import "time"

type MoistureReading struct {
	ID          int64     `db:"id" json:"id"`
	DeviceID    string    `db:"device_id" json:"device_id"`
	Moisture    float64   `db:"moisture" json:"moisture"`
	RawADCValue *int      `db:"raw_adc_value" json:"raw_adc_value"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

const (
	SourceManual     = "manual"
	SourceAutomation = "automation"
)

type ValveAction struct {
	ID        int64     `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	State     int       `db:"state" json:"state"`
	Source    string    `db:"source" json:"source"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

type AutomationRule struct {
	DeviceID      string    `db:"device_id" json:"device_id"`
	Enabled       bool      `db:"enabled" json:"enabled"`
	LowThreshold  float64   `db:"low_threshold" json:"low_threshold"`
	HighThreshold float64   `db:"high_threshold" json:"high_threshold"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type Zone struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DeviceID    *string   `db:"device_id" json:"device_id"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Plant struct {
	ID        int64      `db:"id" json:"id"`
	ZoneID    int64      `db:"zone_id" json:"zone_id"`
	Name      string     `db:"name" json:"name"`
	Species   string     `db:"species" json:"species"`
	PlantedOn *time.Time `db:"planted_on" json:"planted_on"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type PlantMeasurement struct {
	ID            int64     `db:"id" json:"id"`
	PlantID       int64     `db:"plant_id" json:"plant_id"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
	Height        *float64  `db:"height" json:"height"`
	LeafCount     *int      `db:"leaf_count" json:"leaf_count"`
	StemThickness *float64  `db:"stem_thickness" json:"stem_thickness"`
	CanopyWidth   *float64  `db:"canopy_width" json:"canopy_width"`
	LeafColor     *int      `db:"leaf_color" json:"leaf_color"`
	LeafFirmness  *int      `db:"leaf_firmness" json:"leaf_firmness"`
	HealthScore   *int      `db:"health_score" json:"health_score"`
	Notes         string    `db:"notes" json:"notes"`
	Fertilized    bool      `db:"fertilized" json:"fertilized"`
	Pruned        bool      `db:"pruned" json:"pruned"`
	PHReading     *float64  `db:"ph_reading" json:"ph_reading"`
}

// DeviceSummary aggregates everything known about a device id across the
// reading, valve and rule tables.
type DeviceSummary struct {
	DeviceID         string     `db:"device_id" json:"device_id"`
	ReadingCount     int64      `db:"reading_count" json:"reading_count"`
	ValveActionCount int64      `db:"valve_action_count" json:"valve_action_count"`
	LastSeen         *time.Time `db:"last_seen" json:"last_seen"`
	Enabled          *bool      `db:"enabled" json:"enabled"`
	LowThreshold     *float64   `db:"low_threshold" json:"low_threshold"`
	HighThreshold    *float64   `db:"high_threshold" json:"high_threshold"`
}
