package api

import (
	"bytes"
	"fmt"
	"time"
)

type SensorDataRequest struct {
	DeviceID    string   `json:"device_id"`
	Moisture    *float64 `json:"moisture"`
	RawADCValue *int     `json:"raw_adc_value"`
	Timestamp   string   `json:"timestamp"`
}

type AutomationResult struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

type SensorDataResponse struct {
	Status     string           `json:"status"`
	ReadingID  int64            `json:"reading_id"`
	Moisture   float64          `json:"moisture"`
	ValveState int              `json:"valve_state"`
	Automation AutomationResult `json:"automation"`
}

type CommandResponse struct {
	Command *string `json:"command"`
}

type ValveControlRequest struct {
	DeviceID string `json:"device_id"`
	State    *int   `json:"state"`
}

type ValveStateResponse struct {
	DeviceID  string     `json:"device_id"`
	State     int        `json:"state"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AutomationRuleRequest struct {
	DeviceID      string   `json:"device_id"`
	Enabled       *Flag    `json:"enabled"`
	LowThreshold  *float64 `json:"low_threshold"`
	HighThreshold *float64 `json:"high_threshold"`
}

type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ZoneRequest struct {
	Name        string  `json:"name"`
	DeviceID    *string `json:"device_id"`
	Description string  `json:"description"`
}

type PlantRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	PlantedOn string `json:"planted_on"`
}

type MeasurementRequest struct {
	Timestamp     string   `json:"timestamp"`
	Height        *float64 `json:"height"`
	LeafCount     *int     `json:"leaf_count"`
	StemThickness *float64 `json:"stem_thickness"`
	CanopyWidth   *float64 `json:"canopy_width"`
	LeafColor     *int     `json:"leaf_color"`
	LeafFirmness  *int     `json:"leaf_firmness"`
	HealthScore   *int     `json:"health_score"`
	Notes         string   `json:"notes"`
	Fertilized    bool     `json:"fertilized"`
	Pruned        bool     `json:"pruned"`
	PHReading     *float64 `json:"ph_reading"`
}

// Flag accepts both JSON booleans and the 0/1 integers older dashboard
// builds send.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*f = true
		return nil
	case "false", "0":
		*f = false
		return nil
	}
	return fmt.Errorf("invalid flag %s", data)
}
