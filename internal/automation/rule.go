package automation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRule  = errors.New("invalid automation rule")
	ErrInvalidState = errors.New("invalid valve state")
)

type ValveState int

const (
	Off ValveState = 0
	On  ValveState = 1
)

func ParseValveState(v int) (ValveState, error) {
	switch v {
	case 0:
		return Off, nil
	case 1:
		return On, nil
	}
	return Off, fmt.Errorf("%w: %d", ErrInvalidState, v)
}

func (s ValveState) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Rule is the per-device hysteresis configuration.
type Rule struct {
	DeviceID      string  `json:"device_id"`
	Enabled       bool    `json:"enabled"`
	LowThreshold  float64 `json:"low_threshold"`
	HighThreshold float64 `json:"high_threshold"`
}

func DefaultRule(deviceID string, low, high float64) Rule {
	return Rule{
		DeviceID:      deviceID,
		Enabled:       true,
		LowThreshold:  low,
		HighThreshold: high,
	}
}

// Validate is applied at every write. Disabled rules are still checked so
// that enabling one later can never expose an inverted band.
func (r Rule) Validate() error {
	if r.DeviceID == "" {
		return fmt.Errorf("%w: device id is required", ErrInvalidRule)
	}
	if r.LowThreshold < 0 || r.LowThreshold > 100 {
		return fmt.Errorf("%w: low threshold %.1f out of range", ErrInvalidRule, r.LowThreshold)
	}
	if r.HighThreshold < 0 || r.HighThreshold > 100 {
		return fmt.Errorf("%w: high threshold %.1f out of range", ErrInvalidRule, r.HighThreshold)
	}
	if r.LowThreshold >= r.HighThreshold {
		return fmt.Errorf("%w: low threshold %.1f must be below high threshold %.1f",
			ErrInvalidRule, r.LowThreshold, r.HighThreshold)
	}
	return nil
}
