package irrigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"garden-irrigation/internal/automation"
	"garden-irrigation/internal/commands"
	"garden-irrigation/internal/db"
)

var (
	ErrInvalidReading    = errors.New("invalid reading")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDeviceUnavailable = errors.New("device unavailable")
)

type repository interface {
	InsertReading(ctx context.Context, r db.MoistureReading) (db.MoistureReading, error)
	LatestReading(ctx context.Context, deviceID string) (db.MoistureReading, error)
	ActiveDevices(ctx context.Context, since time.Time) ([]string, error)
	InsertValveAction(ctx context.Context, a db.ValveAction) (db.ValveAction, error)
	LatestValveAction(ctx context.Context, deviceID string) (db.ValveAction, error)
	LoadValveOnTimesSince(ctx context.Context, deviceID string, since time.Time) ([]time.Time, error)
	GetRule(ctx context.Context, deviceID string) (db.AutomationRule, error)
	UpsertRule(ctx context.Context, rule db.AutomationRule) error
}

type publisher interface {
	Publish(ctx context.Context, cmd commands.Command) error
}

type Config struct {
	DB           repository
	Publisher    publisher
	Throttle     automation.Throttle
	Calibration  Calibration
	DefaultLow   float64
	DefaultHigh  float64
	ActiveWindow time.Duration
	Now          func() time.Time
}

// Service owns the automation loop: it stores readings, evaluates the
// device's rule against the latest one and drives the valve.
type Service struct {
	db           repository
	publisher    publisher
	throttle     automation.Throttle
	calibration  Calibration
	defaultLow   float64
	defaultHigh  float64
	activeWindow time.Duration
	now          func() time.Time
}

func New(cfg Config) *Service {
	s := &Service{
		db:           cfg.DB,
		publisher:    cfg.Publisher,
		throttle:     cfg.Throttle,
		calibration:  cfg.Calibration,
		defaultLow:   cfg.DefaultLow,
		defaultHigh:  cfg.DefaultHigh,
		activeWindow: cfg.ActiveWindow,
		now:          cfg.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.defaultLow == 0 && s.defaultHigh == 0 {
		s.defaultLow, s.defaultHigh = 30, 70
	}
	if s.activeWindow <= 0 {
		s.activeWindow = time.Hour
	}
	return s
}

type Reading struct {
	DeviceID    string
	Moisture    *float64
	RawADCValue *int
	Timestamp   time.Time
}

// Outcome describes what one evaluation did.
type Outcome struct {
	Reading  db.MoistureReading
	Decision automation.Decision
	State    automation.ValveState
}

// RecordReading stores the reading and evaluates automation for its device.
// When the evaluation fails the returned Outcome still carries the stored
// reading.
func (s *Service) RecordReading(ctx context.Context, r Reading) (Outcome, error) {
	const fn = "Service:RecordReading"
	moisture, err := s.moisture(r)
	if err != nil {
		return Outcome{}, err
	}

	stored, err := s.db.InsertReading(ctx, db.MoistureReading{
		DeviceID:    r.DeviceID,
		Moisture:    moisture,
		RawADCValue: r.RawADCValue,
		Timestamp:   r.Timestamp,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("%s:%w", fn, err)
	}

	// A delayed or back-dated reading is stored but never drives the valve.
	latest, err := s.db.LatestReading(ctx, r.DeviceID)
	if err != nil {
		return Outcome{Reading: stored}, fmt.Errorf("%s:%w", fn, err)
	}
	if latest.ID != stored.ID {
		current, _, err := s.ValveState(ctx, r.DeviceID)
		out := Outcome{
			Reading:  stored,
			Decision: automation.Decision{Action: automation.NoAction, Reason: automation.ReasonStale},
			State:    current,
		}
		if err != nil {
			return out, fmt.Errorf("%s:%w", fn, err)
		}
		return out, nil
	}

	out, err := s.evaluate(ctx, r.DeviceID, moisture)
	out.Reading = stored
	if err != nil {
		return out, fmt.Errorf("%s:%w", fn, err)
	}
	return out, nil
}

func (s *Service) moisture(r Reading) (float64, error) {
	if r.DeviceID == "" {
		return 0, fmt.Errorf("%w: device id is required", ErrInvalidReading)
	}
	switch {
	case r.Moisture != nil:
		m := *r.Moisture
		if m < 0 || m > 100 {
			return 0, fmt.Errorf("%w: moisture %.1f out of range", ErrInvalidReading, m)
		}
		return m, nil
	case r.RawADCValue != nil:
		if !s.calibration.Valid() {
			return 0, fmt.Errorf("%w: no sensor calibration configured", ErrInvalidReading)
		}
		return s.calibration.Percent(*r.RawADCValue), nil
	}
	return 0, fmt.Errorf("%w: moisture or raw_adc_value is required", ErrInvalidReading)
}

// Evaluate runs automation for the device against its latest stored reading.
func (s *Service) Evaluate(ctx context.Context, deviceID string) (Outcome, error) {
	const fn = "Service:Evaluate"
	reading, err := s.db.LatestReading(ctx, deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Outcome{}, fmt.Errorf("%s:%w: no readings for %s", fn, ErrDeviceUnavailable, deviceID)
		}
		return Outcome{}, fmt.Errorf("%s:%w", fn, err)
	}
	out, err := s.evaluate(ctx, deviceID, reading.Moisture)
	out.Reading = reading
	if err != nil {
		return out, fmt.Errorf("%s:%w", fn, err)
	}
	return out, nil
}

func (s *Service) evaluate(ctx context.Context, deviceID string, moisture float64) (Outcome, error) {
	rule, err := s.GetRule(ctx, deviceID)
	if err != nil {
		return Outcome{}, err
	}
	current, _, err := s.ValveState(ctx, deviceID)
	if err != nil {
		return Outcome{}, err
	}

	decision := automation.Evaluate(moisture, rule, current)
	if decision.Action == automation.TurnOn {
		allowed, err := s.wateringAllowed(ctx, deviceID)
		if err != nil {
			return Outcome{}, err
		}
		if !allowed {
			decision = automation.Decision{Action: automation.NoAction, Reason: automation.ReasonThrottled}
		}
	}

	out := Outcome{Decision: decision, State: current}
	if !decision.Changed() {
		return out, nil
	}

	target := decision.Action.Target()
	if _, err := s.switchValve(ctx, deviceID, target, db.SourceAutomation); err != nil {
		return out, err
	}
	slog.InfoContext(ctx, "Automation switched valve",
		"device_id", deviceID,
		"moisture", moisture,
		"state", target.String(),
		"reason", decision.Reason,
	)
	out.State = target
	return out, nil
}

func (s *Service) wateringAllowed(ctx context.Context, deviceID string) (bool, error) {
	if s.throttle.MinRest <= 0 && s.throttle.MaxDailyCycles <= 0 {
		return true, nil
	}
	now := s.now()
	y, m, d := now.Date()
	since := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if rest := now.Add(-s.throttle.MinRest); rest.Before(since) {
		since = rest
	}
	onTimes, err := s.db.LoadValveOnTimesSince(ctx, deviceID, since)
	if err != nil {
		return false, err
	}
	return s.throttle.Allow(now, onTimes), nil
}

// switchValve appends to the valve log only after the command is delivered.
func (s *Service) switchValve(ctx context.Context, deviceID string, state automation.ValveState, source string) (db.ValveAction, error) {
	cmd := commands.New(deviceID, state, source, s.now())
	if err := s.publisher.Publish(ctx, cmd); err != nil {
		return db.ValveAction{}, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	action, err := s.db.InsertValveAction(ctx, db.ValveAction{
		DeviceID:  deviceID,
		State:     int(state),
		Source:    source,
		Timestamp: cmd.IssuedAt,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Valve command delivered but not logged",
			"device_id", deviceID,
			"command_id", cmd.ID,
			"command", cmd.Wire(),
			"error", err,
		)
		return db.ValveAction{}, err
	}
	return action, nil
}

// SetValve is the manual override. It is logged even when the valve is
// already in the requested state.
func (s *Service) SetValve(ctx context.Context, deviceID string, state automation.ValveState) (db.ValveAction, error) {
	const fn = "Service:SetValve"
	if deviceID == "" {
		return db.ValveAction{}, fmt.Errorf("%s:%w: device id is required", fn, ErrInvalidRequest)
	}
	action, err := s.switchValve(ctx, deviceID, state, db.SourceManual)
	if err != nil {
		return db.ValveAction{}, fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Valve switched manually", "device_id", deviceID, "state", state.String())
	return action, nil
}

// ValveState reads the device's current state from the newest valve log
// entry. A device without entries is off.
func (s *Service) ValveState(ctx context.Context, deviceID string) (automation.ValveState, *time.Time, error) {
	action, err := s.db.LatestValveAction(ctx, deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return automation.Off, nil, nil
		}
		return automation.Off, nil, err
	}
	state, err := automation.ParseValveState(action.State)
	if err != nil {
		return automation.Off, nil, err
	}
	return state, &action.Timestamp, nil
}

func (s *Service) GetRule(ctx context.Context, deviceID string) (automation.Rule, error) {
	rule, err := s.db.GetRule(ctx, deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return automation.DefaultRule(deviceID, s.defaultLow, s.defaultHigh), nil
		}
		return automation.Rule{}, err
	}
	return automation.Rule{
		DeviceID:      rule.DeviceID,
		Enabled:       rule.Enabled,
		LowThreshold:  rule.LowThreshold,
		HighThreshold: rule.HighThreshold,
	}, nil
}

// UpdateRule validates before writing; a rejected rule leaves the stored one
// untouched.
func (s *Service) UpdateRule(ctx context.Context, rule automation.Rule) error {
	const fn = "Service:UpdateRule"
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	err := s.db.UpsertRule(ctx, db.AutomationRule{
		DeviceID:      rule.DeviceID,
		Enabled:       rule.Enabled,
		LowThreshold:  rule.LowThreshold,
		HighThreshold: rule.HighThreshold,
	})
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Automation rule updated",
		"device_id", rule.DeviceID,
		"enabled", rule.Enabled,
		"low_threshold", rule.LowThreshold,
		"high_threshold", rule.HighThreshold,
	)
	return nil
}

// Sweep evaluates every device that reported within the active window and
// returns how many evaluations succeeded. One failing device does not stop
// the others.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	const fn = "Service:Sweep"
	devices, err := s.db.ActiveDevices(ctx, s.now().Add(-s.activeWindow))
	if err != nil {
		return 0, fmt.Errorf("%s:%w", fn, err)
	}
	evaluated := 0
	for _, deviceID := range devices {
		if ctx.Err() != nil {
			return evaluated, ctx.Err()
		}
		if _, err := s.Evaluate(ctx, deviceID); err != nil {
			slog.ErrorContext(ctx, "Automation check failed", "device_id", deviceID, "error", err)
			continue
		}
		evaluated++
	}
	return evaluated, nil
}
