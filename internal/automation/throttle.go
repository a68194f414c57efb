package automation

import "time"

// Throttle limits how often automation may open the valve. The soil needs
// time for water to wick through before a new reading is meaningful.
type Throttle struct {
	MinRest        time.Duration
	MaxDailyCycles int
}

// Allow reports whether a new watering cycle may start at now. onTimes holds
// the timestamps of previous ON actions for the device, in any order. The
// daily cycle count uses the calendar day of now in its own location.
func (t Throttle) Allow(now time.Time, onTimes []time.Time) bool {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	cycles := 0
	var last time.Time
	for _, ts := range onTimes {
		if ts.After(last) {
			last = ts
		}
		if !ts.Before(startOfDay) && !ts.After(now) {
			cycles++
		}
	}

	if t.MinRest > 0 && !last.IsZero() && now.Sub(last) < t.MinRest {
		return false
	}
	if t.MaxDailyCycles > 0 && cycles >= t.MaxDailyCycles {
		return false
	}
	return true
}
