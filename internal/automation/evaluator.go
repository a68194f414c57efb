package automation

type Action int

const (
	NoAction Action = iota
	TurnOn
	TurnOff
)

func (a Action) String() string {
	switch a {
	case TurnOn:
		return "turn_on"
	case TurnOff:
		return "turn_off"
	}
	return "none"
}

// Target is the valve state a transition leads to. Only meaningful for
// TurnOn and TurnOff.
func (a Action) Target() ValveState {
	if a == TurnOn {
		return On
	}
	return Off
}

const (
	ReasonDisabled    = "automation disabled"
	ReasonInvalidRule = "invalid rule"
	ReasonBelowLow    = "moisture below low threshold"
	ReasonAboveHigh   = "moisture above high threshold"
	ReasonDeadBand    = "moisture within thresholds"
	ReasonAlreadyOn   = "valve already on"
	ReasonAlreadyOff  = "valve already off"
	ReasonThrottled   = "watering throttled"
	ReasonStale       = "newer reading already stored"
)

type Decision struct {
	Action Action `json:"-"`
	Reason string `json:"reason"`
}

func (d Decision) Changed() bool {
	return d.Action != NoAction
}

// Evaluate applies the two-threshold rule to a single reading. current is the
// state of the most recent valve action, Off when the device has none.
func Evaluate(moisture float64, rule Rule, current ValveState) Decision {
	if !rule.Enabled {
		return Decision{Action: NoAction, Reason: ReasonDisabled}
	}
	if rule.LowThreshold >= rule.HighThreshold {
		return Decision{Action: NoAction, Reason: ReasonInvalidRule}
	}

	switch {
	case moisture < rule.LowThreshold:
		if current == On {
			return Decision{Action: NoAction, Reason: ReasonAlreadyOn}
		}
		return Decision{Action: TurnOn, Reason: ReasonBelowLow}
	case moisture > rule.HighThreshold:
		if current == Off {
			return Decision{Action: NoAction, Reason: ReasonAlreadyOff}
		}
		return Decision{Action: TurnOff, Reason: ReasonAboveHigh}
	}
	return Decision{Action: NoAction, Reason: ReasonDeadBand}
}
