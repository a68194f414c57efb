package irrigation

// Calibration converts raw capacitive sensor ADC values into a moisture
// percentage. Higher ADC readings mean drier soil.
type Calibration struct {
	WetADC int
	DryADC int
}

func (c Calibration) Valid() bool {
	return c.DryADC > c.WetADC
}

func (c Calibration) Percent(raw int) float64 {
	switch {
	case raw >= c.DryADC:
		return 0
	case raw <= c.WetADC:
		return 100
	}
	return float64(c.DryADC-raw) / float64(c.DryADC-c.WetADC) * 100
}
