package garden

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

const (
	leafColorWeight    = 0.4
	leafFirmnessWeight = 0.4
	phWeight           = 0.2

	idealPH = 6.5
	// pH units from ideal at which the pH component reaches zero.
	phTolerance = 2.0
)

// Metrics are the manually entered observations that feed the health score.
// Nil fields were not recorded.
type Metrics struct {
	Height        *float64
	LeafCount     *int
	StemThickness *float64
	CanopyWidth   *float64
	LeafColor     *int
	LeafFirmness  *int
	PH            *float64
}

// HealthScore is a 0-100 weighted average of the leaf colour and firmness
// ratings (1-5) and pH closeness to neutral-acid soil. Weights of missing
// metrics are redistributed over the present ones; ok is false when none of
// them were recorded.
func HealthScore(m Metrics) (score int, ok bool) {
	var sum, weights float64

	if m.LeafColor != nil {
		sum += leafColorWeight * ratingFraction(*m.LeafColor)
		weights += leafColorWeight
	}
	if m.LeafFirmness != nil {
		sum += leafFirmnessWeight * ratingFraction(*m.LeafFirmness)
		weights += leafFirmnessWeight
	}
	if m.PH != nil {
		dist := math.Abs(*m.PH - idealPH)
		sum += phWeight * math.Max(0, 1-dist/phTolerance)
		weights += phWeight
	}

	if weights == 0 {
		return 0, false
	}
	return int(math.Round(100 * sum / weights)), true
}

func ratingFraction(r int) float64 {
	return float64(r-1) / 4
}

func (m Metrics) Validate() error {
	if m.LeafColor != nil && (*m.LeafColor < 1 || *m.LeafColor > 5) {
		return fmt.Errorf("%w: leaf color rating %d not in 1-5", ErrInvalidMeasurement, *m.LeafColor)
	}
	if m.LeafFirmness != nil && (*m.LeafFirmness < 1 || *m.LeafFirmness > 5) {
		return fmt.Errorf("%w: leaf firmness rating %d not in 1-5", ErrInvalidMeasurement, *m.LeafFirmness)
	}
	if m.PH != nil && (*m.PH < 0 || *m.PH > 14) {
		return fmt.Errorf("%w: pH %.2f not in 0-14", ErrInvalidMeasurement, *m.PH)
	}
	for name, v := range map[string]*float64{
		"height":         m.Height,
		"stem thickness": m.StemThickness,
		"canopy width":   m.CanopyWidth,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidMeasurement, name)
		}
	}
	if m.LeafCount != nil && *m.LeafCount < 0 {
		return fmt.Errorf("%w: leaf count must not be negative", ErrInvalidMeasurement)
	}
	return nil
}
