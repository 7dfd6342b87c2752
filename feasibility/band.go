package feasibility

import (
	"fmt"

	"github.com/katalvlaran/trajplan/vehicle"
)

// AltitudeBand accepts states with Min ≤ Z ≤ Max.
type AltitudeBand struct {
	Min, Max float64
}

// NewAltitudeBand validates and returns a band.
func NewAltitudeBand(min, max float64) (AltitudeBand, error) {
	if min > max {
		return AltitudeBand{}, fmt.Errorf("%w: [%v, %v]", ErrBadBand, min, max)
	}
	return AltitudeBand{Min: min, Max: max}, nil
}

// Feasible reports whether s lies inside the band.
func (b AltitudeBand) Feasible(s vehicle.State) bool {
	return s.Z >= b.Min && s.Z <= b.Max
}
