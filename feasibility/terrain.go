package feasibility

import (
	"math"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Terrain rejects states closer than SafetyMargin to the ground.
type Terrain struct {
	// SafetyMargin is the minimum allowed height above ground in meters.
	SafetyMargin float64
	// Ground returns the ground altitude at (x, y). Nil selects the synthetic
	// wave model of SyntheticGround.
	Ground func(x, y float64) float64
}

// SyntheticGround is a smooth wavy terrain used when no elevation data is
// available. It stays within ±150 m.
func SyntheticGround(x, y float64) float64 {
	wave1 := math.Sin(x/1000) * 100
	wave2 := math.Sin((x+y)/500) * 50
	return wave1 + wave2
}

// DefaultTerrain returns a Terrain over SyntheticGround with an 80 m margin.
func DefaultTerrain() Terrain {
	return Terrain{SafetyMargin: 80}
}

// GroundAltitude returns the ground height below (x, y).
func (t Terrain) GroundAltitude(x, y float64) float64 {
	if t.Ground == nil {
		return SyntheticGround(x, y)
	}
	return t.Ground(x, y)
}

// Feasible reports whether s clears the ground by at least SafetyMargin.
func (t Terrain) Feasible(s vehicle.State) bool {
	return s.Z >= t.GroundAltitude(s.X, s.Y)+t.SafetyMargin
}
