package vehicle

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// New builds a State and fills the derived velocity cache from heading,
// speed and vertical speed.
func New(x, y, z, psi, vs, speed float64) State {
	r := Radians(psi)
	return State{
		X:     x,
		Y:     y,
		Z:     z,
		Psi:   psi,
		VS:    vs,
		Speed: speed,
		VX:    speed * math.Sin(r),
		VY:    speed * math.Cos(r),
		VZ:    vs,
	}
}

// At returns a position-only State, used for goals where heading and speeds
// are irrelevant.
func At(x, y, z float64) State {
	return State{X: x, Y: y, Z: z}
}

// HorizontalDistance returns the planar Euclidean distance between s and o.
// Z is ignored. The result is symmetric and always defined.
func (s State) HorizontalDistance(o State) float64 {
	return math.Sqrt(Sqr(s.X-o.X) + Sqr(s.Y-o.Y))
}

// Position returns the position as an (X, Y, Z) triple.
func (s State) Position() [3]float64 {
	return [3]float64{s.X, s.Y, s.Z}
}

// String renders the authoritative fields; the velocity cache is omitted.
func (s State) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f) psi=%.2f vs=%.2f speed=%.2f", s.X, s.Y, s.Z, s.Psi, s.VS, s.Speed)
}

// Radians converts an angle expressed in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle expressed in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Sqr returns v*v.
func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }
