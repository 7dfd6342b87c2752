package feasibility

import (
	"fmt"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Polygon is a closed horizontal outline; the last vertex connects back to
// the first and must not repeat it.
type Polygon [][2]float64

// Contains reports whether (x, y) is inside p using the even-odd rule.
func (p Polygon) Contains(x, y float64) bool {
	inside := false
	for i := 0; i < len(p); i++ {
		p0, p1 := p[i], p[(i+1)%len(p)]
		if (p0[1] <= y && y < p1[1]) || (p1[1] <= y && y < p0[1]) {
			cx := p0[0] + (y-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if cx > x {
				inside = !inside
			}
		}
	}
	return inside
}

// Geofence accepts a state when it lies inside at least one KeepIn polygon
// (or KeepIn is empty) and inside no KeepOut polygon.
type Geofence struct {
	KeepIn  []Polygon
	KeepOut []Polygon
}

// NewGeofence validates every polygon and returns the fence.
func NewGeofence(keepIn, keepOut []Polygon) (*Geofence, error) {
	for i, p := range keepIn {
		if len(p) < 3 {
			return nil, fmt.Errorf("%w: keep-in %d has %d", ErrDegeneratePolygon, i, len(p))
		}
	}
	for i, p := range keepOut {
		if len(p) < 3 {
			return nil, fmt.Errorf("%w: keep-out %d has %d", ErrDegeneratePolygon, i, len(p))
		}
	}
	return &Geofence{KeepIn: keepIn, KeepOut: keepOut}, nil
}

// Feasible applies the keep-in and keep-out rules to the horizontal position.
func (g *Geofence) Feasible(s vehicle.State) bool {
	for _, p := range g.KeepOut {
		if p.Contains(s.X, s.Y) {
			return false
		}
	}
	if len(g.KeepIn) == 0 {
		return true
	}
	for _, p := range g.KeepIn {
		if p.Contains(s.X, s.Y) {
			return true
		}
	}
	return false
}
