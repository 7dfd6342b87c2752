package feasibility

import (
	"errors"
)

// Sentinel errors for oracle construction.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("feasibility: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("feasibility: all grid rows must have the same length")
	// ErrBadCellSize indicates a non-positive cell edge length.
	ErrBadCellSize = errors.New("feasibility: cell size must be positive")
	// ErrDegeneratePolygon indicates a polygon with fewer than three vertices.
	ErrDegeneratePolygon = errors.New("feasibility: polygon needs at least three vertices")
	// ErrBadBand indicates an altitude band whose floor is above its ceiling.
	ErrBadBand = errors.New("feasibility: altitude band min must not exceed max")
)

// Connectivity selects the neighborhood used when inflating grid obstacles.
type Connectivity int

const (
	// Conn4 inflates towards N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also inflates diagonally.
	Conn8
)

// GridOptions contains tunable parameters for an occupancy Grid.
type GridOptions struct {
	// CellSize is the edge length of one cell in meters.
	CellSize float64
	// OriginX, OriginY place the south-west corner of cell (0,0).
	OriginX, OriginY float64
	// BlockThreshold is the minimum cell value treated as an obstacle.
	BlockThreshold int
	// Inflate grows every obstacle by this many cells.
	Inflate int
	// Conn chooses the inflation neighborhood.
	Conn Connectivity
	// OutsideBlocked rejects states that fall outside the grid.
	OutsideBlocked bool
}

// DefaultGridOptions returns GridOptions with CellSize=1, origin at (0,0),
// BlockThreshold=1, no inflation, Conn4 and outside cells allowed.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		CellSize:       1,
		BlockThreshold: 1,
		Conn:           Conn4,
	}
}
