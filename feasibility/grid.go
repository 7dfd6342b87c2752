package feasibility

import (
	"math"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Grid is an immutable occupancy grid laid over the horizontal plane.
// Row y covers [OriginY + y·CellSize, OriginY + (y+1)·CellSize) northwards,
// column x likewise eastwards.
type Grid struct {
	Width, Height  int
	CellSize       float64
	OriginX        float64
	OriginY        float64
	OutsideBlocked bool

	blocked []bool // row-major
}

// NewGrid builds a Grid from a non-empty, rectangular 2D slice of cell
// values indexed [y][x]. Cells with value ≥ opts.BlockThreshold are obstacles,
// then every obstacle is grown by opts.Inflate cells using opts.Conn.
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCellSize on bad input.
// Complexity: O(W×H×(Inflate+1)×d).
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.CellSize > 0) {
		return nil, ErrBadCellSize
	}

	g := &Grid{
		Width:          w,
		Height:         h,
		CellSize:       opts.CellSize,
		OriginX:        opts.OriginX,
		OriginY:        opts.OriginY,
		OutsideBlocked: opts.OutsideBlocked,
		blocked:        make([]bool, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.blocked[g.index(x, y)] = values[y][x] >= opts.BlockThreshold
		}
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	for i := 0; i < opts.Inflate; i++ {
		g.dilate(offsets)
	}

	return g, nil
}

// dilate marks every free neighbor of an obstacle as blocked (one ring).
func (g *Grid) dilate(offsets [][2]int) {
	next := append([]bool(nil), g.blocked...)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.blocked[g.index(x, y)] {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) {
					next[g.index(nx, ny)] = true
				}
			}
		}
	}
	g.blocked = next
}

// InBounds reports whether cell (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// CellAt returns the cell containing the point (px, py).
// The cell may lie outside the grid.
func (g *Grid) CellAt(px, py float64) (x, y int) {
	return int(math.Floor((px - g.OriginX) / g.CellSize)), int(math.Floor((py - g.OriginY) / g.CellSize))
}

// Blocked reports whether cell (x,y) is an obstacle. Cells outside the grid
// follow OutsideBlocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return g.OutsideBlocked
	}
	return g.blocked[g.index(x, y)]
}

// Feasible reports whether the cell under s is free.
func (g *Grid) Feasible(s vehicle.State) bool {
	return !g.Blocked(g.CellAt(s.X, s.Y))
}
