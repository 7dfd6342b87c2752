// Package feasibility provides concrete search.Oracle implementations that
// decide whether a generated vehicle state may enter the search.
//
// What:
//
//   - AltitudeBand: accept states whose Z lies in [Min, Max].
//   - Terrain:      accept states at least SafetyMargin above a ground model.
//   - Geofence:     keep-in and keep-out polygons in the horizontal plane.
//   - Grid:         occupancy grid; cells with value ≥ BlockThreshold are
//     obstacles, optionally inflated by whole cells.
//   - Chain:        accept only when every member accepts.
//
// All oracles are pure and read-only after construction, so one value can be
// shared by concurrent planning runs.
//
// Errors:
//
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   grid rows have differing lengths.
//   - ErrBadCellSize:      cell size is not positive.
//   - ErrDegeneratePolygon: polygon has fewer than three vertices.
//   - ErrBadBand:          altitude band with Min > Max.
package feasibility
