// Package trajplan plans aircraft trajectories with A* over a maneuver grid.
//
// Every search node holds a full vehicle state. Expanding a node applies each
// combination of a heading change and a vertical speed for one time step, so
// the successors are kinematically reachable rather than cells on a lattice.
// The search stops when a node lands strictly inside the goal neighborhood,
// when the open list empties, or when the step budget or timeout runs out.
//
// Packages:
//
//	vehicle/      State, the immutable kinematic snapshot
//	search/       Node, Graph arena, Expander, Planner and Stepper
//	feasibility/  oracles: altitude band, terrain, geofence, occupancy grid
//	config/       HCL configuration and ground-station link settings
//	wire/         msgpack messages and zstd-compressed run archives
//	logging/      slog loggers with optional rotated files
//	cmd/trajplan  command-line planner
//
// Quick start:
//
//	p, _ := search.NewPlanner(search.WithHeadingOffsets(-10, 0, 10))
//	res, _ := p.Plan(ctx, vehicle.New(0, 0, 100, 0, 0, 2), vehicle.At(10, 10, 100))
//	fmt.Println(res.Status, len(res.Path))
package trajplan
