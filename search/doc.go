// Package search implements a best-first (A*) trajectory search over a
// discretized heading × vertical-speed maneuver grid.
//
// Overview:
//
//   - Node wraps a vehicle.State with search bookkeeping: a run-unique Index,
//     a non-owning Parent handle, cost-to-come G, heuristic H, the goal
//     acceptance radius (Neighborhood) and the indices of children already
//     linked to it.
//   - Expander applies a kinematic step to every (heading offset, vertical
//     speed offset) pair over a fixed time step dt.
//   - Graph is the per-run arena: it owns every Node keyed by index and hands
//     out indices from a counter that is never shared between runs.
//   - Planner drives the search: open list ordered by G+H with FIFO
//     tie-breaking, closed set, goal test, budgets and path extraction.
//   - Stepper exposes the same loop one iteration at a time for debugging and
//     visualisation tools.
//
// Motion model (dpsi, dvs taken from the grid):
//
//	psi' = psi + dpsi
//	x'   = x + speed·sin(rad(dpsi + psi))·dt
//	y'   = y + speed·cos(rad(dpsi + psi))·dt
//	z'   = z + vs·dt
//	vs'  = dvs
//	speed' = CruiseSpeed (fixed nominal, not inherited)
//
// Costs:
//
//   - G(child) = G(parent) + horizontal distance parent→child.
//   - H(node)  = horizontal straight-line distance to the goal (admissible and
//     consistent, and the same horizontal-only rule as the goal test).
//   - The Expander never sets G; cost accounting belongs to the Planner.
//
// Outcomes:
//
//   - StatusSucceeded: Path holds root→goal states.
//   - StatusExhausted: open list emptied, step budget or timeout reached.
//   - StatusAborted:   the caller's context was cancelled; checked at the top
//     of every loop iteration (cooperative, never preemptive).
//   - Exhausted and Aborted are ordinary Results with a nil error. ErrNotFound,
//     ErrBrokenChain and ErrDuplicateIndex signal broken invariants and are
//     returned as errors, never as partial paths.
//
// Duplicate policy:
//
//	Duplicates are suppressed by index only (Node.TryAddChild and the closed
//	set). Two successors with identical states but different indices are both
//	kept; there is no state-based deduplication.
//
// Concurrency:
//
//   - A Planner is immutable after NewPlanner and may serve concurrent Plan
//     calls; each call owns its Graph, open list and closed set.
//   - WithWorkers(n>1) computes successor states in parallel, but indices are
//     always assigned serially, in grid order, by the orchestrating goroutine.
package search
