package search

import (
	"context"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Snapshot exposes the state of a run after one Step.
type Snapshot struct {
	Status   Status
	Current  int // index popped by this step, NoParent before the first pop
	Open     int // frontier size
	Closed   int // expanded nodes
	Nodes    int // registered nodes
	Expanded int
	Path     []vehicle.State // set once Status is StatusSucceeded
}

// Stepper drives a planning run one loop iteration at a time. Plan is
// equivalent to calling Step until Done.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	r *runner
}

// NewStepper prepares a run from start to goal. The root is registered
// immediately; no expansion happens until the first Step.
func (p *Planner) NewStepper(start, goal vehicle.State) *Stepper {
	return &Stepper{r: newRunner(p, start, goal)}
}

// Step advances the run by one iteration. Once the run is terminal further
// calls return the final snapshot unchanged.
func (s *Stepper) Step(ctx context.Context) (Snapshot, error) {
	err := s.r.step(ctx)
	return s.snapshot(), err
}

// Done reports whether the run reached a terminal status.
func (s *Stepper) Done() bool { return s.r.status.Terminal() }

// Status returns the current state of the run.
func (s *Stepper) Status() Status { return s.r.status }

// Graph returns the run's node arena for inspection. Callers must not
// mutate it while stepping.
func (s *Stepper) Graph() *Graph { return s.r.graph }

// Result returns the run outcome so far.
func (s *Stepper) Result() Result { return s.r.result() }

func (s *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.r.status,
		Current:  s.r.current,
		Open:     s.r.open.Len(),
		Closed:   len(s.r.closed),
		Nodes:    s.r.graph.Len(),
		Expanded: s.r.expanded,
	}
	if s.r.status == StatusSucceeded {
		snap.Path = append([]vehicle.State(nil), s.r.path...)
	}
	return snap
}
