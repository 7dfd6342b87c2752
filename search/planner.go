package search

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Planner runs bounded best-first searches. It is immutable after
// construction and safe for concurrent use; every run builds its own Graph.
type Planner struct {
	opts     Options
	expander Expander
}

// NewPlanner applies opts over DefaultOptions and validates the result.
//
// Validation order:
//  1. HeadingOffsets non-empty (ErrEmptyHeadingGrid).
//  2. VSpeedOffsets non-empty (ErrEmptyVSpeedGrid).
//  3. TimeStep finite and > 0 (ErrBadTimeStep).
//  4. Neighborhood finite and > 0 (ErrBadNeighborhood).
//  5. StepBudget > 0 (ErrBadStepBudget).
//  6. CruiseSpeed finite and ≥ 0 (ErrBadCruiseSpeed).
//  7. Workers ≥ 1 (ErrBadWorkers).
//  8. Timeout ≥ 0 (ErrBadTimeout).
func NewPlanner(opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Planner{opts: cfg, expander: NewExpander(cfg)}, nil
}

// Validate checks o in the order documented on NewPlanner.
func (o Options) Validate() error {
	switch {
	case len(o.HeadingOffsets) == 0:
		return ErrEmptyHeadingGrid
	case len(o.VSpeedOffsets) == 0:
		return ErrEmptyVSpeedGrid
	case !(o.TimeStep > 0) || math.IsInf(o.TimeStep, 0):
		return fmt.Errorf("%w: %v", ErrBadTimeStep, o.TimeStep)
	case !(o.Neighborhood > 0) || math.IsInf(o.Neighborhood, 0):
		return fmt.Errorf("%w: %v", ErrBadNeighborhood, o.Neighborhood)
	case o.StepBudget <= 0:
		return fmt.Errorf("%w: %d", ErrBadStepBudget, o.StepBudget)
	case !(o.CruiseSpeed >= 0) || math.IsInf(o.CruiseSpeed, 0):
		return fmt.Errorf("%w: %v", ErrBadCruiseSpeed, o.CruiseSpeed)
	case o.Workers < 1:
		return fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	case o.Timeout < 0:
		return fmt.Errorf("%w: %v", ErrBadTimeout, o.Timeout)
	}
	return nil
}

// Options returns a copy of the planner's configuration.
func (p *Planner) Options() Options {
	o := p.opts
	o.HeadingOffsets = append([]float64(nil), o.HeadingOffsets...)
	o.VSpeedOffsets = append([]float64(nil), o.VSpeedOffsets...)
	return o
}

// Plan searches for a path from start into the neighborhood of goal.
//
// Exhausted and aborted searches are returned as Results with a nil error.
// A non-nil error means a broken internal invariant (ErrNotFound,
// ErrBrokenChain, ErrDuplicateIndex); the Result then carries no path.
func (p *Planner) Plan(ctx context.Context, start, goal vehicle.State) (Result, error) {
	st := p.NewStepper(start, goal)
	for !st.Done() {
		if _, err := st.Step(ctx); err != nil {
			return st.Result(), err
		}
	}
	return st.Result(), nil
}

// heuristic is the horizontal straight-line distance to the goal.
func heuristic(s, goal vehicle.State) float64 {
	return s.HorizontalDistance(goal)
}

// runner holds the mutable state of a single planning run.
type runner struct {
	opts     Options
	expander Expander
	log      *slog.Logger

	goal     vehicle.State
	graph    *Graph
	open     openList
	closed   map[int]bool
	seq      uint64
	deadline time.Time
	started  time.Time

	status   Status
	current  int
	expanded int
	rejected int
	path     []vehicle.State
	cost     float64
}

// newRunner creates the root from start, registers it and seeds the open list.
func newRunner(p *Planner, start, goal vehicle.State) *runner {
	r := &runner{
		opts:     p.opts,
		expander: p.expander,
		log:      p.opts.Logger,
		goal:     goal,
		graph:    NewGraph(),
		open:     make(openList, 0, p.expander.Size()*4),
		closed:   make(map[int]bool),
		status:   StatusReady,
		current:  NoParent,
		started:  time.Now(),
	}
	if p.opts.Timeout > 0 {
		r.deadline = r.started.Add(p.opts.Timeout)
	}

	root := NewRoot(start)
	root.Neighborhood = p.opts.Neighborhood
	root.H = heuristic(start, goal)
	// a fresh graph cannot reject its first node
	_, _ = r.graph.Register(root)

	heap.Init(&r.open)
	r.push(root)

	return r
}

func (r *runner) push(n *Node) {
	heapPush(&r.open, openItem{node: n, seq: r.seq})
	r.seq++
}

// step performs one iteration of the search loop. It is a no-op once the
// run is terminal.
func (r *runner) step(ctx context.Context) error {
	if r.status.Terminal() {
		return nil
	}
	if r.status == StatusReady {
		r.status = StatusSearching
		r.log.Debug("plan started",
			slog.String("goal", r.goal.String()),
			slog.Int("grid", r.expander.Size()),
			slog.Int("budget", r.opts.StepBudget))
	}

	// 1) Cooperative cancellation point.
	if ctx.Err() != nil {
		r.finish(StatusAborted)
		return nil
	}

	// 2) Frontier and budgets.
	if r.open.Len() == 0 {
		r.finish(StatusExhausted)
		return nil
	}
	if r.expanded >= r.opts.StepBudget {
		r.finish(StatusExhausted)
		return nil
	}
	if !r.deadline.IsZero() && !time.Now().Before(r.deadline) {
		r.finish(StatusExhausted)
		return nil
	}

	// 3) Pop the lowest G+H, FIFO among equals.
	cur := heapPop(&r.open).node
	r.current = cur.Index
	if r.closed[cur.Index] {
		return nil
	}

	// 4) Goal test.
	if cur.IsGoal(r.goal) {
		path, err := r.graph.ReconstructPath(cur)
		if err != nil {
			r.log.Error("path reconstruction failed", slog.Int("node", cur.Index), slog.Any("err", err))
			return err
		}
		r.path = path
		r.cost = cur.G
		r.finish(StatusSucceeded)
		return nil
	}

	// 5) Close and expand.
	r.closed[cur.Index] = true
	successors, err := r.expander.Expand(ctx, cur, r.graph)
	if err != nil {
		if ctx.Err() != nil {
			r.finish(StatusAborted)
			return nil
		}
		return fmt.Errorf("search: expanding node %d: %w", cur.Index, err)
	}
	r.expanded++

	for _, child := range successors {
		if err := r.relax(cur, child); err != nil {
			return err
		}
	}

	return nil
}

// relax filters one successor and, if accepted, costs, registers and pushes it.
func (r *runner) relax(parent, child *Node) error {
	if r.closed[child.Index] {
		return nil
	}
	if r.opts.Oracle != nil && !r.opts.Oracle.Feasible(child.State) {
		r.rejected++
		return nil
	}
	if !parent.TryAddChild(child) {
		return nil
	}

	child.G = parent.G + child.DistanceTo(parent)
	child.H = heuristic(child.State, r.goal)
	if _, err := r.graph.Register(child); err != nil {
		return err
	}
	r.push(child)

	return nil
}

func (r *runner) finish(s Status) {
	r.status = s
	r.log.Debug("plan finished",
		slog.String("status", s.String()),
		slog.Int("expanded", r.expanded),
		slog.Int("nodes", r.graph.Len()),
		slog.Int("rejected", r.rejected),
		slog.Int("path", len(r.path)),
		slog.Duration("elapsed", time.Since(r.started)))
}

func (r *runner) result() Result {
	res := Result{
		Status:   r.status,
		Expanded: r.expanded,
		Nodes:    r.graph.Len(),
		Rejected: r.rejected,
	}
	if r.status == StatusSucceeded {
		res.Path = append([]vehicle.State(nil), r.path...)
		res.Cost = r.cost
	}
	return res
}
