package search

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Expander generates successors by sampling the heading × vertical-speed
// grid over one time step.
type Expander struct {
	HeadingOffsets []float64 // degrees
	VSpeedOffsets  []float64 // m/s
	DT             float64   // seconds
	CruiseSpeed    float64   // m/s given to every successor
	Workers        int       // >1 computes heading rows concurrently
}

// NewExpander builds an Expander from validated Options.
func NewExpander(o Options) Expander {
	return Expander{
		HeadingOffsets: append([]float64(nil), o.HeadingOffsets...),
		VSpeedOffsets:  append([]float64(nil), o.VSpeedOffsets...),
		DT:             o.TimeStep,
		CruiseSpeed:    o.CruiseSpeed,
		Workers:        o.Workers,
	}
}

// Size returns the number of successors produced per expansion.
func (e Expander) Size() int { return len(e.HeadingOffsets) * len(e.VSpeedOffsets) }

// Step applies one maneuver (dpsi, dvs) to s.
func (e Expander) Step(s vehicle.State, dpsi, dvs float64) vehicle.State {
	r := vehicle.Radians(dpsi + s.Psi)
	return vehicle.New(
		s.X+s.Speed*math.Sin(r)*e.DT,
		s.Y+s.Speed*math.Cos(r)*e.DT,
		s.Z+s.VS*e.DT,
		s.Psi+dpsi,
		dvs,
		e.CruiseSpeed,
	)
}

// Successors returns the successor states of s in heading-major grid order.
func (e Expander) Successors(s vehicle.State) []vehicle.State {
	out := make([]vehicle.State, 0, e.Size())
	for _, dpsi := range e.HeadingOffsets {
		for _, dvs := range e.VSpeedOffsets {
			out = append(out, e.Step(s, dpsi, dvs))
		}
	}
	return out
}

// successorsParallel fills the same grid as Successors, one heading row per
// task. Each task writes only its own slots, so the output order matches.
func (e Expander) successorsParallel(ctx context.Context, s vehicle.State) ([]vehicle.State, error) {
	out := make([]vehicle.State, e.Size())
	nv := len(e.VSpeedOffsets)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.Workers)
	for i, dpsi := range e.HeadingOffsets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j, dvs := range e.VSpeedOffsets {
				out[i*nv+j] = e.Step(s, dpsi, dvs)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Expand creates successor nodes of parent. States may be computed
// concurrently, but indices are taken from g serially and in grid order, so
// the result is identical for any worker count.
//
// Successors are linked to parent only through their Parent handle and
// inherit its Neighborhood. G and H are left at zero and nothing is
// registered; both are the caller's job.
func (e Expander) Expand(ctx context.Context, parent *Node, g *Graph) ([]*Node, error) {
	if parent == nil {
		return nil, ErrNilNode
	}

	var states []vehicle.State
	if e.Workers > 1 && len(e.HeadingOffsets) > 1 {
		var err error
		if states, err = e.successorsParallel(ctx, parent.State); err != nil {
			return nil, err
		}
	} else {
		states = e.Successors(parent.State)
	}

	nodes := make([]*Node, len(states))
	for i, s := range states {
		n := g.Spawn(s, parent.Index)
		n.Neighborhood = parent.Neighborhood
		nodes[i] = n
	}

	return nodes, nil
}
