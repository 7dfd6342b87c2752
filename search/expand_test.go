package search_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/trajplan/search"
	"github.com/katalvlaran/trajplan/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpander_StepMotionModel(t *testing.T) {
	e := search.Expander{DT: 2, CruiseSpeed: 3}
	s := vehicle.New(10, 20, 100, 80, -1, 4)

	got := e.Step(s, 10, 2.5)

	// heading 90: all horizontal motion is eastward
	assert.InDelta(t, 10+4*2, got.X, 1e-9)
	assert.InDelta(t, 20, got.Y, 1e-9)
	// climb uses the parent's vertical speed
	assert.Equal(t, 100.0-2, got.Z)
	assert.Equal(t, 90.0, got.Psi)
	// new vertical speed is the grid offset, speed is the fixed cruise value
	assert.Equal(t, 2.5, got.VS)
	assert.Equal(t, 3.0, got.Speed)
}

func TestExpander_HeadingNotWrapped(t *testing.T) {
	e := search.Expander{DT: 1, CruiseSpeed: 2}
	got := e.Step(vehicle.New(0, 0, 0, 5, 0, 2), -10, 0)
	require.Equal(t, -5.0, got.Psi)
	assert.InDelta(t, 2*math.Sin(vehicle.Radians(-5)), got.X, 1e-12)
}

func TestExpander_SuccessorsGridOrder(t *testing.T) {
	e := search.Expander{
		HeadingOffsets: []float64{-10, 0, 10},
		VSpeedOffsets:  []float64{-1, 1},
		DT:             1,
		CruiseSpeed:    2,
	}
	out := e.Successors(vehicle.New(0, 0, 0, 0, 0, 2))
	require.Len(t, out, e.Size())

	wantPsi := []float64{-10, -10, 0, 0, 10, 10}
	wantVS := []float64{-1, 1, -1, 1, -1, 1}
	for i, s := range out {
		assert.Equal(t, wantPsi[i], s.Psi, "succ %d", i)
		assert.Equal(t, wantVS[i], s.VS, "succ %d", i)
	}
}

func TestExpander_ExpandLinksParentAndLeavesCost(t *testing.T) {
	g := search.NewGraph()
	parent := search.NewRoot(vehicle.New(0, 0, 0, 0, 0, 2))
	parent.G = 7
	parent.Neighborhood = 12
	_, _ = g.Register(parent)

	e := search.Expander{HeadingOffsets: []float64{-10, 0, 10}, VSpeedOffsets: []float64{0}, DT: 1, CruiseSpeed: 2}
	kids, err := e.Expand(context.Background(), parent, g)
	require.NoError(t, err)
	require.Len(t, kids, 3)

	for i, k := range kids {
		require.Equal(t, parent.Index+1+i, k.Index)
		require.Equal(t, parent.Index, k.Parent)
		require.Equal(t, 0.0, k.G)
		require.Equal(t, 0.0, k.H)
		require.Equal(t, 12.0, k.Neighborhood)
	}
	// nothing is registered by the expander
	require.Equal(t, 1, g.Len())

	_, err = e.Expand(context.Background(), nil, g)
	require.ErrorIs(t, err, search.ErrNilNode)
}

func TestExpander_ParallelMatchesSerial(t *testing.T) {
	base := search.Expander{
		HeadingOffsets: []float64{-30, -20, -10, 0, 10, 20, 30},
		VSpeedOffsets:  []float64{-2, -1, 0, 1, 2},
		DT:             0.5,
		CruiseSpeed:    25,
	}
	par := base
	par.Workers = 4

	start := vehicle.New(3, -4, 120, 33, 1, 25)

	g1, g2 := search.NewGraph(), search.NewGraph()
	r1, r2 := search.NewRoot(start), search.NewRoot(start)
	_, _ = g1.Register(r1)
	_, _ = g2.Register(r2)

	serial, err := base.Expand(context.Background(), r1, g1)
	require.NoError(t, err)
	parallel, err := par.Expand(context.Background(), r2, g2)
	require.NoError(t, err)

	require.Equal(t, len(serial), len(parallel))
	for i := range serial {
		require.Equal(t, serial[i].Index, parallel[i].Index)
		require.Equal(t, serial[i].State, parallel[i].State)
	}
}

func TestExpander_ParallelHonoursCancellation(t *testing.T) {
	e := search.Expander{
		HeadingOffsets: []float64{-10, 0, 10},
		VSpeedOffsets:  []float64{0},
		DT:             1,
		CruiseSpeed:    2,
		Workers:        2,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := search.NewGraph()
	root := search.NewRoot(vehicle.New(0, 0, 0, 0, 0, 2))
	_, _ = g.Register(root)

	_, err := e.Expand(ctx, root, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewExpander_CopiesGrids(t *testing.T) {
	o := search.DefaultOptions()
	e := search.NewExpander(o)
	o.HeadingOffsets[0] = 99
	require.Equal(t, -10.0, e.HeadingOffsets[0])
	require.Equal(t, 3, e.Size())
}
