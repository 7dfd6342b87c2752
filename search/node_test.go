// Package search_test contains unit tests for nodes, the graph arena, the
// expander and the planner loop.
package search_test

import (
	"testing"

	"github.com/katalvlaran/trajplan/search"
	"github.com/katalvlaran/trajplan/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeAt(x, y float64) *search.Node {
	return search.NewRoot(vehicle.At(x, y, 0))
}

func TestNewNode_Defaults(t *testing.T) {
	n := search.NewNode(vehicle.New(1, 2, 3, 45, 0, 2), 7)
	require.Equal(t, 7, n.Parent)
	require.Equal(t, 0.0, n.G)
	require.Equal(t, 0.0, n.H)
	require.Equal(t, search.DefaultNeighborhood, n.Neighborhood)
	require.Empty(t, n.Children())

	root := search.NewRoot(vehicle.At(0, 0, 0))
	require.Equal(t, search.NoParent, root.Parent)
}

func TestDistanceTo_HorizontalAndSymmetric(t *testing.T) {
	a := search.NewRoot(vehicle.At(0, 0, 0))
	b := search.NewRoot(vehicle.At(6, 8, -300))
	require.Equal(t, 10.0, a.DistanceTo(b))
	require.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
}

func TestIsGoal_StrictBoundary(t *testing.T) {
	n := nodeAt(0, 0)
	// exactly on the radius is outside
	require.False(t, n.IsGoal(vehicle.At(3, 4, 0)))
	require.True(t, n.IsGoal(vehicle.At(3, 3.99, 0)))
	// altitude is not checked
	require.True(t, n.IsGoal(vehicle.At(1, 1, 5000)))

	n.Neighborhood = 10
	require.True(t, n.IsGoal(vehicle.At(3, 4, 0)))
}

func TestTryAddChild_IdempotentByIndex(t *testing.T) {
	g := search.NewGraph()
	parent := g.Spawn(vehicle.At(0, 0, 0), search.NoParent)
	child := g.Spawn(vehicle.At(1, 0, 0), parent.Index)

	require.True(t, parent.TryAddChild(child))
	require.False(t, parent.TryAddChild(child))
	require.Equal(t, []int{child.Index}, parent.Children())

	// same state, different index: accepted
	twin := g.Spawn(child.State, parent.Index)
	require.True(t, parent.TryAddChild(twin))
	require.Equal(t, []int{child.Index, twin.Index}, parent.Children())
}

func TestChildren_ReturnsCopy(t *testing.T) {
	g := search.NewGraph()
	parent := g.Spawn(vehicle.At(0, 0, 0), search.NoParent)
	require.True(t, parent.TryAddChild(g.Spawn(vehicle.At(1, 0, 0), parent.Index)))

	kids := parent.Children()
	kids[0] = 99
	require.NotEqual(t, 99, parent.Children()[0])
}

func TestLess_OrdersByFOnly(t *testing.T) {
	a, b := nodeAt(0, 0), nodeAt(0, 0)
	a.G, a.H = 1, 2
	b.G, b.H = 2, 2
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	// equal G+H with different split: neither orders before the other
	b.G, b.H = 0, 3
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 3.0, a.F())
}

func TestDiffers_ByIndexOnly(t *testing.T) {
	g := search.NewGraph()
	a := g.Spawn(vehicle.At(0, 0, 0), search.NoParent)
	b := g.Spawn(vehicle.At(0, 0, 0), search.NoParent)
	require.True(t, a.Differs(b))
	require.False(t, a.Differs(a))

	c := search.NewNode(vehicle.At(50, 50, 50), search.NoParent)
	c.Index = a.Index
	require.False(t, a.Differs(c))
}

func TestOpenList_FIFOAmongEqualCost(t *testing.T) {
	g := search.NewGraph()
	q := search.NewOpenListForTest()

	costs := []float64{5, 3, 5, 3, 1, 5, 3}
	var pushed []*search.Node
	for _, c := range costs {
		n := g.Spawn(vehicle.At(0, 0, 0), search.NoParent)
		n.G = c
		pushed = append(pushed, n)
		q.Push(n)
	}

	var order []int
	for q.Len() > 0 {
		order = append(order, q.Pop().Index)
	}
	// cost 1, then the 3s, then the 5s, each group in push order
	want := []int{
		pushed[4].Index,
		pushed[1].Index, pushed[3].Index, pushed[6].Index,
		pushed[0].Index, pushed[2].Index, pushed[5].Index,
	}
	require.Equal(t, want, order)
}
