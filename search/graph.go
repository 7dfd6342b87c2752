package search

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Graph owns every Node created during one search run, keyed by index.
//
// The index counter lives here, so concurrent runs never share it. Indices
// are handed out in creation order and never reused; a spawned node that is
// rejected before registration leaves a gap, and Get on that gap fails with
// ErrNotFound.
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes map[int]*Node
	next  int
}

// NewGraph returns an empty Graph whose first index is 0.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// Spawn creates an unregistered node holding the next index.
func (g *Graph) Spawn(state vehicle.State, parent int) *Node {
	n := NewNode(state, parent)
	n.Index = g.next
	g.next++
	return n
}

// Register stores n and returns its index. A node without an index gets the
// next one. Registering an index twice fails with ErrDuplicateIndex.
func (g *Graph) Register(n *Node) (int, error) {
	if n == nil {
		return unassigned, ErrNilNode
	}
	if n.Index == unassigned {
		n.Index = g.next
		g.next++
	}
	if _, ok := g.nodes[n.Index]; ok {
		return n.Index, fmt.Errorf("%w: %d", ErrDuplicateIndex, n.Index)
	}
	// keep the counter ahead of externally chosen indices
	if n.Index >= g.next {
		g.next = n.Index + 1
	}
	g.nodes[n.Index] = n

	return n.Index, nil
}

// Get returns the node stored under index.
func (g *Graph) Get(index int) (*Node, error) {
	n, ok := g.nodes[index]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	return n, nil
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the registered nodes in index order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, idx := range slices.Sorted(maps.Keys(g.nodes)) {
		out = append(out, g.nodes[idx])
	}
	return out
}

// ReconstructPath walks parent handles from goal to the root and returns the
// states in root→goal order.
//
// Errors:
//   - ErrNilNode if goal is nil.
//   - ErrNotFound if goal itself was never registered.
//   - ErrBrokenChain if a parent is missing or the walk is longer than the
//     number of stored nodes (a cycle).
func (g *Graph) ReconstructPath(goal *Node) ([]vehicle.State, error) {
	if goal == nil {
		return nil, ErrNilNode
	}
	if stored, ok := g.nodes[goal.Index]; !ok || stored != goal {
		return nil, fmt.Errorf("%w: goal %d", ErrNotFound, goal.Index)
	}

	var path []vehicle.State
	for cur := goal; ; {
		path = append(path, cur.State)
		if len(path) > len(g.nodes) {
			return nil, fmt.Errorf("%w: cycle through node %d", ErrBrokenChain, cur.Index)
		}
		if cur.Parent == NoParent {
			break
		}
		parent, ok := g.nodes[cur.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: node %d has missing parent %d", ErrBrokenChain, cur.Index, cur.Parent)
		}
		cur = parent
	}
	slices.Reverse(path)

	return path, nil
}
