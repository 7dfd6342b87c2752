package search

import (
	"github.com/katalvlaran/trajplan/vehicle"
)

// NoParent marks the root of a search tree.
const NoParent = -1

// unassigned is the Index of a node that has not been given one by a Graph.
const unassigned = -1

// Node wraps a vehicle.State with search bookkeeping.
//
// Parent is a handle into the owning Graph, not a pointer: the Graph is the
// only owner of node storage for the duration of a run.
type Node struct {
	Index        int
	Parent       int
	State        vehicle.State
	G            float64 // cost-to-come
	H            float64 // heuristic cost-to-goal
	Neighborhood float64 // goal acceptance radius

	children []int
}

// NewNode returns a node with G=H=0, the default neighborhood and no index.
// Graph.Register or Graph.Spawn assign the index.
func NewNode(state vehicle.State, parent int) *Node {
	return &Node{
		Index:        unassigned,
		Parent:       parent,
		State:        state,
		Neighborhood: DefaultNeighborhood,
	}
}

// NewRoot returns a parentless node for the start of a run.
func NewRoot(state vehicle.State) *Node {
	return NewNode(state, NoParent)
}

// DistanceTo returns the horizontal distance between n and other.
func (n *Node) DistanceTo(other *Node) float64 {
	return n.State.HorizontalDistance(other.State)
}

// IsGoal reports whether n lies strictly inside the neighborhood of goal.
// Altitude is not checked.
func (n *Node) IsGoal(goal vehicle.State) bool {
	return n.State.HorizontalDistance(goal) < n.Neighborhood
}

// TryAddChild links child under n unless a child with the same index is
// already linked. It compares indices only; physically coincident states with
// different indices are both accepted.
func (n *Node) TryAddChild(child *Node) bool {
	for _, idx := range n.children {
		if idx == child.Index {
			return false
		}
	}
	n.children = append(n.children, child.Index)
	return true
}

// Children returns a copy of the linked child indices, in link order.
func (n *Node) Children() []int {
	return append([]int(nil), n.children...)
}

// F returns G+H, the sole ordering key.
func (n *Node) F() float64 { return n.G + n.H }

// Less reports whether n orders before other: n.G+n.H < other.G+other.H.
func (n *Node) Less(other *Node) bool {
	return n.F() < other.F()
}

// Differs reports whether n and other have different indices. States are
// not compared.
func (n *Node) Differs(other *Node) bool {
	return n.Index != other.Index
}
