package search

// OpenListForTest exposes the unexported frontier heap to search_test.
type OpenListForTest struct {
	q   openList
	seq uint64
}

// NewOpenListForTest returns an empty frontier.
func NewOpenListForTest() *OpenListForTest { return &OpenListForTest{} }

// Push adds n with the next sequence number.
func (o *OpenListForTest) Push(n *Node) {
	heapPush(&o.q, openItem{node: n, seq: o.seq})
	o.seq++
}

// Pop removes the lowest G+H node, FIFO among equals.
func (o *OpenListForTest) Pop() *Node { return heapPop(&o.q).node }

// Len returns the frontier size.
func (o *OpenListForTest) Len() int { return o.q.Len() }
