package search

import "container/heap"

// openItem is a frontier entry. seq records push order so that nodes with
// equal G+H pop first-in first-out.
type openItem struct {
	node *Node
	seq  uint64
}

// openList is a min-heap of frontier entries ordered by Node.Less, then seq.
type openList []openItem

func (q openList) Len() int { return len(q) }

func (q openList) Less(i, j int) bool {
	a, b := q[i].node, q[j].node
	if a.Less(b) {
		return true
	}
	if b.Less(a) {
		return false
	}
	return q[i].seq < q[j].seq
}

func (q openList) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be an openItem.
func (q *openList) Push(x any) { *q = append(*q, x.(openItem)) }

// Pop is called by heap.Pop.
func (q *openList) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = openItem{}
	*q = old[:n-1]

	return item
}

func heapPush(q *openList, it openItem) { heap.Push(q, it) }

func heapPop(q *openList) openItem { return heap.Pop(q).(openItem) }
