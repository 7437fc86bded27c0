package pathfinding

// openQueue is a min-heap over the open set, keyed by F score with ties
// broken by the lower heuristic (the node closer, in straight-line terms, to
// the destination) and finally by creation order so selection is fully
// deterministic.
type openQueue []*GridNode

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if fa, fb := a.F(), b.F(); fa != fb {
		return fa < fb
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return a.Index < b.Index
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIdx = i
	q[j].heapIdx = j
}

func (q *openQueue) Push(x interface{}) {
	node := x.(*GridNode)
	node.heapIdx = len(*q)
	*q = append(*q, node)
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // avoid memory leak
	node.heapIdx = -1
	*q = old[0 : n-1]
	return node
}
