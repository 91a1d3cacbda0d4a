package pathfind

// minHeap is a concrete-typed min-heap for the A* open set.
// Avoids interface boxing overhead of container/heap.
type minHeap struct {
	items []heapItem
}

// heapItem is an open-set entry. seq is a monotonically increasing insertion
// counter: entries with equal fScore pop in insertion order, so expansion
// order is reproducible for identical inputs.
type heapItem struct {
	node   gridNode
	fScore float64
	seq    uint64
}

func (a heapItem) less(b heapItem) bool {
	if a.fScore != b.fScore {
		return a.fScore < b.fScore
	}
	return a.seq < b.seq
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node gridNode, fScore float64, seq uint64) {
	h.items = append(h.items, heapItem{node, fScore, seq})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() heapItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].less(h.items[i]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].less(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.items[right].less(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
