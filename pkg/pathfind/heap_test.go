package pathfind

import "testing"

func TestMinHeap_PopsInFScoreOrder(t *testing.T) {
	var h minHeap
	scores := []float64{5, 1, 4, 2, 3, 0.5, 10}
	for i, s := range scores {
		h.Push(gridNode{i: int32(i)}, s, uint64(i))
	}

	prev := -1.0
	for h.Len() > 0 {
		item := h.Pop()
		if item.fScore < prev {
			t.Fatalf("popped fScore %f after %f", item.fScore, prev)
		}
		prev = item.fScore
	}
}

func TestMinHeap_TiesBreakByInsertionOrder(t *testing.T) {
	var h minHeap
	// All equal fScore; insertion order must decide.
	for i := 0; i < 8; i++ {
		h.Push(gridNode{j: int32(i)}, 7.0, uint64(i))
	}

	for want := int32(0); h.Len() > 0; want++ {
		item := h.Pop()
		if item.node.j != want {
			t.Fatalf("pop order: got node %d, want %d", item.node.j, want)
		}
	}
}

func TestMinHeap_EmptyAfterDrain(t *testing.T) {
	var h minHeap
	h.Push(gridNode{}, 1, 0)
	h.Pop()
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}
