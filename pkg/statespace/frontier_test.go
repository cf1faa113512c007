package statespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(s string, cost float64) *Node[string, string] {
	return &Node[string, string]{State: s, PathCost: cost}
}

// TestPriorityQueue_TieBreak tests FIFO order among equal priorities.
func TestPriorityQueue_TieBreak(t *testing.T) {
	pq := newPriorityQueue(PathCostEval[string, string]())
	pq.Push(node("late", 5))
	pq.Push(node("first", 1))
	pq.Push(node("second", 1))
	pq.Push(node("third", 1))
	pq.Push(node("zero", 0))

	assert.Equal(t, 0.0, pq.TopPriority())

	var order []string
	for pq.Len() > 0 {
		order = append(order, pq.Pop().State)
	}
	assert.Equal(t, []string{"zero", "first", "second", "third", "late"}, order)
	assert.True(t, pq.TopPriority() > 1e308, "empty queue reports +Inf")
}

// TestQueue tests FIFO order and compaction.
func TestQueue(t *testing.T) {
	q := &queue[string, string]{}
	for i := 0; i < 200; i++ {
		q.Push(node(nodeName(i%26), float64(i)))
	}
	for i := 0; i < 150; i++ {
		require.Equal(t, float64(i), q.Pop().PathCost)
	}
	assert.Equal(t, 50, q.Len())
	assert.LessOrEqual(t, q.head, 64, "consumed prefix should be reclaimed")

	q.Push(node("tail", 999))
	for i := 150; i < 200; i++ {
		require.Equal(t, float64(i), q.Pop().PathCost)
	}
	assert.Equal(t, "tail", q.Pop().State)
	assert.Equal(t, 0, q.Len())
}

// TestStack tests LIFO order.
func TestStack(t *testing.T) {
	s := &stack[string, string]{}
	s.Push(node("a", 0))
	s.Push(node("b", 0))
	s.Push(node("c", 0))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "c", s.Pop().State)
	assert.Equal(t, "b", s.Pop().State)
	assert.Equal(t, "a", s.Pop().State)
	assert.Equal(t, 0, s.Len())
}
