package statespace

import "container/heap"

// queue is a FIFO frontier.
type queue[S comparable, A any] struct {
	items []*Node[S, A]
	head  int
}

func (q *queue[S, A]) Len() int { return len(q.items) - q.head }

func (q *queue[S, A]) Push(n *Node[S, A]) { q.items = append(q.items, n) }

func (q *queue[S, A]) Pop() *Node[S, A] {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return n
}

// stack is a LIFO frontier.
type stack[S comparable, A any] struct {
	items []*Node[S, A]
}

func (s *stack[S, A]) Len() int { return len(s.items) }

func (s *stack[S, A]) Push(n *Node[S, A]) { s.items = append(s.items, n) }

func (s *stack[S, A]) Pop() *Node[S, A] {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n
}

// pqItem orders frontier entries by (priority, seq). seq is a strictly
// increasing insertion counter so equal priorities pop in FIFO order.
type pqItem[S comparable, A any] struct {
	priority float64
	seq      uint64
	node     *Node[S, A]
}

type pqHeap[S comparable, A any] []pqItem[S, A]

func (h pqHeap[S, A]) Len() int { return len(h) }

func (h pqHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[S, A]) Push(x any) { *h = append(*h, x.(pqItem[S, A])) }

func (h *pqHeap[S, A]) Pop() any {
	old := *h
	last := len(old) - 1
	item := old[last]
	old[last] = pqItem[S, A]{}
	*h = old[:last]
	return item
}

// priorityQueue is a min-priority frontier keyed by an evaluation function.
type priorityQueue[S comparable, A any] struct {
	f    EvalFunc[S, A]
	h    pqHeap[S, A]
	next uint64
}

func newPriorityQueue[S comparable, A any](f EvalFunc[S, A]) *priorityQueue[S, A] {
	return &priorityQueue[S, A]{f: f}
}

func (pq *priorityQueue[S, A]) Len() int { return pq.h.Len() }

func (pq *priorityQueue[S, A]) Push(n *Node[S, A]) {
	heap.Push(&pq.h, pqItem[S, A]{priority: pq.f(n), seq: pq.next, node: n})
	pq.next++
}

func (pq *priorityQueue[S, A]) Pop() *Node[S, A] {
	return heap.Pop(&pq.h).(pqItem[S, A]).node
}

// TopPriority returns the smallest priority on the frontier, or +Inf when empty.
func (pq *priorityQueue[S, A]) TopPriority() float64 {
	if len(pq.h) == 0 {
		return inf
	}
	return pq.h[0].priority
}
