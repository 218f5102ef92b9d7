package aoc

import "container/heap"

// MinHeap is a priority queue that pops the lowest cost first. Entries
// with equal cost come out in no particular order.
type MinHeap[T any] struct {
	items heapItems[T]
}

func NewMinHeap[T any](capacity int) *MinHeap[T] {
	return &MinHeap[T]{items: make(heapItems[T], 0, capacity)}
}

func (h *MinHeap[T]) Len() int { return len(h.items) }

func (h *MinHeap[T]) Push(cost int, v T) {
	heap.Push(&h.items, heapItem[T]{cost: cost, v: v})
}

// Pop removes and returns the cheapest entry. ok is false if h is empty.
func (h *MinHeap[T]) Pop() (cost int, v T, ok bool) {
	if len(h.items) == 0 {
		return 0, v, false
	}
	it := heap.Pop(&h.items).(heapItem[T])
	return it.cost, it.v, true
}

// Peek returns the cheapest entry without removing it.
func (h *MinHeap[T]) Peek() (cost int, v T, ok bool) {
	if len(h.items) == 0 {
		return 0, v, false
	}
	return h.items[0].cost, h.items[0].v, true
}

type heapItem[T any] struct {
	cost int
	v    T
}

// heapItems implements heap.Interface ordered by cost.
type heapItems[T any] []heapItem[T]

func (hi heapItems[T]) Len() int           { return len(hi) }
func (hi heapItems[T]) Less(i, j int) bool { return hi[i].cost < hi[j].cost }
func (hi heapItems[T]) Swap(i, j int)      { hi[i], hi[j] = hi[j], hi[i] }
func (hi *heapItems[T]) Push(x any)        { *hi = append(*hi, x.(heapItem[T])) }

func (hi *heapItems[T]) Pop() any {
	old := *hi
	n := len(old)
	it := old[n-1]
	*hi = old[:n-1]
	return it
}
