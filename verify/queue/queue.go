package queue

import "container/heap"

// item is the internal heap element: a value paired with its priority and
// insertion sequence number. seq breaks priority ties FIFO (lower seq, i.e.
// earlier insertion, wins), matching the dijkstra nodeItem pattern of
// tagging queue entries with an orderable key distinct from their payload.
type item struct {
	value    interface{}
	priority float64
	seq      uint64
}

// innerHeap is the container/heap.Interface implementation: a max-heap on
// priority, FIFO among ties.
type innerHeap []*item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority // max-heap
	}

	return h[i].seq < h[j].seq // earlier insertion first
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// Queue is a FIFO-tiebroken max-priority queue. The zero value is not
// usable; construct with New.
type Queue struct {
	h       innerHeap
	nextSeq uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{h: make(innerHeap, 0)}
}

// Push inserts value with the given priority.
func (q *Queue) Push(priority float64, value interface{}) {
	heap.Push(&q.h, &item{value: value, priority: priority, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the highest-priority value, breaking ties FIFO.
// ok is false when the queue is empty.
func (q *Queue) Pop() (value interface{}, priority float64, ok bool) {
	if len(q.h) == 0 {
		return nil, 0, false
	}
	it := heap.Pop(&q.h).(*item)

	return it.value, it.priority, true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.h) }

// Peek returns the highest-priority value without removing it.
func (q *Queue) Peek() (value interface{}, priority float64, ok bool) {
	if len(q.h) == 0 {
		return nil, 0, false
	}

	return q.h[0].value, q.h[0].priority, true
}
