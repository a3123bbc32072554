// Package queue implements FIFO queues used by graph traversals over grammar symbols.
package queue

const minSize = 4

// Queue is a ring buffer FIFO. Capacity is always a power of 2 and grows on demand.
type Queue[T any] struct {
	items      []T
	head, tail int
	length     int
	zero       T
}

func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, capacityFor(len(items)))}
	for _, item := range items {
		q.Push(item)
	}
	return q
}

func capacityFor(length int) int {
	size := minSize
	for size <= length {
		size <<= 1
	}
	return size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

func (q *Queue[T]) Len() int {
	return q.length
}

// Items returns queued items in FIFO order, the queue is not changed.
func (q *Queue[T]) Items() []T {
	result := make([]T, q.length)
	mask := len(q.items) - 1
	for i := range result {
		result[i] = q.items[(q.head+i)&mask]
	}
	return result
}

func (q *Queue[T]) Push(item T) *Queue[T] {
	if q.length == len(q.items) {
		q.grow()
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & (len(q.items) - 1)
	q.length++
	return q
}

// Pop removes and returns the oldest item. Returns zero value and false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.length == 0 {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.length--
	return result, true
}

func (q *Queue[T]) grow() {
	items := q.Items()
	q.items = make([]T, len(q.items)<<1)
	copy(q.items, items)
	q.head = 0
	q.tail = len(items)
}

// Worklist is a queue that accepts every distinct item only once during its lifetime.
// Popped items are still remembered, so cycles in traversed graphs terminate.
type Worklist[T comparable] struct {
	queue *Queue[T]
	seen  map[T]bool
}

func NewWorklist[T comparable](items ...T) *Worklist[T] {
	w := &Worklist[T]{queue: New[T](), seen: make(map[T]bool, len(items))}
	for _, item := range items {
		w.Push(item)
	}
	return w
}

// Push enqueues item and returns true if it was never pushed before.
func (w *Worklist[T]) Push(item T) bool {
	if w.seen[item] {
		return false
	}

	w.seen[item] = true
	w.queue.Push(item)
	return true
}

func (w *Worklist[T]) Pop() (T, bool) {
	return w.queue.Pop()
}

func (w *Worklist[T]) IsEmpty() bool {
	return w.queue.IsEmpty()
}

// Seen reports whether item was ever pushed.
func (w *Worklist[T]) Seen(item T) bool {
	return w.seen[item]
}
