// Package aqueue implements the intrusive, doubly-linked queue used by the
// reactor: its function entries and each function's pending operations
// enqueue through the same generic container.
package aqueue

// Element is one node of a Queue. The zero value is not usable; obtain
// Elements only from Queue.Enqueue.
type Element[T any] struct {
	queue      *Queue[T]
	prev, next *Element[T]
	value      T
}

// Value returns the item carried by e.
func (e *Element[T]) Value() T { return e.value }

// SetValue replaces the item carried by e in place.
func (e *Element[T]) SetValue(v T) { e.value = v }

// Methods bundles optional per-queue hooks. CancelRequest, when set, lets
// generic code ask the queue's owner to cancel an element's outstanding
// work without knowing its concrete kind.
type Methods[T any] struct {
	CancelRequest func(value T)
}

// Deallocator is called with an element's value when DeleteElement removes
// it from the queue.
type Deallocator[T any] func(value T)

// Queue is an ordered, intrusive list of elements of type T. All operations
// except Find/Process are O(1).
type Queue[T any] struct {
	head, tail *Element[T]
	size       int
	dealloc    Deallocator[T]
	methods    *Methods[T]
}

// New creates an empty queue. dealloc may be nil. methods may be nil.
func New[T any](dealloc Deallocator[T], methods *Methods[T]) *Queue[T] {
	return &Queue[T]{dealloc: dealloc, methods: methods}
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends value to the tail and returns its element handle.
func (q *Queue[T]) Enqueue(value T) *Element[T] {
	e := &Element[T]{queue: q, value: value}
	q.linkTail(e)
	q.size++
	return e
}

func (q *Queue[T]) linkTail(e *Element[T]) {
	e.prev = q.tail
	e.next = nil
	if q.tail != nil {
		q.tail.next = e
	} else {
		q.head = e
	}
	q.tail = e
}

func (q *Queue[T]) unlink(e *Element[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		q.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		q.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// Head returns the first element, or nil if empty.
func (q *Queue[T]) Head() *Element[T] { return q.head }

// Tail returns the last element, or nil if empty.
func (q *Queue[T]) Tail() *Element[T] { return q.tail }

// DeleteElement removes e from the queue and runs the deallocator, if any.
// e must belong to q.
func (q *Queue[T]) DeleteElement(e *Element[T]) {
	if e == nil || e.queue != q {
		return
	}
	q.unlink(e)
	q.size--
	e.queue = nil
	if q.dealloc != nil {
		q.dealloc(e.value)
	}
}

// RequeueElement moves e to the tail without invoking the deallocator,
// used by the reactor's round-robin fairness pass.
func (q *Queue[T]) RequeueElement(e *Element[T]) {
	if e == nil || e.queue != q {
		return
	}
	q.unlink(e)
	q.linkTail(e)
}

// CancelRequest invokes the queue's Methods.CancelRequest hook for e's
// value, if both are set.
func (q *Queue[T]) CancelRequest(e *Element[T]) {
	if q.methods != nil && q.methods.CancelRequest != nil && e != nil {
		q.methods.CancelRequest(e.value)
	}
}

// FindElement returns the first element for which predicate reports true,
// or nil. O(n).
func (q *Queue[T]) FindElement(predicate func(value T) bool) *Element[T] {
	for e := q.head; e != nil; e = e.next {
		if predicate(e.value) {
			return e
		}
	}
	return nil
}

// ProcessQueue walks elements head-to-tail, invoking fn on each; it stops
// and returns the current element as soon as fn returns true. O(n).
func (q *Queue[T]) ProcessQueue(fn func(value T) bool) *Element[T] {
	for e := q.head; e != nil; e = e.next {
		if fn(e.value) {
			return e
		}
	}
	return nil
}

// Values returns a snapshot slice of all queued values in order, mainly for
// tests and diagnostics.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for e := q.head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}
