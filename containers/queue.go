package containers

// NewQueue creates a queue over the given container.
func NewQueue[T any](c Container[T]) *Queue[T] {
	return &Queue[T]{container: c}
}

// NewDequeQueue creates a queue over a fresh linear deque of the given
// capacity. Pops shift the buffer and are O(count).
func NewDequeQueue[T any](capacity uint) *Queue[T] {
	return NewQueue[T](NewDeque[T](capacity))
}

// NewFastQueue creates a queue over a fresh circular deque of the given
// capacity, making both ends O(1).
func NewFastQueue[T any](capacity uint) *Queue[T] {
	return NewQueue[T](NewCircularDeque[T](capacity))
}

// Queue is a FIFO façade over a deque: push at the back, pop at the front.
// It adds no behavior and owns no storage beyond the wrapped container.
type Queue[T any] struct {
	container Container[T]
}

// Push places v at the back of the queue.
func (q *Queue[T]) Push(v T) error {
	return q.container.PushBack(v)
}

// Pop removes the front element.
func (q *Queue[T]) Pop() error {
	return q.container.PopFront()
}

// Front returns the front element.
func (q *Queue[T]) Front() (*T, error) {
	return q.container.Front()
}

// Back returns the back element.
func (q *Queue[T]) Back() (*T, error) {
	return q.container.Back()
}

// Size returns the number of elements.
func (q *Queue[T]) Size() uint {
	return q.container.Size()
}

// MaxSize returns the capacity.
func (q *Queue[T]) MaxSize() uint {
	return q.container.MaxSize()
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.container.Empty()
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.container.Clear()
}

// Swap exchanges the wrapped containers.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.container, other.container = other.container, q.container
}
