package containers

// NewStack creates a stack over the given container.
func NewStack[T any](c Container[T]) *Stack[T] {
	return &Stack[T]{container: c}
}

// NewDequeStack creates a stack over a fresh linear deque of the given
// capacity. The stack only touches the back, so the linear deque's cheap end
// is the one it uses.
func NewDequeStack[T any](capacity uint) *Stack[T] {
	return NewStack[T](NewDeque[T](capacity))
}

// Stack is a LIFO façade over a deque. It restricts the API; it adds no
// behavior and owns no storage beyond the wrapped container.
type Stack[T any] struct {
	container Container[T]
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	return s.container.PushBack(v)
}

// Pop removes the top element.
func (s *Stack[T]) Pop() error {
	return s.container.PopBack()
}

// Top returns the top element.
func (s *Stack[T]) Top() (*T, error) {
	return s.container.Back()
}

// Size returns the number of elements.
func (s *Stack[T]) Size() uint {
	return s.container.Size()
}

// MaxSize returns the capacity.
func (s *Stack[T]) MaxSize() uint {
	return s.container.MaxSize()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.container.Empty()
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.container.Clear()
}

// Swap exchanges the wrapped containers.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.container, other.container = other.container, s.container
}
