package containers

// Container is the operation set shared by both deque implementations. The
// adapters are generic over it, so a stack, queue or list can sit on either
// deque; the two differ only in the cost of front operations and in iterator
// invalidation.
type Container[T any] interface {
	PushBack(v T) error
	PopBack() error
	PushFront(v T) error
	PopFront() error
	Front() (*T, error)
	Back() (*T, error)
	At(i uint) *T
	Size() uint
	MaxSize() uint
	Empty() bool
	Full() bool
	Clear()
	Begin() Iterator[T]
	End() Iterator[T]
	Erase(it Iterator[T]) (Iterator[T], error)
}

var (
	_ Container[byte] = &Deque[byte]{}
	_ Container[byte] = &CircularDeque[byte]{}
)
