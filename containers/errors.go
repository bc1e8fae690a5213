package containers

import "github.com/pkg/errors"

var (
	// ErrFull is returned when an insertion hits a full container.
	ErrFull = errors.New("container is full")

	// ErrEmpty is returned when a removal or element access hits an empty
	// container.
	ErrEmpty = errors.New("container is empty")

	// ErrInvalidIterator is returned when an operation receives an iterator
	// it cannot act on, such as erasing the one-past-the-end iterator.
	ErrInvalidIterator = errors.New("invalid iterator")
)
