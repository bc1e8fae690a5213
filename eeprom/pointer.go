package eeprom

import (
	"github.com/hexforge/avrmem/types"
)

// NewPtr creates a pointer to an object stored in persistent memory.
func NewPtr[T comparable](d *Device, addr types.EEPROMAddress) Ptr[T] {
	return Ptr[T]{dev: d, addr: addr}
}

// Ptr is a pointer to an object stored in persistent memory. It carries the
// same state as a Ref plus pointer arithmetic, and serves as the iterator
// over contiguous runs in the region. The zero value is the null pointer.
// Pointers compare with ==.
//
// Arithmetic is meaningful only while the pointer stays inside a common
// array; one-past-the-end is allowed but not dereferenceable.
type Ptr[T comparable] struct {
	dev  *Device
	addr types.EEPROMAddress
}

// Deref returns a reference to the pointed-to object. It does not touch the
// region; reads and writes happen through the reference.
func (p Ptr[T]) Deref() Ref[T] {
	return Ref[T]{dev: p.dev, addr: p.addr}
}

// IsNull reports whether the pointer is null.
func (p Ptr[T]) IsNull() bool {
	return p == Ptr[T]{}
}

// Next returns the pointer advanced by one element.
func (p Ptr[T]) Next() Ptr[T] {
	p.addr += size[T]()
	return p
}

// Prev returns the pointer retreated by one element.
func (p Ptr[T]) Prev() Ptr[T] {
	p.addr -= size[T]()
	return p
}

// Add returns the pointer advanced by offset elements. Offset may be
// negative.
func (p Ptr[T]) Add(offset int) Ptr[T] {
	p.addr = types.EEPROMAddress(int(p.addr) + offset*int(size[T]()))
	return p
}

// Diff returns the number of elements between p and other. Both pointers
// must lie within a common array.
func (p Ptr[T]) Diff(other Ptr[T]) int {
	return (int(p.addr) - int(other.addr)) / int(size[T]())
}

// Address returns the raw address held by the pointer.
func (p Ptr[T]) Address() types.EEPROMAddress {
	return p.addr
}
