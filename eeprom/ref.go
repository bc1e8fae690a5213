package eeprom

import (
	"github.com/hexforge/avrmem/types"
)

// NewRef creates a reference to an object stored in persistent memory.
//
// There is no way to verify that the address identifies an object of the
// right type in the region; that is an unchecked precondition.
func NewRef[T comparable](d *Device, addr types.EEPROMAddress) Ref[T] {
	return Ref[T]{dev: d, addr: addr}
}

// Ref is a reference to an object stored in persistent memory. Unlike its
// program memory counterpart it is writable: Store performs a
// wear-minimizing update of the referred object.
type Ref[T comparable] struct {
	dev  *Device
	addr types.EEPROMAddress
}

// Load materializes a copy of the referred object in ordinary memory.
// Loading never mutates region state.
func (r Ref[T]) Load() T {
	return Read[T](r.dev, r.addr)
}

// Store writes the value through the update path, so unchanged bytes consume
// no wear budget. The call blocks until changed cells commit, which is slow.
func (r Ref[T]) Store(v T) {
	Update(r.dev, r.addr, v)
}

// Address returns the raw address of the referred object.
func (r Ref[T]) Address() types.EEPROMAddress {
	return r.addr
}
