package progmem

import (
	"github.com/hexforge/avrmem/types"
)

// NewRef creates a reference to an object stored in program memory.
//
// There is no way to verify that the address identifies an object of the
// right type in the region; a reference built from a wrong address reads
// unspecified bytes.
func NewRef[T comparable](img *Image, addr types.FlashAddress) Ref[T] {
	return Ref[T]{img: img, addr: addr}
}

// Ref is a reference to an object stored in program memory. It stands in for
// an ordinary reference, which cannot exist for this region because the
// region is not reachable through ordinary loads. It owns nothing and is
// trivially copyable.
//
// Program memory is read-only, so a Ref has no store operation.
type Ref[T comparable] struct {
	img  *Image
	addr types.FlashAddress
}

// Load materializes a copy of the referred object in ordinary memory.
// Loading never mutates region state.
func (r Ref[T]) Load() T {
	return Read[T](r.img, r.addr)
}

// Address returns the raw address of the referred object.
func (r Ref[T]) Address() types.FlashAddress {
	return r.addr
}
