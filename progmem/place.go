package progmem

import (
	"encoding/binary"

	"github.com/outofforest/photon"

	"github.com/hexforge/avrmem/types"
)

// Place stores a value in the image and returns a reference to it.
// The value type must be trivially copyable. The value's in-memory
// representation is stored as-is, so it always round-trips through Read, but
// multi-byte fields line up with the width-native primitives only on hosts
// sharing the region's little-endian byte order.
func Place[T comparable](img *Image, v T) Ref[T] {
	return NewRef[T](img, img.place(photon.NewFromValue(&v).B))
}

// PlaceSlice stores a contiguous run of values and returns an array handle
// over it.
func PlaceSlice[T comparable](img *Image, vs ...T) Array[T] {
	addr := img.alloc(uint(len(vs)) * uint(size[T]()))
	a := addr
	for i := range vs {
		copy(img.data[a:], photon.NewFromValue(&vs[i]).B)
		a += size[T]()
	}
	return NewArray[T](img, addr, uint(len(vs)))
}

// PlaceString stores the characters of s followed by a NUL terminator and
// returns a length-prefixed string handle. The stored length includes the
// terminator, so iteration yields it as the final element; callers wanting a
// terminator-free length must subtract one.
func PlaceString(img *Image, s string) String {
	addr := img.alloc(uint(len(s)) + 1)
	copy(img.data[addr:], s)
	img.data[int(addr)+len(s)] = 0
	return NewString(img, addr, uint(len(s))+1)
}

// PlaceAddress stores a pointer value. It is read back through ReadPointer.
func PlaceAddress(img *Image, target types.FlashAddress) types.FlashAddress {
	var b [types.PointerLength]byte
	binary.LittleEndian.PutUint16(b[:], uint16(target))
	return img.place(b[:])
}

// size returns the number of bytes a stored T occupies.
func size[T comparable]() types.FlashAddress {
	var v T
	return types.FlashAddress(len(photon.NewFromValue(&v).B))
}
