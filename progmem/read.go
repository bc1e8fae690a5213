package progmem

import (
	"encoding/binary"
	"math"

	"github.com/outofforest/photon"

	"github.com/hexforge/avrmem/types"
)

// The width-native primitives mirror the read instructions the target
// exposes. They are an optimization for callers that name the exact scalar
// type; the byte and block primitives are always sufficient for correctness.
//
// None of the primitives report failure. An address outside the image yields
// zero bytes; verifying that an address is meaningful is the caller's
// responsibility.

// ReadByte reads a single byte.
func (img *Image) ReadByte(addr types.FlashAddress) byte {
	if uint(addr) >= uint(len(img.data)) {
		return 0
	}
	return img.data[addr]
}

// ReadWord reads a 16-bit scalar.
func (img *Image) ReadWord(addr types.FlashAddress) uint16 {
	var b [types.WordLength]byte
	img.CopyBlock(b[:], addr)
	return binary.LittleEndian.Uint16(b[:])
}

// ReadDword reads a 32-bit scalar.
func (img *Image) ReadDword(addr types.FlashAddress) uint32 {
	var b [types.DwordLength]byte
	img.CopyBlock(b[:], addr)
	return binary.LittleEndian.Uint32(b[:])
}

// ReadFloat reads a 32-bit float.
func (img *Image) ReadFloat(addr types.FlashAddress) float32 {
	return math.Float32frombits(img.ReadDword(addr))
}

// ReadPointer reads a stored pointer. Pointers on the target are
// types.PointerLength bytes, which differs from its widest scalar.
func (img *Image) ReadPointer(addr types.FlashAddress) types.FlashAddress {
	var b [types.PointerLength]byte
	img.CopyBlock(b[:], addr)
	return types.FlashAddress(binary.LittleEndian.Uint16(b[:]))
}

// CopyBlock copies len(dst) bytes out of the image into ordinary memory.
func (img *Image) CopyBlock(dst []byte, addr types.FlashAddress) {
	if uint(addr) >= uint(len(img.data)) {
		clear(dst)
		return
	}
	n := copy(dst, img.data[addr:])
	clear(dst[n:])
}

// Read materializes a copy of the object stored at addr. The object type
// must be trivially copyable. Single-byte objects go through the byte
// primitive, everything else through a block copy.
func Read[T comparable](img *Image, addr types.FlashAddress) T {
	var v T
	b := photon.NewFromValue(&v).B
	if len(b) == 1 {
		b[0] = img.ReadByte(addr)
		return v
	}
	img.CopyBlock(b, addr)
	return v
}
