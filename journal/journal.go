package journal

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/outofforest/photon"

	"github.com/hexforge/avrmem/eeprom"
	"github.com/hexforge/avrmem/types"
)

const (
	generationLength = 2
	sumLength        = 8
)

// New creates a journal for one record of type T occupying the region
// [addr, addr+Length) in persistent memory.
//
// The memory primitives give no atomicity: a reset in the middle of a block
// write leaves a prefix stored. The journal layers torn-write resilience
// above them by keeping two checksummed slots and alternating between them,
// so the previous record survives a torn write of the new one.
func New[T comparable](dev *eeprom.Device, addr types.EEPROMAddress) Journal[T] {
	return Journal[T]{dev: dev, addr: addr}
}

// Journal is a two-slot checksummed record in persistent memory.
//
// Each slot holds a generation counter, the payload and an xxhash checksum
// of the two. Store writes the slot not holding the newest valid record;
// Load returns the newest slot whose checksum verifies.
type Journal[T comparable] struct {
	dev  *eeprom.Device
	addr types.EEPROMAddress
}

// SlotLength returns the number of bytes one slot of a T journal occupies.
func SlotLength[T comparable]() uint {
	var v T
	return generationLength + uint(len(photon.NewFromValue(&v).B)) + sumLength
}

// Length returns the number of bytes the whole journal occupies.
func (j Journal[T]) Length() uint {
	return 2 * SlotLength[T]()
}

// Load returns the newest valid record. The second result is false when
// neither slot verifies, which is the state of a never-written journal.
func (j Journal[T]) Load() (T, bool) {
	v0, g0, ok0 := j.loadSlot(0)
	v1, g1, ok1 := j.loadSlot(1)

	switch {
	case ok0 && ok1:
		if newer(g0, g1) {
			return v0, true
		}
		return v1, true
	case ok0:
		return v0, true
	case ok1:
		return v1, true
	default:
		var v T
		return v, false
	}
}

// Store persists the record into the slot not holding the newest valid one,
// with a generation one past the newest. The write goes through the update
// path, so storing an unchanged record into the same slot costs no wear.
func (j Journal[T]) Store(v T) {
	_, g0, ok0 := j.loadSlot(0)
	_, g1, ok1 := j.loadSlot(1)

	slot, generation := uint(0), uint16(1)
	switch {
	case ok0 && ok1:
		if newer(g0, g1) {
			slot, generation = 1, g0+1
		} else {
			slot, generation = 0, g1+1
		}
	case ok0:
		slot, generation = 1, g0+1
	case ok1:
		slot, generation = 0, g1+1
	}

	buf := make([]byte, SlotLength[T]())
	binary.LittleEndian.PutUint16(buf, generation)
	payload := photon.NewFromValue(&v).B
	copy(buf[generationLength:], payload)
	sum := xxhash.Sum64(buf[:generationLength+len(payload)])
	binary.LittleEndian.PutUint64(buf[generationLength+len(payload):], sum)

	j.dev.UpdateBlock(j.slotAddr(slot), buf)
}

func (j Journal[T]) slotAddr(slot uint) types.EEPROMAddress {
	return j.addr + types.EEPROMAddress(slot*SlotLength[T]())
}

func (j Journal[T]) loadSlot(slot uint) (T, uint16, bool) {
	var v T
	buf := make([]byte, SlotLength[T]())
	j.dev.ReadBlock(buf, j.slotAddr(slot))

	payloadEnd := len(buf) - sumLength
	sum := binary.LittleEndian.Uint64(buf[payloadEnd:])
	if sum != xxhash.Sum64(buf[:payloadEnd]) {
		return v, 0, false
	}

	generation := binary.LittleEndian.Uint16(buf)
	copy(photon.NewFromValue(&v).B, buf[generationLength:payloadEnd])
	return v, generation, true
}

// newer reports whether generation a is newer than b, treating the counter
// as wrapping.
func newer(a, b uint16) bool {
	return int16(a-b) > 0
}
