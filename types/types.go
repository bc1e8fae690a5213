package types

const (
	// PointerLength is the number of bytes taken by a pointer stored on the
	// target. The target is an 8-bit MCU with a 16-bit address bus, so stored
	// pointers are narrower than its widest scalar.
	PointerLength = 2

	// WordLength is the number of bytes taken by a word.
	WordLength = 2

	// DwordLength is the number of bytes taken by a double word.
	DwordLength = 4

	// FlashLength is the size of the program memory region.
	FlashLength = 32 * 1024

	// EEPROMLength is the size of the persistent memory region.
	EEPROMLength = 1024
)

type (
	// FlashAddress represents the address of a byte in program memory.
	// Program memory is fixed at programming time and is not reachable
	// through ordinary loads on the target, only through dedicated read
	// primitives.
	FlashAddress uint16

	// EEPROMAddress represents the address of a byte in persistent memory.
	// Persistent memory is byte-addressable and runtime-writable, with slow
	// writes and a bounded number of write cycles per cell.
	EEPROMAddress uint16
)
