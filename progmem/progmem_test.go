package progmem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexforge/avrmem/progmem"
	"github.com/hexforge/avrmem/types"
)

func newImage(t *testing.T) *progmem.Image {
	img, err := progmem.NewImage(1024)
	require.NoError(t, err)
	return img
}

func TestImageLength(t *testing.T) {
	requireT := require.New(t)

	img := newImage(t)
	requireT.Equal(uint(1024), img.Length())

	_, err := progmem.NewImage(types.FlashLength + 1)
	requireT.Error(err)
}

func TestReadPrimitives(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	bRef := progmem.Place[byte](img, 0xA5)
	wRef := progmem.Place[uint16](img, 0xBEEF)
	dRef := progmem.Place[uint32](img, 0xDEADBEEF)
	fRef := progmem.Place[float32](img, 3.5)
	img.Seal()

	requireT.Equal(byte(0xA5), img.ReadByte(bRef.Address()))
	requireT.Equal(uint16(0xBEEF), img.ReadWord(wRef.Address()))
	requireT.Equal(uint32(0xDEADBEEF), img.ReadDword(dRef.Address()))
	requireT.Equal(float32(3.5), img.ReadFloat(fRef.Address()))
}

func TestReadMaterializesStruct(t *testing.T) {
	type sprite struct {
		X, Y  int8
		Frame uint16
	}

	requireT := require.New(t)
	img := newImage(t)

	want := sprite{X: -3, Y: 7, Frame: 260}
	ref := progmem.Place(img, want)
	img.Seal()

	requireT.Equal(want, ref.Load())
	requireT.Equal(want, progmem.Read[sprite](img, ref.Address()))
}

func TestReadEnumByte(t *testing.T) {
	type state byte
	const (
		stateA state = iota
		stateB
		stateC
	)

	requireT := require.New(t)
	img := newImage(t)

	ref := progmem.Place(img, stateB)
	img.Seal()

	// The read goes through the byte-copy primitive into an ordinary
	// variable; the stored value is untouched.
	got := progmem.Read[state](img, ref.Address())
	requireT.Equal(stateB, got)
	requireT.Equal(byte(1), img.ReadByte(ref.Address()))
}

func TestStoredPointer(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	str := progmem.PlaceString(img, "Hello world")
	ptrAddr := progmem.PlaceAddress(img, str.Begin().Address())
	img.Seal()

	target := img.ReadPointer(ptrAddr)
	requireT.Equal(str.Begin().Address(), target)
	requireT.Equal("Hello world", progmem.NewNullString(img, target).Load())
}

func TestPointerArithmetic(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	arr := progmem.PlaceSlice[uint16](img, 10, 20, 30, 40)
	img.Seal()

	p := arr.Data()
	requireT.Equal(p, p.Next().Prev())
	requireT.Equal(3, p.Add(3).Diff(p))
	requireT.Equal(uint16(30), p.Add(2).Deref().Load())

	requireT.False(p.IsNull())
	var null progmem.Ptr[uint16]
	requireT.True(null.IsNull())
	requireT.NotEqual(null, p)
}

func TestArrayHandle(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	arr := progmem.PlaceSlice[byte](img, 'a', 'b', 'c')
	img.Seal()

	requireT.Equal(uint(3), arr.Size())
	requireT.Equal(arr.Size(), arr.MaxSize())
	requireT.False(arr.Empty())

	requireT.Equal(byte('a'), arr.Front().Load())
	requireT.Equal(byte('c'), arr.Back().Load())
	requireT.Equal(byte('b'), arr.At(1).Load())

	var got []byte
	for p := arr.Begin(); p != arr.End(); p = p.Next() {
		got = append(got, p.Deref().Load())
	}
	requireT.Equal([]byte("abc"), got)

	empty := progmem.NewArray[byte](img, 0, 0)
	requireT.True(empty.Empty())
	requireT.Equal(empty.Begin(), empty.End())
}

func TestLengthPrefixedString(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	str := progmem.PlaceString(img, "Hello world")
	img.Seal()

	// The length counts the terminator, so iteration yields it as the final
	// character.
	requireT.Equal(uint(12), str.Size())

	var got []byte
	for p := str.Begin(); p != str.End(); p = p.Next() {
		got = append(got, p.Deref().Load())
	}
	requireT.Equal([]byte("Hello world\x00"), got)
	requireT.Equal(byte(0), str.At(11))
	requireT.Equal("Hello world\x00", str.Load())
}

func TestNullTerminatedString(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	str := progmem.PlaceString(img, "Hello world").NullTerminated()
	img.Seal()

	// Size scans to the terminator and does not count it.
	requireT.Equal(uint(11), str.Size())
	requireT.Equal("Hello world", str.Load())
	requireT.Equal(11, str.End().Diff(str.Begin()))
}

func TestStringEqualityComparesAddresses(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)

	s1 := progmem.PlaceString(img, "same")
	s2 := progmem.PlaceString(img, "same")
	img.Seal()

	// Equality is O(1): address and length, never content.
	requireT.NotEqual(s1, s2)
	requireT.Equal(s1, progmem.NewString(img, s1.Begin().Address(), s1.Size()))
	requireT.NotEqual(s1.NullTerminated(), s2.NullTerminated())
}

func TestSealedImagePanicsOnPlacement(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)
	img.Seal()

	requireT.Panics(func() {
		progmem.Place[byte](img, 1)
	})
}

func TestOutOfImageReadsYieldZero(t *testing.T) {
	requireT := require.New(t)
	img := newImage(t)
	img.Seal()

	requireT.Equal(byte(0), img.ReadByte(2000))
	requireT.Equal(uint16(0), img.ReadWord(2000))
}
