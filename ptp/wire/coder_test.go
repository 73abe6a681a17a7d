/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package wire_test

import (
	"testing"

	"github.com/openptp/ptpmgmt/ptp/wire"
	"github.com/stretchr/testify/assert"
)

func TestWriterPrimitives(t *testing.T) {
	w := wire.NewWriter()
	u8 := uint8(0xAB)
	assert.NoError(t, w.U8(&u8))
	u16 := uint16(0x1234)
	assert.NoError(t, w.U16(&u16))
	u32 := uint32(0xDEADBEEF)
	assert.NoError(t, w.U32(&u32))
	i8 := int8(-2)
	assert.NoError(t, w.I8(&i8))
	i16 := int16(-3)
	assert.NoError(t, w.I16(&i16))
	i32 := int32(-4)
	assert.NoError(t, w.I32(&i32))
	u64 := uint64(0x0102030405060708)
	assert.NoError(t, w.U64(&u64))

	assert.Equal(t, []byte{
		0xAB,
		0x12, 0x34,
		0xDE, 0xAD, 0xBE, 0xEF,
		0xFE,
		0xFF, 0xFD,
		0xFF, 0xFF, 0xFF, 0xFC,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}, w.Wire())
	assert.Equal(t, 22, w.Pos())
	assert.True(t, w.Building())
}

func TestReaderPrimitives(t *testing.T) {
	r := wire.NewReader([]byte{
		0xAB,
		0x12, 0x34,
		0xDE, 0xAD, 0xBE, 0xEF,
		0xFE,
		0xFF, 0xFD,
		0xFF, 0xFF, 0xFF, 0xFC,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})
	assert.False(t, r.Building())

	var u8 uint8
	assert.NoError(t, r.U8(&u8))
	assert.Equal(t, uint8(0xAB), u8)
	var u16 uint16
	assert.NoError(t, r.U16(&u16))
	assert.Equal(t, uint16(0x1234), u16)
	var u32 uint32
	assert.NoError(t, r.U32(&u32))
	assert.Equal(t, uint32(0xDEADBEEF), u32)
	var i8 int8
	assert.NoError(t, r.I8(&i8))
	assert.Equal(t, int8(-2), i8)
	var i16 int16
	assert.NoError(t, r.I16(&i16))
	assert.Equal(t, int16(-3), i16)
	var i32 int32
	assert.NoError(t, r.I32(&i32))
	assert.Equal(t, int32(-4), i32)
	var u64 uint64
	assert.NoError(t, r.U64(&u64))
	assert.Equal(t, uint64(0x0102030405060708), u64)
	assert.Equal(t, 0, r.Remaining())

	assert.ErrorIs(t, r.U8(&u8), wire.ErrBufferTooShort)
}

func Test48Bit(t *testing.T) {
	w := wire.NewWriter()
	u48 := uint64(wire.Uint48Max)
	assert.NoError(t, w.U48(&u48))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, w.Wire())

	r := wire.NewReader(w.Wire())
	var got uint64
	assert.NoError(t, r.U48(&got))
	assert.Equal(t, uint64(wire.Uint48Max), got)

	// One past the 48-bit range is rejected on build.
	over := uint64(wire.Uint48Max) + 1
	assert.ErrorIs(t, wire.NewWriter().U48(&over), wire.ErrOutOfRange)
}

func Test48BitSigned(t *testing.T) {
	w := wire.NewWriter()
	neg := int64(-1)
	assert.NoError(t, w.I48(&neg))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, w.Wire())

	var got int64
	assert.NoError(t, wire.NewReader(w.Wire()).I48(&got))
	assert.Equal(t, int64(-1), got)

	min := int64(wire.Int48Min)
	w = wire.NewWriter()
	assert.NoError(t, w.I48(&min))
	assert.Equal(t, []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00}, w.Wire())
	assert.NoError(t, wire.NewReader(w.Wire()).I48(&got))
	assert.Equal(t, int64(wire.Int48Min), got)

	under := int64(wire.Int48Min) - 1
	assert.ErrorIs(t, wire.NewWriter().I48(&under), wire.ErrOutOfRange)
	over := int64(wire.Int48Max) + 1
	assert.ErrorIs(t, wire.NewWriter().I48(&over), wire.ErrOutOfRange)
}

func TestLittleEndianEscape(t *testing.T) {
	w := wire.NewWriter()
	v := uint64(0x0102030405060708)
	assert.NoError(t, w.U64LE(&v))
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, w.Wire())

	var got uint64
	assert.NoError(t, wire.NewReader(w.Wire()).U64LE(&got))
	assert.Equal(t, v, got)
}

func TestWriterCapacity(t *testing.T) {
	w := wire.NewWriterCap(3)
	u16 := uint16(0x1234)
	assert.NoError(t, w.U16(&u16))
	assert.Equal(t, 1, w.Remaining())
	assert.ErrorIs(t, w.U16(&u16), wire.ErrCapacity)
	// The failed write appends nothing.
	assert.Equal(t, 2, w.Pos())
}

func TestBackfill(t *testing.T) {
	w := wire.NewWriter()
	var hole uint16
	assert.NoError(t, w.U16(&hole))
	u8 := uint8(0x55)
	assert.NoError(t, w.U8(&u8))
	w.PutU16At(0, 0xBEEF)
	assert.Equal(t, []byte{0xBE, 0xEF, 0x55}, w.Wire())
}

func TestReaderSkipAndBytes(t *testing.T) {
	r := wire.NewReader([]byte{1, 2, 3, 4, 5})
	assert.NoError(t, r.Skip(2))
	buf := make([]byte, 2)
	assert.NoError(t, r.Bytes(buf))
	assert.Equal(t, []byte{3, 4}, buf)
	assert.Equal(t, 1, r.Remaining())
	assert.Equal(t, 4, r.Pos())
	assert.ErrorIs(t, r.Skip(2), wire.ErrBufferTooShort)
}
