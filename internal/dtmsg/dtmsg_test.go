package dtmsg

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-h5t/native"
)

func TestDecodeInteger(t *testing.T) {
	// Version 1, class 0 (fixed-point), signed big-endian, size 4,
	// bit offset 0, precision 32.
	data := []byte{
		0x10, 0x09, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x20, 0x00,
	}

	m, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, native.Integer, m.Class)
	assert.Equal(t, uint8(1), m.Version)
	assert.Equal(t, uint32(4), m.Size)
	assert.Equal(t, native.OrderBE, m.Order())
	assert.Equal(t, native.Sgn2, m.Sign())

	prec, ok := m.Precision()
	require.True(t, ok)
	assert.Equal(t, uint16(32), prec)

	assert.Equal(t, data, m.Encode())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0x10, 0, 0, 0}},
		{"unknown class", []byte{0x1B, 0, 0, 0, 4, 0, 0, 0}},
		{"version zero", []byte{0x00, 0, 0, 0, 4, 0, 0, 0, 0, 0, 32, 0}},
		{"version five", []byte{0x50, 0, 0, 0, 4, 0, 0, 0, 0, 0, 32, 0}},
		{"integer props truncated", []byte{0x10, 0, 0, 0, 4, 0, 0, 0, 0, 0}},
		{"float props truncated", []byte{0x11, 0x20, 0x1F, 0, 4, 0, 0, 0, 0, 0, 32, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeCopiesProperties(t *testing.T) {
	data := Integer(2, native.OrderLE, false).Encode()
	m, err := Decode(data)
	require.NoError(t, err)

	data[HeaderSize+2] = 0xFF
	prec, _ := m.Precision()
	assert.Equal(t, uint16(16), prec)
}

func TestIntegerBits(t *testing.T) {
	tests := []struct {
		name   string
		order  native.Order
		signed bool
		bits   uint32
	}{
		{"u8le", native.OrderLE, false, 0x00},
		{"i8le", native.OrderLE, true, 0x08},
		{"u32be", native.OrderBE, false, 0x01},
		{"i64be", native.OrderBE, true, 0x09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Integer(4, tt.order, tt.signed)
			assert.Equal(t, tt.bits, m.Bits)
			assert.Equal(t, tt.order, m.Order())
			if tt.signed {
				assert.Equal(t, native.Sgn2, m.Sign())
			} else {
				assert.Equal(t, native.SgnNone, m.Sign())
			}
		})
	}
}

func TestIntegerPadding(t *testing.T) {
	m := Integer(4, native.OrderLE, true)
	m.Bits |= bitLowPad

	lsb, msb := m.Pad()
	assert.Equal(t, native.PadOne, lsb)
	assert.Equal(t, native.PadZero, msb)

	m.Bits |= bitHighPad
	_, msb = m.Pad()
	assert.Equal(t, native.PadOne, msb)
}

func TestFloatProperties(t *testing.T) {
	m, err := Float(4, native.OrderLE)
	require.NoError(t, err)

	assert.Equal(t, native.Float, m.Class)
	assert.Equal(t, native.OrderLE, m.Order())
	assert.Equal(t, native.NormImplied, m.Norm())
	assert.Equal(t, native.SgnError, m.Sign())
	assert.Equal(t, uint32(31), (m.Bits>>8)&0xFF, "sign location")

	require.Len(t, m.Props, 12)
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(m.Props[2:4]))
	assert.Equal(t, uint8(23), m.Props[4])
	assert.Equal(t, uint8(8), m.Props[5])
	assert.Equal(t, uint8(23), m.Props[7])
	assert.Equal(t, uint32(127), binary.LittleEndian.Uint32(m.Props[8:12]))

	d, err := Float(8, native.OrderVAX)
	require.NoError(t, err)
	assert.Equal(t, native.OrderVAX, d.Order())
	assert.Equal(t, uint32(1023), binary.LittleEndian.Uint32(d.Props[8:12]))

	_, err = Float(3, native.OrderLE)
	assert.Error(t, err)
	_, err = Float(4, native.OrderMixed)
	assert.Error(t, err)
}

func TestFloatNormalization(t *testing.T) {
	tests := []struct {
		disk uint32
		want native.Norm
	}{
		{diskNormNone, native.NormNone},
		{diskNormMSBSet, native.NormMSBSet},
		{diskNormImplied, native.NormImplied},
		{3, native.NormError},
	}

	for _, tt := range tests {
		m, err := Float(4, native.OrderLE)
		require.NoError(t, err)
		m.Bits = m.Bits&^(normMask<<normShift) | tt.disk<<normShift
		assert.Equal(t, tt.want, m.Norm(), "disk code %d", tt.disk)
	}
}

func TestStringProperties(t *testing.T) {
	m := String(10, native.StrNullPad, native.CsetUTF8)

	assert.Equal(t, native.CsetUTF8, m.Cset())
	assert.Equal(t, native.StrNullPad, m.StrPad())
	assert.Equal(t, native.OrderNone, m.Order())
	assert.Equal(t, native.SgnError, m.Sign())
	assert.Equal(t, native.NormError, m.Norm())

	lsb, msb := m.Pad()
	assert.Equal(t, native.PadError, lsb)
	assert.Equal(t, native.PadError, msb)

	_, ok := m.Precision()
	assert.False(t, ok)
}

func TestVarString(t *testing.T) {
	m := VarString(native.StrSpacePad, native.CsetUTF8)
	require.True(t, m.IsVarString())
	assert.Equal(t, native.CsetUTF8, m.Cset())
	assert.Equal(t, native.StrSpacePad, m.StrPad())

	decoded, err := Decode(m.Encode())
	require.NoError(t, err)
	assert.True(t, decoded.IsVarString())

	base, err := Decode(decoded.Props)
	require.NoError(t, err)
	assert.Equal(t, native.Integer, base.Class)
	assert.Equal(t, uint32(1), base.Size)
}

func TestNonStringHasNoCharacterSet(t *testing.T) {
	seq := &Message{Class: native.Vlen, Version: 1, Bits: 0}
	assert.False(t, seq.IsVarString())
	assert.Equal(t, native.CsetError, seq.Cset())
	assert.Equal(t, native.StrError, seq.StrPad())
}

func TestEnumOrderFollowsBase(t *testing.T) {
	base := Integer(2, native.OrderBE, false)
	m := &Message{Class: native.Enum, Version: 1, Size: 2, Props: base.Encode()}
	assert.Equal(t, native.OrderBE, m.Order())

	broken := &Message{Class: native.Enum, Version: 1, Size: 2, Props: []byte{0x10}}
	assert.Equal(t, native.OrderError, broken.Order())
}

func TestCompoundHasNoOrder(t *testing.T) {
	m := &Message{Class: native.Compound, Version: 3, Size: 8}
	assert.Equal(t, native.OrderNone, m.Order())
}

func TestClone(t *testing.T) {
	m := Integer(4, native.OrderLE, true)
	c := m.Clone()
	c.Props[2] = 0
	c.Bits = 0

	prec, _ := m.Precision()
	assert.Equal(t, uint16(32), prec)
	assert.Equal(t, native.Sgn2, m.Sign())
}
