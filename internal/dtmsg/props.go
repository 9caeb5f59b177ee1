package dtmsg

import (
	"encoding/binary"
	"fmt"

	"github.com/robert-malhotra/go-h5t/native"
)

// Class bit field layout, per datatype class:
//
//	integer, bitfield: bit 0 byte order, bit 1 low pad, bit 2 high pad,
//	                   bit 3 signed (integer only)
//	float:             bits 0 and 6 byte order, bit 1 low pad, bit 2 high
//	                   pad, bit 3 internal pad, bits 4-5 normalization,
//	                   bits 8-15 sign location
//	time:              bit 0 byte order
//	string:            bits 0-3 padding, bits 4-7 character set
//	vlen:              bits 0-3 type, bits 4-7 padding, bits 8-11 charset
const (
	bitOrder   = 1 << 0
	bitLowPad  = 1 << 1
	bitHighPad = 1 << 2
	bitSigned  = 1 << 3
	bitVAX     = 1 << 6

	normShift = 4
	normMask  = 0x3

	vlenString = 1
)

// On-disk mantissa normalization codes.
const (
	diskNormNone    = 0
	diskNormMSBSet  = 1
	diskNormImplied = 2
)

// Order returns the byte order. Classes without a byte order report
// OrderNone; an enum reports the order of its base type.
func (m *Message) Order() native.Order {
	switch m.Class {
	case native.Integer, native.Bitfield, native.Time:
		if m.Bits&bitOrder != 0 {
			return native.OrderBE
		}
		return native.OrderLE
	case native.Float:
		switch m.Bits & (bitOrder | bitVAX) {
		case 0:
			return native.OrderLE
		case bitOrder:
			return native.OrderBE
		case bitOrder | bitVAX:
			return native.OrderVAX
		default:
			return native.OrderError
		}
	case native.Enum:
		base, err := Decode(m.Props)
		if err != nil {
			return native.OrderError
		}
		return base.Order()
	default:
		return native.OrderNone
	}
}

// Sign returns the sign convention of an integer type.
func (m *Message) Sign() native.Sign {
	if m.Class != native.Integer {
		return native.SgnError
	}
	if m.Bits&bitSigned != 0 {
		return native.Sgn2
	}
	return native.SgnNone
}

// Norm returns the mantissa normalization of a float type.
func (m *Message) Norm() native.Norm {
	if m.Class != native.Float {
		return native.NormError
	}
	switch (m.Bits >> normShift) & normMask {
	case diskNormNone:
		return native.NormNone
	case diskNormMSBSet:
		return native.NormMSBSet
	case diskNormImplied:
		return native.NormImplied
	default:
		return native.NormError
	}
}

// IsVarString reports whether m is a variable-length string.
func (m *Message) IsVarString() bool {
	return m.Class == native.Vlen && m.Bits&0x0F == vlenString
}

// Cset returns the character set of a fixed or variable-length string.
func (m *Message) Cset() native.Cset {
	switch {
	case m.Class == native.String:
		return native.Cset((m.Bits >> 4) & 0x0F)
	case m.IsVarString():
		return native.Cset((m.Bits >> 8) & 0x0F)
	default:
		return native.CsetError
	}
}

// StrPad returns the padding of a fixed or variable-length string.
func (m *Message) StrPad() native.Str {
	switch {
	case m.Class == native.String:
		return native.Str(m.Bits & 0x0F)
	case m.IsVarString():
		return native.Str((m.Bits >> 4) & 0x0F)
	default:
		return native.StrError
	}
}

// Pad returns the low and high bit padding of an integer, float or
// bitfield type.
func (m *Message) Pad() (lsb, msb native.Pad) {
	switch m.Class {
	case native.Integer, native.Float, native.Bitfield:
	default:
		return native.PadError, native.PadError
	}
	lsb, msb = native.PadZero, native.PadZero
	if m.Bits&bitLowPad != 0 {
		lsb = native.PadOne
	}
	if m.Bits&bitHighPad != 0 {
		msb = native.PadOne
	}
	return lsb, msb
}

// Precision returns the bit precision of an integer, bitfield or float type.
func (m *Message) Precision() (uint16, bool) {
	switch m.Class {
	case native.Integer, native.Bitfield, native.Float:
		return binary.LittleEndian.Uint16(m.Props[2:4]), true
	case native.Time:
		return binary.LittleEndian.Uint16(m.Props[0:2]), true
	}
	return 0, false
}

// Integer builds a fixed-point datatype message with full precision.
func Integer(size uint32, order native.Order, signed bool) *Message {
	m := &Message{Class: native.Integer, Version: 1, Size: size, Props: make([]byte, 4)}
	if order == native.OrderBE {
		m.Bits |= bitOrder
	}
	if signed {
		m.Bits |= bitSigned
	}
	binary.LittleEndian.PutUint16(m.Props[2:4], uint16(size*8))
	return m
}

// Float builds an IEEE 754 datatype message of 2, 4 or 8 bytes.
func Float(size uint32, order native.Order) (*Message, error) {
	var expLoc, expSize, mantSize uint8
	var bias uint32
	switch size {
	case 2:
		expLoc, expSize, mantSize, bias = 10, 5, 10, 15
	case 4:
		expLoc, expSize, mantSize, bias = 23, 8, 23, 127
	case 8:
		expLoc, expSize, mantSize, bias = 52, 11, 52, 1023
	default:
		return nil, fmt.Errorf("unsupported float size: %d", size)
	}

	m := &Message{Class: native.Float, Version: 1, Size: size, Props: make([]byte, 12)}
	switch order {
	case native.OrderLE:
	case native.OrderBE:
		m.Bits |= bitOrder
	case native.OrderVAX:
		m.Bits |= bitOrder | bitVAX
	default:
		return nil, fmt.Errorf("float byte order must be le, be or vax, got %d", order)
	}
	m.Bits |= diskNormImplied << normShift
	m.Bits |= (size*8 - 1) << 8 // sign location

	binary.LittleEndian.PutUint16(m.Props[0:2], 0)
	binary.LittleEndian.PutUint16(m.Props[2:4], uint16(size*8))
	m.Props[4] = expLoc
	m.Props[5] = expSize
	m.Props[6] = 0 // mantissa location
	m.Props[7] = mantSize
	binary.LittleEndian.PutUint32(m.Props[8:12], bias)
	return m, nil
}

// String builds a fixed-length string datatype message.
func String(size uint32, pad native.Str, cset native.Cset) *Message {
	return &Message{
		Class:   native.String,
		Version: 1,
		Size:    size,
		Bits:    uint32(pad)&0x0F | (uint32(cset)&0x0F)<<4,
	}
}

// VarString builds a variable-length string datatype message whose base
// type is a one-byte character.
func VarString(pad native.Str, cset native.Cset) *Message {
	base := Integer(1, native.OrderLE, false)
	return &Message{
		Class:   native.Vlen,
		Version: 1,
		Size:    16, // length (4) + global heap ID (8 + 4)
		Bits:    vlenString | (uint32(pad)&0x0F)<<4 | (uint32(cset)&0x0F)<<8,
		Props:   base.Encode(),
	}
}
