// Package dtmsg decodes and encodes HDF5 datatype messages and exposes
// their class bit fields as native enumerator values.
package dtmsg

import (
	"encoding/binary"
	"fmt"

	"github.com/robert-malhotra/go-h5t/native"
)

// HeaderSize is the fixed prefix of every datatype message.
const HeaderSize = 8

// Message is a datatype message (object header message type 0x0003).
type Message struct {
	Class   native.Class
	Version uint8
	Bits    uint32 // class-specific bit field, 24 bits
	Size    uint32
	Props   []byte
}

// Decode parses a datatype message. Properties are kept verbatim.
func Decode(data []byte) (*Message, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("datatype message too short: %d bytes", len(data))
	}

	classAndVersion := data[0]
	class := native.Class(classAndVersion & 0x0F)
	version := classAndVersion >> 4

	if class < native.Integer || class > native.Array {
		return nil, fmt.Errorf("unknown datatype class: %d", class)
	}
	if version < 1 || version > 4 {
		return nil, fmt.Errorf("unsupported datatype message version: %d", version)
	}

	m := &Message{
		Class:   class,
		Version: version,
		Bits:    uint32(data[1]) | uint32(data[2])<<8 | uint32(data[3])<<16,
		Size:    binary.LittleEndian.Uint32(data[4:8]),
	}

	props := data[HeaderSize:]
	if need := fixedPropsSize(class); len(props) < need {
		return nil, fmt.Errorf("%s datatype properties truncated: have %d, need %d",
			className(class), len(props), need)
	}
	m.Props = append([]byte(nil), props...)

	return m, nil
}

// Encode serializes the message.
func (m *Message) Encode() []byte {
	buf := make([]byte, HeaderSize+len(m.Props))
	buf[0] = uint8(m.Class)&0x0F | m.Version<<4
	buf[1] = uint8(m.Bits)
	buf[2] = uint8(m.Bits >> 8)
	buf[3] = uint8(m.Bits >> 16)
	binary.LittleEndian.PutUint32(buf[4:8], m.Size)
	copy(buf[HeaderSize:], m.Props)
	return buf
}

// Clone returns a deep copy of m.
func (m *Message) Clone() *Message {
	c := *m
	c.Props = append([]byte(nil), m.Props...)
	return &c
}

// fixedPropsSize is the minimum property length for classes whose
// properties have a fixed layout.
func fixedPropsSize(class native.Class) int {
	switch class {
	case native.Integer, native.Bitfield:
		return 4 // bit offset (2) + bit precision (2)
	case native.Float:
		return 12 // offset, precision, exp loc/size, mant loc/size, exp bias
	case native.Time:
		return 2 // bit precision
	default:
		return 0
	}
}

func className(class native.Class) string {
	switch class {
	case native.Integer:
		return "integer"
	case native.Float:
		return "float"
	case native.Time:
		return "time"
	case native.String:
		return "string"
	case native.Bitfield:
		return "bitfield"
	case native.Opaque:
		return "opaque"
	case native.Compound:
		return "compound"
	case native.Reference:
		return "reference"
	case native.Enum:
		return "enum"
	case native.Vlen:
		return "vlen"
	case native.Array:
		return "array"
	default:
		return "unknown"
	}
}
