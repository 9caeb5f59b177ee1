package h5t

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/robert-malhotra/go-h5t/internal/dtmsg"
	"github.com/robert-malhotra/go-h5t/internal/ident"
	"github.com/robert-malhotra/go-h5t/native"
)

// hostOrder is the byte order of the machine we run on.
var hostOrder = func() native.Order {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return native.OrderLE
	}
	return native.OrderBE
}()

var (
	integerSizes = []uint32{1, 2, 4, 8}
	floatSizes   = []uint32{4, 8}
)

// GoType returns the Go type that holds one element of dt.
func (dt *Datatype) GoType() (reflect.Type, error) {
	msg, err := dt.message()
	if err != nil {
		return nil, err
	}

	switch msg.Class {
	case native.Integer:
		return goTypeInteger(msg.Size, msg.Sign() == native.Sgn2)
	case native.Bitfield:
		return goTypeInteger(msg.Size, false)
	case native.Float:
		switch msg.Size {
		case 4:
			return reflect.TypeOf(float32(0)), nil
		case 8:
			return reflect.TypeOf(float64(0)), nil
		}
		return nil, fmt.Errorf("unsupported float size: %d", msg.Size)
	case native.String:
		return reflect.TypeOf(""), nil
	case native.Vlen:
		if msg.IsVarString() {
			return reflect.TypeOf(""), nil
		}
		return reflect.TypeOf([]byte{}), nil
	case native.Opaque:
		return reflect.ArrayOf(int(msg.Size), reflect.TypeOf(byte(0))), nil
	default:
		return nil, fmt.Errorf("Go type of %s datatype: %w", ClassFromNative(msg.Class), ErrUnsupported)
	}
}

func goTypeInteger(size uint32, signed bool) (reflect.Type, error) {
	switch size {
	case 1:
		if signed {
			return reflect.TypeOf(int8(0)), nil
		}
		return reflect.TypeOf(uint8(0)), nil
	case 2:
		if signed {
			return reflect.TypeOf(int16(0)), nil
		}
		return reflect.TypeOf(uint16(0)), nil
	case 4:
		if signed {
			return reflect.TypeOf(int32(0)), nil
		}
		return reflect.TypeOf(uint32(0)), nil
	case 8:
		if signed {
			return reflect.TypeOf(int64(0)), nil
		}
		return reflect.TypeOf(uint64(0)), nil
	default:
		return nil, fmt.Errorf("unsupported integer size: %d", size)
	}
}

// NativeType registers the in-memory type matching dt on this machine
// (H5Tget_native_type). When no machine type has exactly the size of dt,
// DirectionDefault and DirectionAscend pick the smallest larger one and
// DirectionDescend the largest smaller one.
func (dt *Datatype) NativeType(dir Direction) (*Datatype, error) {
	msg, err := dt.message()
	if err != nil {
		return nil, err
	}
	if dir.Native() == native.DirDefault {
		dir = DirectionAscend
	}

	var out *dtmsg.Message
	switch msg.Class {
	case native.Integer:
		size, err := pickSize(integerSizes, msg.Size, dir)
		if err != nil {
			return nil, err
		}
		out = dtmsg.Integer(size, hostOrder, msg.Sign() == native.Sgn2)
	case native.Float:
		size, err := pickSize(floatSizes, msg.Size, dir)
		if err != nil {
			return nil, err
		}
		if out, err = dtmsg.Float(size, hostOrder); err != nil {
			return nil, err
		}
	case native.String, native.Opaque:
		out = msg.Clone()
	case native.Vlen:
		if !msg.IsVarString() {
			return nil, fmt.Errorf("native type of vlen sequence: %w", ErrUnsupported)
		}
		out = msg.Clone()
	default:
		return nil, fmt.Errorf("native type of %s datatype: %w", ClassFromNative(msg.Class), ErrUnsupported)
	}

	reg := dt.lib.(*ident.Registry)
	id := reg.Register(ident.TypeDatatype, out)
	return newDatatype(id, &options{library: dt.lib, logger: dt.log}), nil
}

// pickSize chooses among sizes, which are sorted ascending.
func pickSize(sizes []uint32, want uint32, dir Direction) (uint32, error) {
	switch dir {
	case DirectionAscend:
		for _, s := range sizes {
			if s >= want {
				return s, nil
			}
		}
	case DirectionDescend:
		for i := len(sizes) - 1; i >= 0; i-- {
			if sizes[i] <= want {
				return sizes[i], nil
			}
		}
	}
	return 0, fmt.Errorf("no native type of size %d searching %s: %w", want, dir, ErrUnsupported)
}
