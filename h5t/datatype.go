package h5t

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/robert-malhotra/go-h5t/internal/dtmsg"
	"github.com/robert-malhotra/go-h5t/internal/ident"
	"github.com/robert-malhotra/go-h5t/native"
)

// Decode parses an encoded datatype message, registers it with the library
// and wraps the new identifier (H5Tdecode). The library must be an
// in-memory one from DefaultLibrary or NewLibrary.
func Decode(buf []byte, opts ...Option) (*Datatype, error) {
	o := applyOptions(opts)
	reg, ok := o.library.(*ident.Registry)
	if !ok {
		return nil, fmt.Errorf("decoding datatype: %w", ErrUnsupported)
	}

	msg, err := dtmsg.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding datatype: %w: %v", ErrMalformed, err)
	}

	id := reg.Register(ident.TypeDatatype, msg)
	return newDatatype(id, o), nil
}

// message resolves the wrapper to its registered datatype message.
func (dt *Datatype) message() (*dtmsg.Message, error) {
	defer runtime.KeepAlive(dt)

	if dt.p.closed {
		return nil, ErrClosed
	}
	reg, ok := dt.lib.(*ident.Registry)
	if !ok {
		return nil, fmt.Errorf("datatype %#x: %w", int64(dt.p.id), ErrUnsupported)
	}
	obj, err := reg.Object(dt.p.id, ident.TypeDatatype)
	if err != nil {
		return nil, fmt.Errorf("datatype %#x: %w", int64(dt.p.id), err)
	}
	msg, ok := obj.(*dtmsg.Message)
	if !ok {
		return nil, fmt.Errorf("datatype %#x: %w", int64(dt.p.id), ErrWrongType)
	}
	return msg, nil
}

// Encode returns the datatype message for dt (H5Tencode).
func (dt *Datatype) Encode() ([]byte, error) {
	msg, err := dt.message()
	if err != nil {
		return nil, err
	}
	return msg.Encode(), nil
}

// Copy registers a copy of the datatype under a new identifier (H5Tcopy).
// The copy shares the library and logger of dt.
func (dt *Datatype) Copy() (*Datatype, error) {
	msg, err := dt.message()
	if err != nil {
		return nil, err
	}
	reg := dt.lib.(*ident.Registry)
	id := reg.Register(ident.TypeDatatype, msg.Clone())
	return newDatatype(id, &options{library: dt.lib, logger: dt.log}), nil
}

// Alias returns a second wrapper around the same identifier after adding a
// reference to it (H5Iinc_ref). Each wrapper then releases one reference.
func (dt *Datatype) Alias() (*Datatype, error) {
	if _, err := dt.message(); err != nil {
		return nil, err
	}
	reg := dt.lib.(*ident.Registry)
	if _, err := reg.IncRef(dt.p.id); err != nil {
		return nil, fmt.Errorf("aliasing datatype %#x: %w", int64(dt.p.id), err)
	}
	return newDatatype(dt.p.id, &options{library: dt.lib, logger: dt.log}), nil
}

// Equal reports whether two datatypes have identical encodings (H5Tequal).
func (dt *Datatype) Equal(other *Datatype) (bool, error) {
	a, err := dt.Encode()
	if err != nil {
		return false, err
	}
	b, err := other.Encode()
	if err != nil {
		return false, err
	}
	return bytes.Equal(a, b), nil
}

// Class returns the datatype class (H5Tget_class).
func (dt *Datatype) Class() (Class, error) {
	msg, err := dt.message()
	if err != nil {
		return ClassNoClass, err
	}
	return ClassFromNative(msg.Class), nil
}

// Size returns the size of one element in bytes (H5Tget_size).
func (dt *Datatype) Size() (uint32, error) {
	msg, err := dt.message()
	if err != nil {
		return 0, err
	}
	return msg.Size, nil
}

// Order returns the byte order (H5Tget_order). Non-atomic classes report
// OrderNone.
func (dt *Datatype) Order() (Order, error) {
	msg, err := dt.message()
	if err != nil {
		return OrderError, err
	}
	o := msg.Order()
	if o == native.OrderError {
		return OrderError, fmt.Errorf("datatype %#x byte order: %w", int64(dt.p.id), ErrMalformed)
	}
	return OrderFromNative(o), nil
}

// Sign returns the sign convention of an integer type (H5Tget_sign).
func (dt *Datatype) Sign() (Sign, error) {
	msg, err := dt.message()
	if err != nil {
		return SignError, err
	}
	if msg.Class != native.Integer {
		return SignError, notApplicable("sign", msg.Class)
	}
	return SignFromNative(msg.Sign()), nil
}

// Norm returns the mantissa normalization of a float type (H5Tget_norm).
func (dt *Datatype) Norm() (Norm, error) {
	msg, err := dt.message()
	if err != nil {
		return NormError, err
	}
	if msg.Class != native.Float {
		return NormError, notApplicable("normalization", msg.Class)
	}
	n := msg.Norm()
	if n == native.NormError {
		return NormError, fmt.Errorf("datatype %#x normalization: %w", int64(dt.p.id), ErrMalformed)
	}
	return NormFromNative(n), nil
}

// Cset returns the character set of a string type (H5Tget_cset).
func (dt *Datatype) Cset() (Cset, error) {
	msg, err := dt.message()
	if err != nil {
		return CsetError, err
	}
	if msg.Class != native.String && !msg.IsVarString() {
		return CsetError, notApplicable("character set", msg.Class)
	}
	return CsetFromNative(msg.Cset()), nil
}

// StrPad returns the padding of a string type (H5Tget_strpad).
func (dt *Datatype) StrPad() (Str, error) {
	msg, err := dt.message()
	if err != nil {
		return StrError, err
	}
	if msg.Class != native.String && !msg.IsVarString() {
		return StrError, notApplicable("string padding", msg.Class)
	}
	return StrFromNative(msg.StrPad()), nil
}

// Pad returns the padding of the low and high unused bits (H5Tget_pad).
func (dt *Datatype) Pad() (lsb, msb Pad, err error) {
	msg, err := dt.message()
	if err != nil {
		return PadError, PadError, err
	}
	l, m := msg.Pad()
	if l == native.PadError {
		return PadError, PadError, notApplicable("bit padding", msg.Class)
	}
	return PadFromNative(l), PadFromNative(m), nil
}

func notApplicable(property string, class native.Class) error {
	return fmt.Errorf("%s of %s datatype: %w", property, ClassFromNative(class), ErrNotApplicable)
}
