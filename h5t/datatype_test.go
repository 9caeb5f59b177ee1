package h5t

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-h5t/internal/dtmsg"
	"github.com/robert-malhotra/go-h5t/native"
)

func decode(t *testing.T, lib Library, msg *dtmsg.Message) *Datatype {
	t.Helper()
	dt, err := Decode(msg.Encode(), WithLibrary(lib))
	require.NoError(t, err)
	return dt
}

func TestDecodeInteger(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.Integer(4, native.OrderBE, true))
	defer dt.Close()

	assert.True(t, IsValid(lib, dt.ID()))
	assert.Equal(t, 1, RefCount(lib, dt.ID()))

	class, err := dt.Class()
	require.NoError(t, err)
	assert.Equal(t, ClassInteger, class)

	size, err := dt.Size()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), size)

	order, err := dt.Order()
	require.NoError(t, err)
	assert.Equal(t, OrderBE, order)

	sign, err := dt.Sign()
	require.NoError(t, err)
	assert.Equal(t, SignTwosComplement, sign)

	lsb, msb, err := dt.Pad()
	require.NoError(t, err)
	assert.Equal(t, PadZero, lsb)
	assert.Equal(t, PadZero, msb)

	norm, err := dt.Norm()
	assert.ErrorIs(t, err, ErrNotApplicable)
	assert.Equal(t, NormError, norm)

	cset, err := dt.Cset()
	assert.ErrorIs(t, err, ErrNotApplicable)
	assert.Equal(t, CsetError, cset)
}

func TestDecodeFloat(t *testing.T) {
	tests := []struct {
		name  string
		order native.Order
		want  Order
	}{
		{"le", native.OrderLE, OrderLE},
		{"be", native.OrderBE, OrderBE},
		{"vax", native.OrderVAX, OrderVAX},
	}

	lib := NewLibrary()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := dtmsg.Float(8, tt.order)
			require.NoError(t, err)
			dt := decode(t, lib, msg)
			defer dt.Close()

			order, err := dt.Order()
			require.NoError(t, err)
			assert.Equal(t, tt.want, order)

			norm, err := dt.Norm()
			require.NoError(t, err)
			assert.Equal(t, NormImplied, norm)

			sign, err := dt.Sign()
			assert.ErrorIs(t, err, ErrNotApplicable)
			assert.Equal(t, SignError, sign)
		})
	}
}

func TestDecodeUnsignedIntegerSign(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.Integer(1, native.OrderLE, false))
	defer dt.Close()

	sign, err := dt.Sign()
	require.NoError(t, err)
	assert.Equal(t, SignNone, sign)
}

func TestDecodeStrings(t *testing.T) {
	lib := NewLibrary()

	fixed := decode(t, lib, dtmsg.String(16, native.StrSpacePad, native.CsetUTF8))
	defer fixed.Close()

	cset, err := fixed.Cset()
	require.NoError(t, err)
	assert.Equal(t, CsetUTF8, cset)
	pad, err := fixed.StrPad()
	require.NoError(t, err)
	assert.Equal(t, StrSpacePad, pad)
	order, err := fixed.Order()
	require.NoError(t, err)
	assert.Equal(t, OrderNone, order)

	_, _, err = fixed.Pad()
	assert.ErrorIs(t, err, ErrNotApplicable)

	vlen := decode(t, lib, dtmsg.VarString(native.StrNullTerm, native.CsetASCII))
	defer vlen.Close()

	class, err := vlen.Class()
	require.NoError(t, err)
	assert.Equal(t, ClassVlen, class)
	cset, err = vlen.Cset()
	require.NoError(t, err)
	assert.Equal(t, CsetASCII, cset)
	pad, err = vlen.StrPad()
	require.NoError(t, err)
	assert.Equal(t, StrNullTerm, pad)
}

func TestDecodeReservedCharacterSet(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.String(4, native.StrReserved9, native.CsetReserved12))
	defer dt.Close()

	cset, err := dt.Cset()
	require.NoError(t, err)
	assert.Equal(t, CsetReserved12, cset)

	pad, err := dt.StrPad()
	require.NoError(t, err)
	assert.Equal(t, StrReserved9, pad)
}

func TestDecodeMalformedFloatBits(t *testing.T) {
	msg, err := dtmsg.Float(4, native.OrderLE)
	require.NoError(t, err)
	msg.Bits |= 0x3 << 4 // reserved normalization
	msg.Bits |= 1 << 6   // VAX bit without the order bit

	lib := NewLibrary()
	dt := decode(t, lib, msg)
	defer dt.Close()

	order, err := dt.Order()
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, OrderError, order)

	norm, err := dt.Norm()
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, NormError, norm)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{0x13, 0, 0}, WithLibrary(NewLibrary()))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Decode(dtmsg.Integer(4, native.OrderLE, true).Encode(), WithLibrary(&countingLibrary{}))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEncodeCopyEqual(t *testing.T) {
	lib := NewLibrary()
	src := dtmsg.Integer(8, native.OrderLE, false)
	dt := decode(t, lib, src)
	defer dt.Close()

	buf, err := dt.Encode()
	require.NoError(t, err)
	assert.Equal(t, src.Encode(), buf)

	cp, err := dt.Copy()
	require.NoError(t, err)
	defer cp.Close()
	assert.NotEqual(t, dt.ID(), cp.ID())

	eq, err := dt.Equal(cp)
	require.NoError(t, err)
	assert.True(t, eq)

	other := decode(t, lib, dtmsg.Integer(8, native.OrderBE, false))
	defer other.Close()
	eq, err = dt.Equal(other)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestGettersOnClosedDatatype(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.Integer(4, native.OrderLE, true))
	id := dt.ID()
	require.NoError(t, dt.Close())
	assert.False(t, IsValid(lib, id))

	class, err := dt.Class()
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, ClassNoClass, class)

	_, err = dt.Copy()
	assert.ErrorIs(t, err, ErrClosed)

	_, err = dt.Encode()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAliasAddsReference(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.Integer(2, native.OrderLE, true))

	alias, err := dt.Alias()
	require.NoError(t, err)
	assert.Equal(t, dt.ID(), alias.ID())
	assert.Equal(t, 2, RefCount(lib, dt.ID()))

	require.NoError(t, dt.Close())
	assert.True(t, IsValid(lib, alias.ID()))

	class, err := alias.Class()
	require.NoError(t, err)
	assert.Equal(t, ClassInteger, class)

	require.NoError(t, alias.Close())
	assert.False(t, IsValid(lib, alias.ID()))
}

func TestDoubleWrapWithoutReferenceFails(t *testing.T) {
	lib := NewLibrary()
	dt := decode(t, lib, dtmsg.Integer(4, native.OrderLE, true))
	second := Alloc(dt.ID(), WithLibrary(lib))

	require.NoError(t, dt.Close())
	err := second.Close()
	assert.ErrorIs(t, err, ErrUnknownID)
}

// decodeAndDrop decodes a datatype and lets the wrapper go out of reach.
//
//go:noinline
func decodeAndDrop(t *testing.T, lib Library, opts ...Option) native.ID {
	dt, err := Decode(dtmsg.Integer(4, native.OrderLE, true).Encode(), append(opts, WithLibrary(lib))...)
	require.NoError(t, err)
	return dt.ID()
}

func TestUnreachableDecodedDatatypeIsReleased(t *testing.T) {
	lib := NewLibrary()
	log, logs := observedLogger()

	id := decodeAndDrop(t, lib, WithLogger(log))
	waitFinalized(t, logs, id)

	assert.False(t, IsValid(lib, id))
	assert.Equal(t, 0, logs.FilterMessage("closing unreachable datatype").Len())
}

func TestLibraryHelpersOnForeignLibrary(t *testing.T) {
	lib := &countingLibrary{}
	assert.False(t, IsValid(lib, 1))
	assert.Equal(t, 0, RefCount(lib, 1))

	dt := Alloc(1, WithLibrary(lib))
	_, err := dt.Class()
	assert.ErrorIs(t, err, ErrUnsupported)
}
