package h5t

import "github.com/robert-malhotra/go-h5t/native"

// Each family has a FromNative function and a Native method. Both are
// total over their domain and panic with *InvariantError outside it. The
// native enumerations have negative and non-contiguous values, so every
// mapping is an explicit switch.

// ClassFromNative converts an H5T_class_t to its tag.
func ClassFromNative(n native.Class) Class {
	switch n {
	case native.Integer:
		return ClassInteger
	case native.Float:
		return ClassFloat
	case native.Time:
		return ClassTime
	case native.String:
		return ClassString
	case native.Bitfield:
		return ClassBitfield
	case native.Opaque:
		return ClassOpaque
	case native.Compound:
		return ClassCompound
	case native.Reference:
		return ClassReference
	case native.Enum:
		return ClassEnum
	case native.Vlen:
		return ClassVlen
	case native.Array:
		return ClassArray
	case native.NoClass:
		return ClassNoClass
	}
	panic(badNative("Class", int32(n)))
}

// Native returns the H5T_class_t for c.
func (c Class) Native() native.Class {
	switch c {
	case ClassInteger:
		return native.Integer
	case ClassFloat:
		return native.Float
	case ClassTime:
		return native.Time
	case ClassString:
		return native.String
	case ClassBitfield:
		return native.Bitfield
	case ClassOpaque:
		return native.Opaque
	case ClassCompound:
		return native.Compound
	case ClassReference:
		return native.Reference
	case ClassEnum:
		return native.Enum
	case ClassVlen:
		return native.Vlen
	case ClassArray:
		return native.Array
	case ClassNoClass:
		return native.NoClass
	}
	panic(badTag("Class", int(c)))
}

// OrderFromNative converts an H5T_order_t to its tag.
func OrderFromNative(n native.Order) Order {
	switch n {
	case native.OrderLE:
		return OrderLE
	case native.OrderBE:
		return OrderBE
	case native.OrderVAX:
		return OrderVAX
	case native.OrderMixed:
		return OrderMixed
	case native.OrderNone:
		return OrderNone
	case native.OrderError:
		return OrderError
	}
	panic(badNative("Order", int32(n)))
}

// Native returns the H5T_order_t for o.
func (o Order) Native() native.Order {
	switch o {
	case OrderLE:
		return native.OrderLE
	case OrderBE:
		return native.OrderBE
	case OrderVAX:
		return native.OrderVAX
	case OrderMixed:
		return native.OrderMixed
	case OrderNone:
		return native.OrderNone
	case OrderError:
		return native.OrderError
	}
	panic(badTag("Order", int(o)))
}

// SignFromNative converts an H5T_sign_t to its tag.
func SignFromNative(n native.Sign) Sign {
	switch n {
	case native.SgnNone:
		return SignNone
	case native.Sgn2:
		return SignTwosComplement
	case native.SgnError:
		return SignError
	}
	panic(badNative("Sign", int32(n)))
}

// Native returns the H5T_sign_t for s.
func (s Sign) Native() native.Sign {
	switch s {
	case SignNone:
		return native.SgnNone
	case SignTwosComplement:
		return native.Sgn2
	case SignError:
		return native.SgnError
	}
	panic(badTag("Sign", int(s)))
}

// NormFromNative converts an H5T_norm_t to its tag.
func NormFromNative(n native.Norm) Norm {
	switch n {
	case native.NormImplied:
		return NormImplied
	case native.NormMSBSet:
		return NormMSBSet
	case native.NormNone:
		return NormNone
	case native.NormError:
		return NormError
	}
	panic(badNative("Norm", int32(n)))
}

// Native returns the H5T_norm_t for n.
func (n Norm) Native() native.Norm {
	switch n {
	case NormImplied:
		return native.NormImplied
	case NormMSBSet:
		return native.NormMSBSet
	case NormNone:
		return native.NormNone
	case NormError:
		return native.NormError
	}
	panic(badTag("Norm", int(n)))
}

// CsetFromNative converts an H5T_cset_t to its tag. Each reserved slot
// keeps its own tag.
func CsetFromNative(n native.Cset) Cset {
	switch n {
	case native.CsetASCII:
		return CsetASCII
	case native.CsetUTF8:
		return CsetUTF8
	case native.CsetReserved2:
		return CsetReserved2
	case native.CsetReserved3:
		return CsetReserved3
	case native.CsetReserved4:
		return CsetReserved4
	case native.CsetReserved5:
		return CsetReserved5
	case native.CsetReserved6:
		return CsetReserved6
	case native.CsetReserved7:
		return CsetReserved7
	case native.CsetReserved8:
		return CsetReserved8
	case native.CsetReserved9:
		return CsetReserved9
	case native.CsetReserved10:
		return CsetReserved10
	case native.CsetReserved11:
		return CsetReserved11
	case native.CsetReserved12:
		return CsetReserved12
	case native.CsetReserved13:
		return CsetReserved13
	case native.CsetReserved14:
		return CsetReserved14
	case native.CsetReserved15:
		return CsetReserved15
	case native.CsetError:
		return CsetError
	}
	panic(badNative("Cset", int32(n)))
}

// Native returns the H5T_cset_t for c.
func (c Cset) Native() native.Cset {
	switch c {
	case CsetASCII:
		return native.CsetASCII
	case CsetUTF8:
		return native.CsetUTF8
	case CsetReserved2:
		return native.CsetReserved2
	case CsetReserved3:
		return native.CsetReserved3
	case CsetReserved4:
		return native.CsetReserved4
	case CsetReserved5:
		return native.CsetReserved5
	case CsetReserved6:
		return native.CsetReserved6
	case CsetReserved7:
		return native.CsetReserved7
	case CsetReserved8:
		return native.CsetReserved8
	case CsetReserved9:
		return native.CsetReserved9
	case CsetReserved10:
		return native.CsetReserved10
	case CsetReserved11:
		return native.CsetReserved11
	case CsetReserved12:
		return native.CsetReserved12
	case CsetReserved13:
		return native.CsetReserved13
	case CsetReserved14:
		return native.CsetReserved14
	case CsetReserved15:
		return native.CsetReserved15
	case CsetError:
		return native.CsetError
	}
	panic(badTag("Cset", int(c)))
}

// StrFromNative converts an H5T_str_t to its tag. Each reserved slot keeps
// its own tag.
func StrFromNative(n native.Str) Str {
	switch n {
	case native.StrNullTerm:
		return StrNullTerm
	case native.StrNullPad:
		return StrNullPad
	case native.StrSpacePad:
		return StrSpacePad
	case native.StrReserved3:
		return StrReserved3
	case native.StrReserved4:
		return StrReserved4
	case native.StrReserved5:
		return StrReserved5
	case native.StrReserved6:
		return StrReserved6
	case native.StrReserved7:
		return StrReserved7
	case native.StrReserved8:
		return StrReserved8
	case native.StrReserved9:
		return StrReserved9
	case native.StrReserved10:
		return StrReserved10
	case native.StrReserved11:
		return StrReserved11
	case native.StrReserved12:
		return StrReserved12
	case native.StrReserved13:
		return StrReserved13
	case native.StrReserved14:
		return StrReserved14
	case native.StrReserved15:
		return StrReserved15
	case native.StrError:
		return StrError
	}
	panic(badNative("Str", int32(n)))
}

// Native returns the H5T_str_t for s.
func (s Str) Native() native.Str {
	switch s {
	case StrNullTerm:
		return native.StrNullTerm
	case StrNullPad:
		return native.StrNullPad
	case StrSpacePad:
		return native.StrSpacePad
	case StrReserved3:
		return native.StrReserved3
	case StrReserved4:
		return native.StrReserved4
	case StrReserved5:
		return native.StrReserved5
	case StrReserved6:
		return native.StrReserved6
	case StrReserved7:
		return native.StrReserved7
	case StrReserved8:
		return native.StrReserved8
	case StrReserved9:
		return native.StrReserved9
	case StrReserved10:
		return native.StrReserved10
	case StrReserved11:
		return native.StrReserved11
	case StrReserved12:
		return native.StrReserved12
	case StrReserved13:
		return native.StrReserved13
	case StrReserved14:
		return native.StrReserved14
	case StrReserved15:
		return native.StrReserved15
	case StrError:
		return native.StrError
	}
	panic(badTag("Str", int(s)))
}

// PadFromNative converts an H5T_pad_t to its tag.
func PadFromNative(n native.Pad) Pad {
	switch n {
	case native.PadZero:
		return PadZero
	case native.PadOne:
		return PadOne
	case native.PadBackground:
		return PadBackground
	case native.PadError:
		return PadError
	}
	panic(badNative("Pad", int32(n)))
}

// Native returns the H5T_pad_t for p.
func (p Pad) Native() native.Pad {
	switch p {
	case PadZero:
		return native.PadZero
	case PadOne:
		return native.PadOne
	case PadBackground:
		return native.PadBackground
	case PadError:
		return native.PadError
	}
	panic(badTag("Pad", int(p)))
}

// CmdFromNative converts an H5T_cmd_t to its tag.
func CmdFromNative(n native.Cmd) Cmd {
	switch n {
	case native.ConvInit:
		return CmdInit
	case native.ConvConv:
		return CmdConv
	case native.ConvFree:
		return CmdFree
	}
	panic(badNative("Cmd", int32(n)))
}

// Native returns the H5T_cmd_t for c.
func (c Cmd) Native() native.Cmd {
	switch c {
	case CmdInit:
		return native.ConvInit
	case CmdConv:
		return native.ConvConv
	case CmdFree:
		return native.ConvFree
	}
	panic(badTag("Cmd", int(c)))
}

// BkgFromNative converts an H5T_bkg_t to its tag.
func BkgFromNative(n native.Bkg) Bkg {
	switch n {
	case native.BkgNo:
		return BkgNo
	case native.BkgTemp:
		return BkgTemp
	case native.BkgYes:
		return BkgYes
	}
	panic(badNative("Bkg", int32(n)))
}

// Native returns the H5T_bkg_t for b.
func (b Bkg) Native() native.Bkg {
	switch b {
	case BkgNo:
		return native.BkgNo
	case BkgTemp:
		return native.BkgTemp
	case BkgYes:
		return native.BkgYes
	}
	panic(badTag("Bkg", int(b)))
}

// PersFromNative converts an H5T_pers_t to its tag.
func PersFromNative(n native.Pers) Pers {
	switch n {
	case native.PersHard:
		return PersHard
	case native.PersSoft:
		return PersSoft
	case native.PersDontCare:
		return PersDontCare
	}
	panic(badNative("Pers", int32(n)))
}

// Native returns the H5T_pers_t for p.
func (p Pers) Native() native.Pers {
	switch p {
	case PersHard:
		return native.PersHard
	case PersSoft:
		return native.PersSoft
	case PersDontCare:
		return native.PersDontCare
	}
	panic(badTag("Pers", int(p)))
}

// DirectionFromNative converts an H5T_direction_t to its tag.
func DirectionFromNative(n native.Direction) Direction {
	switch n {
	case native.DirDefault:
		return DirectionDefault
	case native.DirAscend:
		return DirectionAscend
	case native.DirDescend:
		return DirectionDescend
	}
	panic(badNative("Direction", int32(n)))
}

// Native returns the H5T_direction_t for d.
func (d Direction) Native() native.Direction {
	switch d {
	case DirectionDefault:
		return native.DirDefault
	case DirectionAscend:
		return native.DirAscend
	case DirectionDescend:
		return native.DirDescend
	}
	panic(badTag("Direction", int(d)))
}

// ConvExceptFromNative converts an H5T_conv_except_t to its tag.
func ConvExceptFromNative(n native.ConvExcept) ConvExcept {
	switch n {
	case native.ConvExceptRangeHi:
		return ConvExceptRangeHi
	case native.ConvExceptRangeLow:
		return ConvExceptRangeLow
	case native.ConvExceptPrecision:
		return ConvExceptPrecision
	case native.ConvExceptTruncate:
		return ConvExceptTruncate
	case native.ConvExceptPInf:
		return ConvExceptPInf
	case native.ConvExceptNInf:
		return ConvExceptNInf
	case native.ConvExceptNaN:
		return ConvExceptNaN
	}
	panic(badNative("ConvExcept", int32(n)))
}

// Native returns the H5T_conv_except_t for e.
func (e ConvExcept) Native() native.ConvExcept {
	switch e {
	case ConvExceptRangeHi:
		return native.ConvExceptRangeHi
	case ConvExceptRangeLow:
		return native.ConvExceptRangeLow
	case ConvExceptPrecision:
		return native.ConvExceptPrecision
	case ConvExceptTruncate:
		return native.ConvExceptTruncate
	case ConvExceptPInf:
		return native.ConvExceptPInf
	case ConvExceptNInf:
		return native.ConvExceptNInf
	case ConvExceptNaN:
		return native.ConvExceptNaN
	}
	panic(badTag("ConvExcept", int(e)))
}

// ConvRetFromNative converts an H5T_conv_ret_t to its tag.
func ConvRetFromNative(n native.ConvRet) ConvRet {
	switch n {
	case native.ConvAbort:
		return ConvRetAbort
	case native.ConvUnhandled:
		return ConvRetUnhandled
	case native.ConvHandled:
		return ConvRetHandled
	}
	panic(badNative("ConvRet", int32(n)))
}

// Native returns the H5T_conv_ret_t for r.
func (r ConvRet) Native() native.ConvRet {
	switch r {
	case ConvRetAbort:
		return native.ConvAbort
	case ConvRetUnhandled:
		return native.ConvUnhandled
	case ConvRetHandled:
		return native.ConvHandled
	}
	panic(badTag("ConvRet", int(r)))
}
