// Package native mirrors the C side of the HDF5 datatype API.
//
// Every type here carries the exact numeric values of the corresponding
// enumeration in H5Tpublic.h, including the negative error and sentinel
// enumerators. The per-family Values lists enumerate the complete declared
// domain and are what the marshalling tests iterate.
package native

// ID is an HDF5 object identifier (hid_t).
type ID int64

// InvalidID is H5I_INVALID_HID.
const InvalidID ID = -1

// Class is H5T_class_t.
type Class int32

const (
	NoClass   Class = -1 // H5T_NO_CLASS
	Integer   Class = 0  // H5T_INTEGER
	Float     Class = 1  // H5T_FLOAT
	Time      Class = 2  // H5T_TIME
	String    Class = 3  // H5T_STRING
	Bitfield  Class = 4  // H5T_BITFIELD
	Opaque    Class = 5  // H5T_OPAQUE
	Compound  Class = 6  // H5T_COMPOUND
	Reference Class = 7  // H5T_REFERENCE
	Enum      Class = 8  // H5T_ENUM
	Vlen      Class = 9  // H5T_VLEN
	Array     Class = 10 // H5T_ARRAY
)

// NClasses is H5T_NCLASSES. It counts classes and is not itself a class.
const NClasses = 11

// Order is H5T_order_t.
type Order int32

const (
	OrderError Order = -1
	OrderLE    Order = 0
	OrderBE    Order = 1
	OrderVAX   Order = 2
	OrderMixed Order = 3
	OrderNone  Order = 4
)

// Sign is H5T_sign_t.
type Sign int32

const (
	SgnError Sign = -1
	SgnNone  Sign = 0
	Sgn2     Sign = 1
)

// Norm is H5T_norm_t.
type Norm int32

const (
	NormError   Norm = -1
	NormImplied Norm = 0
	NormMSBSet  Norm = 1
	NormNone    Norm = 2
)

// Cset is H5T_cset_t.
type Cset int32

const (
	CsetError      Cset = -1
	CsetASCII      Cset = 0
	CsetUTF8       Cset = 1
	CsetReserved2  Cset = 2
	CsetReserved3  Cset = 3
	CsetReserved4  Cset = 4
	CsetReserved5  Cset = 5
	CsetReserved6  Cset = 6
	CsetReserved7  Cset = 7
	CsetReserved8  Cset = 8
	CsetReserved9  Cset = 9
	CsetReserved10 Cset = 10
	CsetReserved11 Cset = 11
	CsetReserved12 Cset = 12
	CsetReserved13 Cset = 13
	CsetReserved14 Cset = 14
	CsetReserved15 Cset = 15
)

// Str is H5T_str_t, the string padding type.
type Str int32

const (
	StrError      Str = -1
	StrNullTerm   Str = 0
	StrNullPad    Str = 1
	StrSpacePad   Str = 2
	StrReserved3  Str = 3
	StrReserved4  Str = 4
	StrReserved5  Str = 5
	StrReserved6  Str = 6
	StrReserved7  Str = 7
	StrReserved8  Str = 8
	StrReserved9  Str = 9
	StrReserved10 Str = 10
	StrReserved11 Str = 11
	StrReserved12 Str = 12
	StrReserved13 Str = 13
	StrReserved14 Str = 14
	StrReserved15 Str = 15
)

// Pad is H5T_pad_t, the bit padding type.
type Pad int32

const (
	PadError      Pad = -1
	PadZero       Pad = 0
	PadOne        Pad = 1
	PadBackground Pad = 2
)

// Cmd is H5T_cmd_t.
type Cmd int32

const (
	ConvInit Cmd = 0
	ConvConv Cmd = 1
	ConvFree Cmd = 2
)

// Bkg is H5T_bkg_t.
type Bkg int32

const (
	BkgNo   Bkg = 0
	BkgTemp Bkg = 1
	BkgYes  Bkg = 2
)

// Pers is H5T_pers_t.
type Pers int32

const (
	PersDontCare Pers = -1
	PersHard     Pers = 0
	PersSoft     Pers = 1
)

// Direction is H5T_direction_t.
type Direction int32

const (
	DirDefault Direction = 0
	DirAscend  Direction = 1
	DirDescend Direction = 2
)

// ConvExcept is H5T_conv_except_t.
type ConvExcept int32

const (
	ConvExceptRangeHi   ConvExcept = 0
	ConvExceptRangeLow  ConvExcept = 1
	ConvExceptPrecision ConvExcept = 2
	ConvExceptTruncate  ConvExcept = 3
	ConvExceptPInf      ConvExcept = 4
	ConvExceptNInf      ConvExcept = 5
	ConvExceptNaN       ConvExcept = 6
)

// ConvRet is H5T_conv_ret_t.
type ConvRet int32

const (
	ConvAbort     ConvRet = -1
	ConvUnhandled ConvRet = 0
	ConvHandled   ConvRet = 1
)
