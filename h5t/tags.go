package h5t

import "strconv"

// Tag ordinals are part of the ABI: consumers may switch on the integer
// value, so new tags are only ever appended to the end of their family.

// Class is the class of a datatype.
type Class int

const (
	ClassInteger Class = iota
	ClassFloat
	ClassTime
	ClassString
	ClassBitfield
	ClassOpaque
	ClassCompound
	ClassReference
	ClassEnum
	ClassVlen
	ClassArray
	ClassNoClass
)

// Order is the byte order of an atomic datatype.
type Order int

const (
	OrderLE Order = iota
	OrderBE
	OrderVAX
	OrderMixed
	OrderNone
	OrderError
)

// Sign is the sign convention of an integer datatype.
type Sign int

const (
	SignNone Sign = iota // unsigned
	SignTwosComplement
	SignError
)

// Norm is the mantissa normalization of a floating point datatype.
type Norm int

const (
	NormImplied Norm = iota
	NormMSBSet
	NormNone
	NormError
)

// Cset is the character set of a string datatype.
type Cset int

const (
	CsetASCII Cset = iota
	CsetUTF8
	CsetReserved2
	CsetReserved3
	CsetReserved4
	CsetReserved5
	CsetReserved6
	CsetReserved7
	CsetReserved8
	CsetReserved9
	CsetReserved10
	CsetReserved11
	CsetReserved12
	CsetReserved13
	CsetReserved14
	CsetReserved15
	CsetError
)

// Str is the padding of a fixed-length string datatype.
type Str int

const (
	StrNullTerm Str = iota
	StrNullPad
	StrSpacePad
	StrReserved3
	StrReserved4
	StrReserved5
	StrReserved6
	StrReserved7
	StrReserved8
	StrReserved9
	StrReserved10
	StrReserved11
	StrReserved12
	StrReserved13
	StrReserved14
	StrReserved15
	StrError
)

// Pad is the value of unused bits in an atomic datatype.
type Pad int

const (
	PadZero Pad = iota
	PadOne
	PadBackground
	PadError
)

// Cmd tells a conversion function what to do.
type Cmd int

const (
	CmdInit Cmd = iota
	CmdConv
	CmdFree
)

// Bkg says whether a conversion needs a background buffer.
type Bkg int

const (
	BkgNo Bkg = iota
	BkgTemp
	BkgYes
)

// Pers is the persistence of a conversion path.
type Pers int

const (
	PersHard Pers = iota
	PersSoft
	PersDontCare
)

// Direction is the search direction for native type lookup.
type Direction int

const (
	DirectionDefault Direction = iota
	DirectionAscend
	DirectionDescend
)

// ConvExcept is the kind of exception raised during a conversion.
type ConvExcept int

const (
	ConvExceptRangeHi ConvExcept = iota
	ConvExceptRangeLow
	ConvExceptPrecision
	ConvExceptTruncate
	ConvExceptPInf
	ConvExceptNInf
	ConvExceptNaN
)

// ConvRet is what a conversion exception handler tells the library.
type ConvRet int

const (
	ConvRetAbort ConvRet = iota
	ConvRetUnhandled
	ConvRetHandled
)

var (
	classNames = [...]string{
		"integer", "float", "time", "string", "bitfield", "opaque",
		"compound", "reference", "enum", "vlen", "array", "no_class",
	}
	orderNames = [...]string{"le", "be", "vax", "mixed", "none", "error"}
	signNames  = [...]string{"none", "2", "error"}
	normNames  = [...]string{"implied", "msbset", "none", "error"}
	csetNames  = [...]string{
		"ascii", "utf8",
		"reserved_2", "reserved_3", "reserved_4", "reserved_5",
		"reserved_6", "reserved_7", "reserved_8", "reserved_9",
		"reserved_10", "reserved_11", "reserved_12", "reserved_13",
		"reserved_14", "reserved_15", "error",
	}
	strNames = [...]string{
		"nullterm", "nullpad", "spacepad",
		"reserved_3", "reserved_4", "reserved_5", "reserved_6",
		"reserved_7", "reserved_8", "reserved_9", "reserved_10",
		"reserved_11", "reserved_12", "reserved_13", "reserved_14",
		"reserved_15", "error",
	}
	padNames        = [...]string{"zero", "one", "background", "error"}
	cmdNames        = [...]string{"init", "conv", "free"}
	bkgNames        = [...]string{"no", "temp", "yes"}
	persNames       = [...]string{"hard", "soft", "dontcare"}
	directionNames  = [...]string{"default", "ascend", "descend"}
	convExceptNames = [...]string{
		"range_hi", "range_low", "precision", "truncate", "pinf", "ninf", "nan",
	}
	convRetNames = [...]string{"abort", "unhandled", "handled"}
)

func tagName(names []string, family string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return family + "(" + strconv.Itoa(v) + ")"
}

func (c Class) String() string      { return tagName(classNames[:], "Class", int(c)) }
func (o Order) String() string      { return tagName(orderNames[:], "Order", int(o)) }
func (s Sign) String() string       { return tagName(signNames[:], "Sign", int(s)) }
func (n Norm) String() string       { return tagName(normNames[:], "Norm", int(n)) }
func (c Cset) String() string       { return tagName(csetNames[:], "Cset", int(c)) }
func (s Str) String() string        { return tagName(strNames[:], "Str", int(s)) }
func (p Pad) String() string        { return tagName(padNames[:], "Pad", int(p)) }
func (c Cmd) String() string        { return tagName(cmdNames[:], "Cmd", int(c)) }
func (b Bkg) String() string        { return tagName(bkgNames[:], "Bkg", int(b)) }
func (p Pers) String() string       { return tagName(persNames[:], "Pers", int(p)) }
func (d Direction) String() string  { return tagName(directionNames[:], "Direction", int(d)) }
func (e ConvExcept) String() string { return tagName(convExceptNames[:], "ConvExcept", int(e)) }
func (r ConvRet) String() string    { return tagName(convRetNames[:], "ConvRet", int(r)) }

// Tag lists in ordinal order, one per family.
var (
	Classes = []Class{
		ClassInteger, ClassFloat, ClassTime, ClassString, ClassBitfield,
		ClassOpaque, ClassCompound, ClassReference, ClassEnum, ClassVlen,
		ClassArray, ClassNoClass,
	}
	Orders = []Order{OrderLE, OrderBE, OrderVAX, OrderMixed, OrderNone, OrderError}
	Signs  = []Sign{SignNone, SignTwosComplement, SignError}
	Norms  = []Norm{NormImplied, NormMSBSet, NormNone, NormError}
	Csets  = []Cset{
		CsetASCII, CsetUTF8,
		CsetReserved2, CsetReserved3, CsetReserved4, CsetReserved5,
		CsetReserved6, CsetReserved7, CsetReserved8, CsetReserved9,
		CsetReserved10, CsetReserved11, CsetReserved12, CsetReserved13,
		CsetReserved14, CsetReserved15, CsetError,
	}
	Strs = []Str{
		StrNullTerm, StrNullPad, StrSpacePad,
		StrReserved3, StrReserved4, StrReserved5, StrReserved6,
		StrReserved7, StrReserved8, StrReserved9, StrReserved10,
		StrReserved11, StrReserved12, StrReserved13, StrReserved14,
		StrReserved15, StrError,
	}
	Pads         = []Pad{PadZero, PadOne, PadBackground, PadError}
	Cmds         = []Cmd{CmdInit, CmdConv, CmdFree}
	Bkgs         = []Bkg{BkgNo, BkgTemp, BkgYes}
	Persistences = []Pers{PersHard, PersSoft, PersDontCare}
	Directions   = []Direction{DirectionDefault, DirectionAscend, DirectionDescend}
	ConvExcepts  = []ConvExcept{
		ConvExceptRangeHi, ConvExceptRangeLow, ConvExceptPrecision,
		ConvExceptTruncate, ConvExceptPInf, ConvExceptNInf, ConvExceptNaN,
	}
	ConvRets = []ConvRet{ConvRetAbort, ConvRetUnhandled, ConvRetHandled}
)
