package native

// Declared domains, in header order. Each list holds every enumerator the
// header defines for its type, sentinels included.
var (
	ClassValues = []Class{
		NoClass, Integer, Float, Time, String, Bitfield, Opaque,
		Compound, Reference, Enum, Vlen, Array,
	}

	OrderValues = []Order{OrderError, OrderLE, OrderBE, OrderVAX, OrderMixed, OrderNone}

	SignValues = []Sign{SgnError, SgnNone, Sgn2}

	NormValues = []Norm{NormError, NormImplied, NormMSBSet, NormNone}

	CsetValues = []Cset{
		CsetError, CsetASCII, CsetUTF8,
		CsetReserved2, CsetReserved3, CsetReserved4, CsetReserved5,
		CsetReserved6, CsetReserved7, CsetReserved8, CsetReserved9,
		CsetReserved10, CsetReserved11, CsetReserved12, CsetReserved13,
		CsetReserved14, CsetReserved15,
	}

	StrValues = []Str{
		StrError, StrNullTerm, StrNullPad, StrSpacePad,
		StrReserved3, StrReserved4, StrReserved5, StrReserved6,
		StrReserved7, StrReserved8, StrReserved9, StrReserved10,
		StrReserved11, StrReserved12, StrReserved13, StrReserved14,
		StrReserved15,
	}

	PadValues = []Pad{PadError, PadZero, PadOne, PadBackground}

	CmdValues = []Cmd{ConvInit, ConvConv, ConvFree}

	BkgValues = []Bkg{BkgNo, BkgTemp, BkgYes}

	PersValues = []Pers{PersDontCare, PersHard, PersSoft}

	DirectionValues = []Direction{DirDefault, DirAscend, DirDescend}

	ConvExceptValues = []ConvExcept{
		ConvExceptRangeHi, ConvExceptRangeLow, ConvExceptPrecision,
		ConvExceptTruncate, ConvExceptPInf, ConvExceptNInf, ConvExceptNaN,
	}

	ConvRetValues = []ConvRet{ConvAbort, ConvUnhandled, ConvHandled}
)
