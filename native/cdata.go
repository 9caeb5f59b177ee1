package native

// CData is the conversion-state record (H5T_cdata_t) the library hands to
// a conversion function. The library owns it; Priv is the function's
// private state and is never interpreted here.
type CData struct {
	Command Cmd  // what the conversion function should do
	NeedBkg Bkg  // is the background buffer needed?
	Recalc  bool // recalculate private data
	Pers    Pers // hard or soft path
	Priv    []byte
}
