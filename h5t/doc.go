// Package h5t binds Go values to the HDF5 datatype (H5T) API.
//
// It covers three things.
//
// # Datatype handles
//
// A [Datatype] wraps a datatype identifier together with a closed flag.
// [Alloc] creates the wrapper and registers a cleanup that closes the
// identifier through the configured [Library] once the wrapper becomes
// unreachable, unless the flag says it was closed already:
//
//	dt := h5t.Alloc(id)
//	...
//	if err := dt.Close(); err != nil { ... } // explicit close sets the flag
//
// Close failures inside the cleanup cannot be reported to anyone; they are
// logged on the zap logger given by [WithLogger] or [SetLogger].
//
// # Enumerations
//
// Each H5T enumeration has a tag type here ([Class], [Order], [Sign],
// [Norm], [Cset], [Str], [Pad], [Cmd], [Bkg], [Pers], [Direction],
// [ConvExcept], [ConvRet]) and an integer type in package native holding
// the header values. XFromNative and the Native method convert between the
// two. Every enumerator the header defines, error sentinels included, has
// its own tag:
//
//	h5t.SignFromNative(native.SgnError) // h5t.SignError
//	h5t.ClassNoClass.Native()           // native.NoClass (-1)
//
// Tag ordinals are stable. New tags are only appended.
//
// # Conversion data
//
// [SnapshotCData] turns the conversion-state record given to a conversion
// function into a read-only [CData]. [CData.Native] gives the original
// record back while the snapshot is live; a CData assembled by hand is
// refused with [ErrNotSnapshot].
//
//	err := h5t.WithCData(rec, func(cd *h5t.CData) error {
//		if cd.Command() == h5t.CmdInit { ... }
//		return nil
//	})
//
// [Decode] and the property getters on [Datatype] work on encoded datatype
// messages held by the in-memory library. [Datatype.NativeType] and
// [Datatype.GoType] find the machine and Go types matching a datatype.
package h5t
