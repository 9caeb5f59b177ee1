// Package ident issues and reference-counts HDF5 object identifiers.
//
// HDF5 hands out every object as an hid_t whose high bits name the object
// type and whose low bits are a per-type serial number. This package
// reproduces that encoding so identifiers produced here are
// indistinguishable in shape from the library's own:
//
//	bit 63     : sign (always 0 for valid IDs)
//	bits 56..62: type (H5I_type_t, e.g. 3 for datatypes)
//	bits 0..55 : serial
//
// # Registry
//
// A [Registry] maps identifiers to objects and keeps a reference count per
// identifier, the way H5Iinc_ref/H5Idec_ref do. The last [Registry.DecRef]
// removes the entry. [Registry.CloseDatatype] is the datatype close
// routine: it checks the type bits before dropping a reference.
//
//	reg := ident.New()
//	id := reg.Register(ident.TypeDatatype, msg)
//	reg.IncRef(id)          // second owner
//	reg.CloseDatatype(id)   // refs: 1
//	reg.CloseDatatype(id)   // refs: 0, entry removed
package ident
