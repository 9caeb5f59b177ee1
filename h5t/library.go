package h5t

import (
	"github.com/robert-malhotra/go-h5t/internal/ident"
	"github.com/robert-malhotra/go-h5t/native"
)

// Library is the part of the HDF5 library a Datatype wrapper calls out to.
type Library interface {
	// CloseDatatype releases a datatype identifier (H5Tclose).
	CloseDatatype(id native.ID) error
}

var defaultRegistry = ident.New()

// DefaultLibrary returns the process-wide in-memory library. Wrappers use
// it unless WithLibrary says otherwise.
func DefaultLibrary() Library {
	return defaultRegistry
}

// NewLibrary returns a fresh in-memory library with its own identifier
// space.
func NewLibrary() Library {
	return ident.New()
}

// IsValid reports whether id is registered with lib (H5Iis_valid).
// Libraries other than the in-memory one always report false.
func IsValid(lib Library, id native.ID) bool {
	reg, ok := lib.(*ident.Registry)
	return ok && reg.Valid(id)
}

// RefCount returns the reference count of id in lib (H5Iget_ref), or 0.
func RefCount(lib Library, id native.ID) int {
	reg, ok := lib.(*ident.Registry)
	if !ok {
		return 0
	}
	return reg.RefCount(id)
}
