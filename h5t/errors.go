package h5t

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-h5t/internal/ident"
)

// Common errors
var (
	ErrClosed          = errors.New("datatype is closed")
	ErrNotSnapshot     = errors.New("conversion data is not a snapshot of a native record")
	ErrSnapshotExpired = errors.New("conversion data snapshot outlived its callback")
	ErrNotApplicable   = errors.New("property not defined for this datatype class")
	ErrMalformed       = errors.New("malformed datatype message")
	ErrUnsupported     = errors.New("unsupported by this library")
	ErrUnknownID       = ident.ErrUnknownID
	ErrWrongType       = ident.ErrWrongType
)

// InvariantError is the panic value raised when a tag or native enumerator
// lies outside its family. It signals a programming error, never a runtime
// condition, and is not meant to be recovered.
type InvariantError struct {
	Family string
	Value  int64
	Native bool // Value is a native enumerator rather than a tag ordinal
}

func (e *InvariantError) Error() string {
	side := "tag"
	if e.Native {
		side = "native value"
	}
	return fmt.Sprintf("h5t: %s %d outside family %s", side, e.Value, e.Family)
}

func badTag(family string, v int) *InvariantError {
	return &InvariantError{Family: family, Value: int64(v)}
}

func badNative(family string, v int32) *InvariantError {
	return &InvariantError{Family: family, Value: int64(v), Native: true}
}
