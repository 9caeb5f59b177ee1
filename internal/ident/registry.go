// Package ident issues and reference-counts HDF5 object identifiers.
package ident

import (
	"errors"
	"fmt"
	"sync"

	"github.com/robert-malhotra/go-h5t/native"
)

// Type is the identifier type stored in the high bits of an ID (H5I_type_t).
type Type uint8

const (
	TypeFile      Type = 1
	TypeGroup     Type = 2
	TypeDatatype  Type = 3
	TypeDataspace Type = 4
	TypeDataset   Type = 5
	TypeMap       Type = 6
	TypeAttr      Type = 7
)

// ID layout: one sign bit, seven type bits, 56 serial bits.
const (
	typeBits = 7
	idBits   = 64 - (typeBits + 1)
	typeMask = 1<<typeBits - 1
	idMask   = 1<<idBits - 1
)

// Common errors
var (
	ErrUnknownID = errors.New("identifier is not registered")
	ErrWrongType = errors.New("identifier has the wrong type")
)

// MakeID packs a type and serial number into an identifier.
func MakeID(t Type, serial uint64) native.ID {
	return native.ID((int64(t)&typeMask)<<idBits | int64(serial&idMask))
}

// TypeOf extracts the type bits of an identifier.
func TypeOf(id native.ID) Type {
	if id <= 0 {
		return 0
	}
	return Type((int64(id) >> idBits) & typeMask)
}

type entry struct {
	obj  any
	refs int
}

// Registry maps identifiers to objects. It is safe for concurrent use.
type Registry struct {
	mu sync.Mutex

	// next serial per type
	next    map[Type]uint64
	entries map[native.ID]*entry

	stats Stats
}

// Stats contains registry statistics.
type Stats struct {
	Registered uint64 // IDs ever issued
	Released   uint64 // IDs whose last reference was dropped
	Live       int    // IDs currently registered
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		next:    make(map[Type]uint64),
		entries: make(map[native.ID]*entry),
	}
}

// Register stores obj under a fresh identifier of type t with a reference
// count of one.
func (r *Registry) Register(t Type, obj any) native.ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next[t]++
	id := MakeID(t, r.next[t])
	r.entries[id] = &entry{obj: obj, refs: 1}

	r.stats.Registered++
	r.stats.Live = len(r.entries)
	return id
}

// Object returns the object registered under id, checking its type.
func (r *Registry) Object(id native.ID, t Type) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookupLocked(id, t)
	if err != nil {
		return nil, err
	}
	return e.obj, nil
}

// Valid reports whether id is currently registered.
func (r *Registry) Valid(id native.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]
	return ok
}

// RefCount returns the reference count of id, or 0 if it is not registered.
func (r *Registry) RefCount(id native.ID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e.refs
	}
	return 0
}

// IncRef adds a reference to id and returns the new count.
func (r *Registry) IncRef(id native.ID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookupLocked(id, 0)
	if err != nil {
		return 0, err
	}
	e.refs++
	return e.refs, nil
}

// DecRef drops a reference to id and returns the remaining count. The
// entry is removed when the count reaches zero.
func (r *Registry) DecRef(id native.ID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.decRefLocked(id, 0)
}

// CloseDatatype releases one reference to a datatype identifier (H5Tclose).
func (r *Registry) CloseDatatype(id native.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.decRefLocked(id, TypeDatatype)
	return err
}

// Stats returns a snapshot of the registry statistics.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stats
}

func (r *Registry) decRefLocked(id native.ID, t Type) (int, error) {
	e, err := r.lookupLocked(id, t)
	if err != nil {
		return 0, err
	}
	e.refs--
	if e.refs == 0 {
		delete(r.entries, id)
		r.stats.Released++
		r.stats.Live = len(r.entries)
	}
	return e.refs, nil
}

// lookupLocked finds id; a zero t matches any type.
func (r *Registry) lookupLocked(id native.ID, t Type) (*entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("id %#x: %w", int64(id), ErrUnknownID)
	}
	if t != 0 && TypeOf(id) != t {
		return nil, fmt.Errorf("id %#x has type %d, want %d: %w", int64(id), TypeOf(id), t, ErrWrongType)
	}
	return e, nil
}
