package h5t

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-h5t/native"
)

// payload is the wrapper's storage block. The identifier occupies the
// leading machine word and the closed flag the byte right after it; code
// sharing the block relies on that layout.
type payload struct {
	id     native.ID
	closed bool
}

// Datatype wraps an HDF5 datatype identifier. When the wrapper becomes
// unreachable its identifier is closed, unless it was already marked
// closed.
//
// The closed flag is a plain byte. Callers that close one wrapper from
// several goroutines must serialize those calls.
type Datatype struct {
	p   *payload
	lib Library
	log *zap.Logger
}

// cleanup is everything the finalizer needs. It must not refer back to
// the Datatype, or the wrapper would never become unreachable.
type cleanup struct {
	p   *payload
	lib Library
	log *zap.Logger
}

// Alloc wraps id in a new Datatype with closed set to false and registers
// its finalizer. The wrapper owns id: it does not add a reference, so
// wrapping an identifier twice without H5Iinc_ref leads to a double close.
func Alloc(id native.ID, opts ...Option) *Datatype {
	return newDatatype(id, applyOptions(opts))
}

func newDatatype(id native.ID, o *options) *Datatype {
	dt := &Datatype{
		p:   &payload{id: id},
		lib: o.library,
		log: o.logger,
	}
	runtime.AddCleanup(dt, finalize, cleanup{p: dt.p, lib: o.library, log: o.logger})
	return dt
}

// finalize runs once, after the wrapper is unreachable. Close errors cannot
// be returned from here, so they are logged and dropped.
func finalize(c cleanup) {
	if !c.p.closed {
		if err := c.lib.CloseDatatype(c.p.id); err != nil {
			c.log.Warn("closing unreachable datatype",
				zap.Int64("id", int64(c.p.id)),
				zap.Error(err))
		}
	}
	c.log.Debug("datatype finalized",
		zap.Int64("id", int64(c.p.id)),
		zap.Bool("was_closed", c.p.closed))
}

// ID returns the wrapped identifier, whether or not it has been closed.
func (dt *Datatype) ID() native.ID {
	return dt.p.id
}

// Closed reports whether the identifier has been released.
func (dt *Datatype) Closed() bool {
	return dt.p.closed
}

// SetClosed records that the identifier has been released, typically right
// after a successful H5Tclose. The flag never goes back to false; trying to
// clear it panics.
func (dt *Datatype) SetClosed(closed bool) {
	if dt.p.closed && !closed {
		panic(fmt.Sprintf("h5t: datatype %#x: closed flag cannot be cleared", int64(dt.p.id)))
	}
	dt.p.closed = closed
}

// Close releases the identifier through the library and marks the wrapper
// closed. Closing a closed wrapper is a no-op.
func (dt *Datatype) Close() error {
	defer runtime.KeepAlive(dt)

	if dt.p.closed {
		return nil
	}
	if err := dt.lib.CloseDatatype(dt.p.id); err != nil {
		return fmt.Errorf("closing datatype %#x: %w", int64(dt.p.id), err)
	}
	dt.p.closed = true
	return nil
}

// String implements fmt.Stringer.
func (dt *Datatype) String() string {
	if dt.p.closed {
		return fmt.Sprintf("Datatype(%#x, closed)", int64(dt.p.id))
	}
	return fmt.Sprintf("Datatype(%#x)", int64(dt.p.id))
}
