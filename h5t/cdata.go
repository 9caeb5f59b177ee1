package h5t

import (
	"sync/atomic"

	"github.com/robert-malhotra/go-h5t/native"
)

// CData is a read-only snapshot of the conversion-state record passed to a
// conversion function. It is valid only inside the callback that produced
// it; the library keeps ownership of the record itself.
type CData struct {
	command Cmd
	needBkg Bkg
	recalc  bool
	pers    Pers
	priv    []byte

	origin *native.CData
	live   atomic.Bool
}

// SnapshotCData marshals the record at p. The snapshot stays usable for
// Native until Release is called. A nil record yields a nil snapshot.
func SnapshotCData(p *native.CData) *CData {
	if p == nil {
		return nil
	}
	c := &CData{
		command: CmdFromNative(p.Command),
		needBkg: BkgFromNative(p.NeedBkg),
		recalc:  p.Recalc,
		pers:    PersFromNative(p.Pers),
		priv:    append([]byte(nil), p.Priv...),
		origin:  p,
	}
	c.live.Store(true)
	return c
}

// WithCData snapshots p for the duration of fn and releases the snapshot
// when fn returns, whatever the outcome.
func WithCData(p *native.CData, fn func(*CData) error) error {
	c := SnapshotCData(p)
	defer c.Release()
	return fn(c)
}

// Command is what the conversion function is asked to do.
func (c *CData) Command() Cmd { return c.command }

// NeedBkg is the background buffer policy.
func (c *CData) NeedBkg() Bkg { return c.needBkg }

// Recalc reports whether private data must be recalculated.
func (c *CData) Recalc() bool { return c.recalc }

// Pers is the persistence of the conversion path being run.
func (c *CData) Pers() Pers { return c.pers }

// Priv returns a copy of the conversion function's private state.
func (c *CData) Priv() []byte {
	return append([]byte(nil), c.priv...)
}

// Release ends the callback scope of the snapshot.
func (c *CData) Release() {
	if c != nil {
		c.live.Store(false)
	}
}

// Native hands back the record the snapshot was taken from. Only snapshots
// made by SnapshotCData whose scope is still open qualify; a CData built
// any other way cannot be turned into a native record.
func (c *CData) Native() (*native.CData, error) {
	if c == nil || c.origin == nil {
		return nil, ErrNotSnapshot
	}
	if !c.live.Load() {
		return nil, ErrSnapshotExpired
	}
	return c.origin, nil
}
