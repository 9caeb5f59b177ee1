package h5t

import (
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/robert-malhotra/go-h5t/native"
)

// countingLibrary records every close it is asked to perform.
type countingLibrary struct {
	mu     sync.Mutex
	closed []native.ID
	err    error
}

func (l *countingLibrary) CloseDatatype(id native.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = append(l.closed, id)
	return l.err
}

func (l *countingLibrary) calls(id native.ID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.closed {
		if c == id {
			n++
		}
	}
	return n
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// dropWrapper allocates a wrapper and lets it go out of reach on return.
//
//go:noinline
func dropWrapper(id native.ID, markClosed bool, opts ...Option) {
	dt := Alloc(id, opts...)
	if markClosed {
		dt.SetClosed(true)
	}
}

// waitFinalized runs the collector until the wrapper around id reports
// finalization.
func waitFinalized(t *testing.T, logs *observer.ObservedLogs, id native.ID) {
	t.Helper()
	require.Eventually(t, func() bool {
		runtime.GC()
		return logs.FilterMessage("datatype finalized").
			FilterField(zap.Int64("id", int64(id))).Len() > 0
	}, 5*time.Second, 10*time.Millisecond, "wrapper %d never finalized", id)
}

func TestAllocReadBack(t *testing.T) {
	dt := Alloc(42, WithLibrary(&countingLibrary{}))

	assert.Equal(t, native.ID(42), dt.ID())
	assert.False(t, dt.Closed())
	assert.Equal(t, "Datatype(0x2a)", dt.String())
}

func TestPayloadLayout(t *testing.T) {
	var p payload
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.id))
	assert.Equal(t, unsafe.Sizeof(native.ID(0)), unsafe.Offsetof(p.closed))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(native.ID(0)))

	dt := Alloc(42, WithLibrary(&countingLibrary{}))
	base := unsafe.Pointer(dt.p)
	closedByte := (*byte)(unsafe.Add(base, unsafe.Sizeof(native.ID(0))))

	assert.Equal(t, native.ID(42), *(*native.ID)(base))
	assert.Equal(t, byte(0), *closedByte)

	dt.SetClosed(true)
	assert.Equal(t, byte(1), *closedByte)
	assert.Equal(t, native.ID(42), *(*native.ID)(base))
}

func TestFinalizerClosesOpenWrapper(t *testing.T) {
	lib := &countingLibrary{}
	log, logs := observedLogger()

	dropWrapper(42, false, WithLibrary(lib), WithLogger(log))
	waitFinalized(t, logs, 42)

	assert.Equal(t, 1, lib.calls(42))
}

func TestFinalizerSkipsClosedWrapper(t *testing.T) {
	lib := &countingLibrary{}
	log, logs := observedLogger()

	dropWrapper(7, true, WithLibrary(lib), WithLogger(log))
	waitFinalized(t, logs, 7)

	assert.Equal(t, 0, lib.calls(7))
	entry := logs.FilterMessage("datatype finalized").FilterField(zap.Int64("id", 7)).All()[0]
	assert.Equal(t, true, entry.ContextMap()["was_closed"])
}

func TestFinalizerSwallowsCloseError(t *testing.T) {
	lib := &countingLibrary{err: errors.New("H5Tclose failed")}
	log, logs := observedLogger()

	dropWrapper(99, false, WithLibrary(lib), WithLogger(log))
	waitFinalized(t, logs, 99)

	assert.Equal(t, 1, lib.calls(99))
	warnings := logs.FilterMessage("closing unreachable datatype").FilterField(zap.Int64("id", 99))
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, zapcore.WarnLevel, warnings.All()[0].Level)
}

func TestCloseThenFinalize(t *testing.T) {
	lib := &countingLibrary{}
	log, logs := observedLogger()

	func() {
		dt := Alloc(11, WithLibrary(lib), WithLogger(log))
		require.NoError(t, dt.Close())
		assert.True(t, dt.Closed())
		require.NoError(t, dt.Close())
	}()
	waitFinalized(t, logs, 11)

	assert.Equal(t, 1, lib.calls(11))
}

func TestCloseErrorLeavesWrapperOpen(t *testing.T) {
	lib := &countingLibrary{err: errors.New("boom")}
	dt := Alloc(5, WithLibrary(lib))

	err := dt.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing datatype 0x5")
	assert.False(t, dt.Closed())
}

func TestSetClosedIsMonotonic(t *testing.T) {
	dt := Alloc(3, WithLibrary(&countingLibrary{}))

	dt.SetClosed(false)
	assert.False(t, dt.Closed())

	dt.SetClosed(true)
	dt.SetClosed(true)
	assert.True(t, dt.Closed())

	assert.Panics(t, func() { dt.SetClosed(false) })
	assert.True(t, dt.Closed())
	assert.Equal(t, native.ID(3), dt.ID(), "identifier stays readable after close")
}

func TestPackageLogger(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	log, logs := observedLogger()
	SetLogger(log)

	dropWrapper(1234, true, WithLibrary(&countingLibrary{}))
	waitFinalized(t, logs, 1234)
}
