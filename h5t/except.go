package h5t

import "github.com/robert-malhotra/go-h5t/native"

// ExceptFunc handles an exception raised while converting one element
// (H5T_conv_except_func_t). src and dst point at the element in the source
// and destination buffers. Returning ConvRetHandled means the handler wrote
// dst itself.
type ExceptFunc func(except ConvExcept, srcID, dstID native.ID, src, dst []byte) ConvRet

// Invoke is the native entry point: it marshals the exception kind to its
// tag, runs f, and marshals the answer back. A nil handler leaves every
// exception unhandled.
func (f ExceptFunc) Invoke(except native.ConvExcept, srcID, dstID native.ID, src, dst []byte) native.ConvRet {
	if f == nil {
		return native.ConvUnhandled
	}
	return f(ConvExceptFromNative(except), srcID, dstID, src, dst).Native()
}
