package h5t

import "go.uber.org/zap"

// Option configures how a Datatype wrapper is allocated.
type Option func(*options)

type options struct {
	library Library
	logger  *zap.Logger
}

func defaultOptions() *options {
	return &options{
		library: DefaultLibrary(),
		logger:  Logger(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLibrary sets the library whose close routine releases the identifier.
func WithLibrary(lib Library) Option {
	return func(o *options) {
		if lib != nil {
			o.library = lib
		}
	}
}

// WithLogger sets the logger used for lifecycle events of the wrapper.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
