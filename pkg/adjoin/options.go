package adjoin

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	context *Context
	logger  *zap.Logger
	once    bool
	name    string
}

// WithContext shares c between the composed functions. A nil c is ignored
// and the composition gets a fresh Context.
func WithContext(c *Context) Option {
	return func(o *options) {
		if c != nil {
			o.context = c
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOnce makes every synthetic continuation run the second stage at most
// once per call. Later invocations are dropped and logged.
func WithOnce() Option {
	return func(o *options) {
		o.once = true
	}
}

func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.context == nil {
		o.context = NewContext()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
