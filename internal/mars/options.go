package mars

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sends simulation debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
