package sorter

import (
	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/packed"
)

type options struct {
	logger    *docvalues.Logger
	blockSize int
}

// Option configures Sorter and MultiSorter construction.
type Option func(*options)

// WithLogger configures the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *docvalues.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = docvalues.NoopLogger()
		}
		o.logger = l
	}
}

// WithBlockSize configures the block size of the codec streams backing the
// produced doc maps.
func WithBlockSize(blockSize int) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

func defaultOptions() options {
	return options{
		logger:    docvalues.NoopLogger(),
		blockSize: packed.DefaultBlockSize,
	}
}
