package slist

import "go.uber.org/zap"

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	alloc  Allocator
	logger *zap.Logger
}

func newDefaultListOptions() listOptions {
	return listOptions{
		alloc:  heapAllocator{},
		logger: zap.NewNop(),
	}
}

// WithAllocator option configures the list to reserve node memory from alloc.
//
// The nil value configures the default allocator which never fails.
func WithAllocator(alloc Allocator) Option {
	return funcOption(func(opts *listOptions) {
		if alloc == nil {
			opts.alloc = heapAllocator{}
			return
		}
		opts.alloc = alloc
	})
}

// WithLogger option configures the list to log debug events to logger.
//
// The nil value disables logging.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *listOptions) {
		if logger == nil {
			opts.logger = zap.NewNop()
			return
		}
		opts.logger = logger
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
