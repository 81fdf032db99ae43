// Package mergesort provides tunable options and error definitions
// for the recursive merge sort engine.
package mergesort

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for merge sort execution.
var (
	// ErrTypeKind is returned when two elements cannot be ordered against each other.
	ErrTypeKind = errors.New("mergesort: elements are not mutually comparable")

	// ErrInvalidArgument is returned when the input is not a sequence.
	ErrInvalidArgument = errors.New("mergesort: input is not a sequence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mergesort: invalid option supplied")

	// ErrNilComparator is returned by SortWith when no comparator is given.
	ErrNilComparator = errors.New("mergesort: comparator is nil")
)

// Option configures Sort behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a sort.
type Options struct {
	// Ctx allows cancellation of long sorts. It is checked once per merge.
	Ctx context.Context

	// ParallelThreshold, if > 0, sorts the two halves of any range at least
	// this long on separate goroutines. 0 keeps the sort sequential.
	ParallelThreshold int

	// MaxGoroutines bounds the number of extra goroutines alive at once
	// when ParallelThreshold is enabled. Ranges that cannot get a slot
	// are sorted on the calling goroutine.
	MaxGoroutines int

	// OnMerge is called before each merge with the recursion depth
	// (0 for the outermost merge) and the lengths of both halves.
	// It may be called concurrently when ParallelThreshold is set.
	OnMerge func(depth, left, right int)

	// internal error recorded during option parsing
	err error
}

// defaultMaxGoroutines is the goroutine bound used when parallelism is
// enabled without an explicit WithMaxGoroutines.
const defaultMaxGoroutines = 64

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential execution (ParallelThreshold == 0)
//   - defaultMaxGoroutines extra goroutines once parallelism is enabled
//   - no-op OnMerge hook.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		ParallelThreshold: 0,
		MaxGoroutines:     defaultMaxGoroutines,
		OnMerge:           func(int, int, int) {},
		err:               nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallel enables parallel recursion for ranges of at least n elements.
//
//	n > 1:  fork halves of ranges with len >= n
//	n == 0: explicit sequential mode
//	n < 0 or n == 1: invalid option → ErrOptionViolation
func WithParallel(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: parallel threshold cannot be negative (%d)", ErrOptionViolation, n)
		case n == 1:
			o.err = fmt.Errorf("%w: parallel threshold must be 0 or at least 2 (%d)", ErrOptionViolation, n)
		default:
			o.ParallelThreshold = n
		}
	}
}

// WithMaxGoroutines bounds the extra goroutines used by WithParallel.
// n must be positive.
func WithMaxGoroutines(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: goroutine bound must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGoroutines = n
	}
}

// WithOnMerge registers a callback to run before every merge.
func WithOnMerge(fn func(depth, left, right int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports the last
// recorded violation, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
