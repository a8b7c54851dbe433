// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/iterlat/concept"
	"github.com/katalvlaran/iterlat/dispatch"
)

// Option configures optional behavior of the dispatching algorithms.
// Use with Copy(in, inEnd, out, outEnd, opts...).
type Option func(*Options)

// Options holds configurable parameters for dispatching algorithms.
type Options struct {
	// Elementwise, if true, always runs the least specialized body even when a
	// faster one is eligible. Results are identical for non-overlapping ranges.
	Elementwise bool

	// OnDispatch, if non-nil, is invoked once per call with the operation
	// name and the name of the body that ran.
	OnDispatch func(op, impl string)
}

// DefaultOptions returns Options with:
//   - fast paths enabled (Elementwise = false)
//   - no dispatch hook
func DefaultOptions() Options {
	return Options{
		Elementwise: false,
		OnDispatch:  nil,
	}
}

// WithElementwise returns an Option that disables specialized bodies.
func WithElementwise() Option {
	return func(o *Options) {
		o.Elementwise = true
	}
}

// WithOnDispatch returns an Option that installs fn as a dispatch hook.
func WithOnDispatch(fn func(op, impl string)) Option {
	return func(o *Options) {
		o.OnDispatch = fn
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// pick returns the implementation of t to run for the given argument
// capabilities. A failed Select cannot happen for calls that compiled, but
// falls back to the base body all the same.
func pick[K comparable](t *dispatch.Table[K], o Options, have ...concept.Caps) dispatch.Impl[K] {
	if o.Elementwise {
		return t.Base()
	}
	im, err := t.Select(have...)
	if err != nil {
		return t.Base()
	}

	return im
}

func (o Options) report(op, impl string) {
	if o.OnDispatch != nil {
		o.OnDispatch(op, impl)
	}
}
