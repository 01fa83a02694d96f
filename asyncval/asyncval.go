/**
 * Copyright (c) 2026, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package asyncval

import (
	"context"
	"sync/atomic"
)

// A Value represents a computation whose result may not be known yet. It fuses a
// synchronously-known case (Ready, Err) with a deferred case (Defer) so that code paths dealing
// with already-available values never pay any scheduling cost.
//
// Deferred values are cold: the underlying computation does not start until the first call to
// Await. The result is memoized and every subsequent Await observes the same value, which makes a
// Value safe to share between goroutines.
type Value interface {
	// Await blocks until the value is available (or ctx is done for waiters that did not start the
	// computation) and returns it. Await may be called any number of times from any goroutine.
	Await(ctx context.Context) (interface{}, error)
}

//===----------------------------------------------------------------------------------------====//
// Ready and Err
//===----------------------------------------------------------------------------------------====//

type readyValue struct {
	value interface{}
}

// Await implements Value.
func (v readyValue) Await(context.Context) (interface{}, error) {
	return v.value, nil
}

type errValue struct {
	err error
}

// Await implements Value.
func (v errValue) Await(context.Context) (interface{}, error) {
	return nil, v.err
}

// Ready creates a Value that is immediately resolved to the given value.
func Ready(value interface{}) Value {
	return readyValue{value}
}

// Err creates a Value that is immediately failed with the given error.
func Err(err error) Value {
	return errValue{err}
}

// IsResolved reports whether value is a synchronously-known Value (created by Ready or Err) whose
// Await never blocks.
func IsResolved(value Value) bool {
	switch value.(type) {
	case readyValue, errValue:
		return true
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// Defer
//===----------------------------------------------------------------------------------------====//

type deferredValue struct {
	compute func(context.Context) (interface{}, error)

	// 0: not started, 1: running or finished. Transition is made at most once with a CAS; the
	// winning goroutine runs compute and closes done.
	started int32
	done    chan struct{}

	value interface{}
	err   error
}

// Await implements Value.
func (v *deferredValue) Await(ctx context.Context) (interface{}, error) {
	if atomic.CompareAndSwapInt32(&v.started, 0, 1) {
		v.value, v.err = v.compute(ctx)
		// Release compute so captured state can be collected while the memoized result lives on.
		v.compute = nil
		close(v.done)
		return v.value, v.err
	}

	select {
	case <-v.done:
		return v.value, v.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Defer creates a Value backed by compute. The computation is started by the first Await (in the
// awaiting goroutine) and runs at most once; concurrent awaiters block until it finishes.
func Defer(compute func(context.Context) (interface{}, error)) Value {
	return &deferredValue{
		compute: compute,
		done:    make(chan struct{}),
	}
}

//===----------------------------------------------------------------------------------------====//
// Combinators
//===----------------------------------------------------------------------------------------====//

// Map transforms the result of value with f. A failed value passes through untouched. When value
// is already resolved, f is applied without deferral.
func Map(value Value, f func(interface{}) (interface{}, error)) Value {
	switch v := value.(type) {
	case readyValue:
		mapped, err := f(v.value)
		if err != nil {
			return Err(err)
		}
		return Ready(mapped)

	case errValue:
		return v
	}

	return Defer(func(ctx context.Context) (interface{}, error) {
		result, err := value.Await(ctx)
		if err != nil {
			return nil, err
		}
		return f(result)
	})
}

// Bind chains value into the Value produced by f. A failed value passes through untouched. When
// value is already resolved, f is invoked without deferral (though the Value it returns may itself
// be deferred).
func Bind(value Value, f func(interface{}) Value) Value {
	switch v := value.(type) {
	case readyValue:
		return f(v.value)

	case errValue:
		return v
	}

	return Defer(func(ctx context.Context) (interface{}, error) {
		result, err := value.Await(ctx)
		if err != nil {
			return nil, err
		}
		return f(result).Await(ctx)
	})
}

// Rescue catches a failure of value and replaces it with the Value supplied by f. A successful
// value passes through untouched. It is the primitive used to isolate per-field errors: the
// replacement typically records the error somewhere and resolves to nil.
func Rescue(value Value, f func(error) Value) Value {
	switch v := value.(type) {
	case readyValue:
		return v

	case errValue:
		return f(v.err)
	}

	return Defer(func(ctx context.Context) (interface{}, error) {
		result, err := value.Await(ctx)
		if err != nil {
			return f(err).Await(ctx)
		}
		return result, nil
	})
}
