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
	"sync"
)

// collectResolved assembles results when every member of values is synchronously known. It returns
// false when a deferred member is found.
func collectResolved(values []Value) (Value, bool) {
	results := make([]interface{}, len(values))
	for i, value := range values {
		switch v := value.(type) {
		case readyValue:
			results[i] = v.value
		case errValue:
			return v, true
		default:
			return nil, false
		}
	}
	return Ready(results), true
}

// CollectParallel aggregates values into a single Value resolving to an []interface{} that
// preserves the input order. Deferred members are forced concurrently, one goroutine each. The
// first failure fails the aggregate and cancels the context seen by in-flight members.
func CollectParallel(values []Value) Value {
	if len(values) == 0 {
		return Ready([]interface{}{})
	}
	if collected, ok := collectResolved(values); ok {
		return collected
	}

	return Defer(func(ctx context.Context) (interface{}, error) {
		groupCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		var (
			results  = make([]interface{}, len(values))
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)

		for i, value := range values {
			// Resolved members need no goroutine.
			switch v := value.(type) {
			case readyValue:
				results[i] = v.value
				continue
			case errValue:
				mu.Lock()
				if firstErr == nil {
					firstErr = v.err
					cancel()
				}
				mu.Unlock()
				continue
			}

			wg.Add(1)
			go func(i int, value Value) {
				defer wg.Done()
				result, err := value.Await(groupCtx)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				results[i] = result
			}(i, value)
		}

		wg.Wait()

		if firstErr != nil {
			return nil, firstErr
		}
		return results, nil
	})
}

// CollectSequential aggregates values into a single Value resolving to an []interface{} in input
// order. Member n+1 is not forced before member n has fully completed, which makes it the
// combinator for serially-executed top-level mutation fields.
func CollectSequential(values []Value) Value {
	if len(values) == 0 {
		return Ready([]interface{}{})
	}
	if collected, ok := collectResolved(values); ok {
		return collected
	}

	return Defer(func(ctx context.Context) (interface{}, error) {
		results := make([]interface{}, len(values))
		for i, value := range values {
			result, err := value.Await(ctx)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
		return results, nil
	})
}
