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

// Package executor evaluates execution plans against a compiled schema.
//
// A schema goes through CompileSchema exactly once; the pass fills every field's Execute slot with
// a lazy executor combining the user resolver and value completion, and every input position's
// ExecuteInput slot with a literal coercer. Evaluate then runs a plan: variables are coerced up
// front, top-level fields are collected under the plan's strategy (parallel for queries,
// sequential for mutations), sibling fields inside a selection always run concurrently, and every
// field error is isolated to a null entry while its siblings complete.
package executor
