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

package graphql

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// ExecutionContext carries the state shared by every field of one request. Its lifetime is the
// request's async graph; the only member mutated concurrently is the error sink.
type ExecutionContext struct {
	// Ctx is the request context; resolvers performing I/O should honor its cancellation.
	Ctx context.Context

	// Schema the plan was built against; immutable after the compile pass.
	Schema *Schema

	// Plan being executed
	Plan *ExecutionPlan

	// RootValue is the parent value of the top-level fields.
	RootValue interface{}

	// Variables are the request's coerced variables.
	Variables VariableValues

	// Errors is the append-only request error sink.
	Errors *ErrorList

	// Tracer, when non-nil, receives a span per request and per resolved field.
	Tracer trace.Tracer
}

// ResolveFieldContext carries the state for resolving one field. A fresh one is created per field;
// it is cheap and never shared across fields.
type ResolveFieldContext struct {
	// Info is the plan node being executed.
	Info *ExecutionInfo

	// Execution is the owning request state.
	Execution *ExecutionContext

	// ReturnType of the field
	ReturnType Type

	// ParentType is the Object the field is selected on.
	ParentType *Object

	// Schema shortcut
	Schema *Schema

	// Args are the field's coerced arguments.
	Args ArgumentValues

	// Variables shortcut
	Variables VariableValues
}

// Context returns the request context for use at blocking points inside resolvers.
func (ctx *ResolveFieldContext) Context() context.Context {
	return ctx.Execution.Ctx
}

// AddError appends an error to the request error sink.
func (ctx *ResolveFieldContext) AddError(err error) {
	ctx.Execution.Errors.Append(err)
}
