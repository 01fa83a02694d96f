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

package executor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/selenelab/selene/asyncval"
	"github.com/selenelab/selene/graphql"
)

// traceRequest wraps the whole plan execution in a "graphql.evaluate" span when a tracer is
// installed on the execution context.
func traceRequest(exec *graphql.ExecutionContext, value asyncval.Value) asyncval.Value {
	if exec.Tracer == nil {
		return value
	}

	attrs := []attribute.KeyValue{
		attribute.String("graphql.operation.strategy", exec.Plan.Strategy.String()),
	}
	if op := exec.Plan.Operation; op != nil {
		attrs = append(attrs,
			attribute.String("graphql.operation.type", string(op.Operation)),
			attribute.String("graphql.operation.name", op.Name),
		)
	}
	return traceValue(exec.Tracer, "graphql.evaluate", attrs, value)
}

// traceField wraps a single field execution in a "graphql.resolve" span.
func traceField(
	exec *graphql.ExecutionContext,
	ctx *graphql.ResolveFieldContext,
	value asyncval.Value) asyncval.Value {

	if exec.Tracer == nil {
		return value
	}

	attrs := []attribute.KeyValue{
		attribute.String("graphql.field.name", ctx.Info.Definition.Name),
		attribute.String("graphql.field.alias", ctx.Info.Identifier),
		attribute.String("graphql.field.parent", ctx.ParentType.Name),
	}
	return traceValue(exec.Tracer, "graphql.resolve", attrs, value)
}

func traceValue(
	tracer trace.Tracer,
	name string,
	attrs []attribute.KeyValue,
	value asyncval.Value) asyncval.Value {

	return asyncval.Defer(func(goCtx context.Context) (interface{}, error) {
		goCtx, span := tracer.Start(goCtx, name, trace.WithAttributes(attrs...))
		defer span.End()

		result, err := value.Await(goCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return result, err
	})
}
