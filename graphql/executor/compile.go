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
	"errors"
	"fmt"

	"github.com/selenelab/selene/asyncval"
	"github.com/selenelab/selene/graphql"
)

// CompileSchema is the one-shot compile pass over a schema's type map. For every Object field it
// fills the Execute slot with the compiled executor and every argument's ExecuteInput slot with
// its literal coercer; for every InputObject field it fills the ExecuteInput slot. Other type
// kinds need no compilation. The pass is idempotent but intended to run exactly once, after which
// the schema is frozen for execution.
func CompileSchema(schema *graphql.Schema) {
	for _, t := range schema.TypeMap() {
		switch t := t.(type) {
		case *graphql.Object:
			for _, field := range t.Fields {
				field.Execute = compileField(t, field)
				for _, arg := range field.Args {
					prefix := fmt.Sprintf("Object '%s': field '%s': argument '%s': ", t.Name, field.Name, arg.Name)
					arg.ExecuteInput = graphql.CompileByType(prefix, arg.Type)
				}
			}

		case *graphql.InputObject:
			for _, field := range t.Fields {
				prefix := fmt.Sprintf("Input object '%s': in field '%s': ", t.Name, field.Name)
				field.ExecuteInput = graphql.CompileByType(prefix, field.Type)
			}
		}
	}
}

// compileField combines a field's resolver with the type-directed completion into a single lazy
// executor. The returned computation is cold: a Sequential plan relies on that to keep a
// mutation's resolver from starting before its predecessor completed.
func compileField(parentType *graphql.Object, field *graphql.FieldDef) graphql.FieldExecuteFunc {
	switch resolve := field.Resolve.(type) {
	case graphql.ResolveFunc:
		return func(ctx *graphql.ResolveFieldContext, source interface{}) asyncval.Value {
			return asyncval.Defer(func(goCtx context.Context) (interface{}, error) {
				value, err := runSyncResolver(ctx, resolve, source)
				return finishField(goCtx, ctx, value, err)
			})
		}

	case graphql.AsyncResolveFunc:
		return func(ctx *graphql.ResolveFieldContext, source interface{}) asyncval.Value {
			return asyncval.Defer(func(goCtx context.Context) (interface{}, error) {
				pending, err := startAsyncResolver(ctx, resolve, source)

				var value interface{}
				if err == nil && pending != nil {
					value, err = pending.Await(goCtx)
				}
				return finishField(goCtx, ctx, value, err)
			})
		}
	}

	fieldName, parentName := field.Name, parentType.Name
	return func(ctx *graphql.ResolveFieldContext, source interface{}) asyncval.Value {
		return asyncval.Err(graphql.NewInternalError(
			`field "%s" of object "%s" has no resolver and cannot be executed`, fieldName, parentName))
	}
}

func runSyncResolver(
	ctx *graphql.ResolveFieldContext,
	resolve graphql.ResolveFunc,
	source interface{}) (value interface{}, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = resolverPanicError(ctx, r)
		}
	}()
	return resolve(ctx, source)
}

func startAsyncResolver(
	ctx *graphql.ResolveFieldContext,
	resolve graphql.AsyncResolveFunc,
	source interface{}) (value asyncval.Value, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = resolverPanicError(ctx, r)
		}
	}()
	return resolve(ctx, source), nil
}

func resolverPanicError(ctx *graphql.ResolveFieldContext, recovered interface{}) error {
	return graphql.NewError(`panic while resolving field "%s": %v`, ctx.Info.Identifier, recovered)
}

// finishField implements the shared tail of every compiled executor: resolver errors are caught
// here (aggregates flattened, one sink entry per cause) and yield a null field value; a nullish
// resolver result yields null without running completion; anything else is completed against the
// field's return type. Completion failures flow out as errors so executeFields can tell field
// errors from structural ones.
func finishField(
	goCtx context.Context,
	ctx *graphql.ResolveFieldContext,
	value interface{},
	err error) (interface{}, error) {

	if err != nil {
		if graphql.IsInternal(err) {
			return nil, err
		}
		appendFieldErrors(ctx, err)
		return nil, nil
	}

	if graphql.IsNullish(value) {
		return nil, nil
	}

	return completeValue(ctx, ctx.ReturnType, ctx.Info.Kind, value).Await(goCtx)
}

// appendFieldErrors adds a caught field error to the request sink. A MultiError is unpacked so
// that every cause becomes an independent entry; one level of nesting is unpacked.
func appendFieldErrors(ctx *graphql.ResolveFieldContext, err error) {
	var multi graphql.MultiError
	if errors.As(err, &multi) {
		for _, cause := range multi.Causes() {
			ctx.AddError(cause)
		}
		return
	}
	ctx.AddError(err)
}
