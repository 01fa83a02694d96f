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
	"reflect"

	"github.com/selenelab/selene/asyncval"
	"github.com/selenelab/selene/graphql"
)

// completeValue implements value completion: the recursive, type-directed coercion of a raw
// resolver output into the GraphQL output shape described by the return type and the plan kind.
//
// Reference: https://spec.graphql.org/June2018/#sec-Value-Completion
func completeValue(
	ctx *graphql.ResolveFieldContext,
	returnType graphql.Type,
	kind graphql.PlanKind,
	value interface{}) asyncval.Value {

	// A resolver (or a list element) may itself be an async value; complete once it lands.
	if pending, ok := value.(asyncval.Value); ok {
		return asyncval.Bind(pending, func(landed interface{}) asyncval.Value {
			return completeValue(ctx, returnType, kind, landed)
		})
	}

	if nullableType, ok := returnType.(*graphql.Nullable); ok {
		return completeNullableValue(ctx, nullableType, kind, value)
	}

	if graphql.IsNullish(value) {
		return asyncval.Ready(nil)
	}

	switch t := returnType.(type) {
	case *graphql.Scalar:
		return completeLeafValue(t.CoerceResult, value)

	case *graphql.Enum:
		return completeEnumValue(t, value)

	case *graphql.List:
		return completeListValue(ctx, t, kind, value)

	case *graphql.Object:
		selection, ok := kind.(*graphql.SelectFields)
		if !ok {
			return asyncval.Err(planMismatchError(ctx, "SelectFields", kind))
		}
		return executeFields(ctx.Execution, t, value, selection.Fields)

	case *graphql.Interface:
		abstraction, ok := kind.(*graphql.ResolveAbstraction)
		if !ok {
			return asyncval.Err(planMismatchError(ctx, "ResolveAbstraction", kind))
		}

		object, err := resolveAbstractType(ctx, t, value)
		if err != nil {
			return asyncval.Err(err)
		}
		fields, ok := abstraction.TypeFields[object.Name]
		if !ok {
			return asyncval.Err(graphql.NewInternalError(
				`interface "%s" not implemented by type "%s"`, t.Name, object.Name))
		}
		return executeFields(ctx.Execution, object, value, fields)

	case *graphql.Union:
		abstraction, ok := kind.(*graphql.ResolveAbstraction)
		if !ok {
			return asyncval.Err(planMismatchError(ctx, "ResolveAbstraction", kind))
		}

		object, err := resolveAbstractType(ctx, t, value)
		if err != nil {
			return asyncval.Err(err)
		}
		fields, ok := abstraction.TypeFields[object.Name]
		if !ok {
			return asyncval.Err(graphql.NewInternalError(
				`union "%s" has no case for type "%s"`, t.Name, object.Name))
		}
		if t.ResolveValue != nil {
			value = t.ResolveValue(value)
		}
		return executeFields(ctx.Execution, object, value, fields)
	}

	return asyncval.Err(graphql.NewInternalError(
		`cannot complete value of unexpected type %s`, returnType))
}

func completeNullableValue(
	ctx *graphql.ResolveFieldContext,
	returnType *graphql.Nullable,
	kind graphql.PlanKind,
	value interface{}) asyncval.Value {

	if graphql.IsNullish(value) {
		return asyncval.Ready(nil)
	}

	// Unwrap host optionals. Schema-provided hooks take precedence; the Optional interface covers
	// the rest. A value that is neither is treated as already unwrapped.
	if returnType.IsNull != nil && returnType.IsNull(value) {
		return asyncval.Ready(nil)
	}
	if returnType.Unwrap != nil {
		value = returnType.Unwrap(value)
	} else if optional, ok := value.(graphql.Optional); ok {
		payload, present := optional.OptionalValue()
		if !present {
			return asyncval.Ready(nil)
		}
		value = payload
	}

	return completeValue(ctx, returnType.OfType, kind, value)
}

func completeLeafValue(coerce func(interface{}) (interface{}, error), value interface{}) asyncval.Value {
	coerced, err := coerce(value)
	if err != nil {
		return asyncval.Err(err)
	}
	if coerced == nil {
		return asyncval.Ready(nil)
	}
	return asyncval.Ready(coerced)
}

func completeEnumValue(returnType *graphql.Enum, value interface{}) asyncval.Value {
	if name := returnType.NameForValue(value); name != "" {
		return asyncval.Ready(name)
	}
	if s, ok := graphql.CoerceStringValue(value); ok {
		if returnType.ValueForName(s) != nil {
			return asyncval.Ready(s)
		}
	}
	return asyncval.Err(graphql.NewCoercionError(
		`enum "%s" cannot represent value %s`, returnType.Name, graphql.Inspect(value)))
}

func completeListValue(
	ctx *graphql.ResolveFieldContext,
	returnType *graphql.List,
	kind graphql.PlanKind,
	value interface{}) asyncval.Value {

	collection, ok := kind.(*graphql.ResolveCollection)
	if !ok {
		return asyncval.Err(planMismatchError(ctx, "ResolveCollection", kind))
	}
	element := collection.Element

	// A string is a single list element, never a sequence of characters.
	if s, isString := value.(string); isString {
		value = []interface{}{s}
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return asyncval.Err(graphql.NewError(
			`expected a sequence for list field "%s.%s" but got %T`,
			ctx.ParentType.Name, ctx.Info.Definition.Name, value))
	}

	// Elements complete concurrently; the collector reassembles them in input order.
	numElements := v.Len()
	elements := make([]asyncval.Value, numElements)
	for i := 0; i < numElements; i++ {
		elements[i] = completeValue(ctx, returnType.OfType, element.Kind, v.Index(i).Interface())
	}
	return asyncval.CollectParallel(elements)
}

func planMismatchError(ctx *graphql.ResolveFieldContext, expected string, kind graphql.PlanKind) error {
	kindName := "<none>"
	if kind != nil {
		kindName = kind.KindName()
	}
	return graphql.NewInternalError(
		`unexpected plan kind "%s" for field "%s" (planner/executor mismatch, expected %s)`,
		kindName, ctx.Info.Identifier, expected)
}
