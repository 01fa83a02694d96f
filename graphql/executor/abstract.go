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
	"github.com/selenelab/selene/graphql"
)

// resolveAbstractType determines the concrete Object type of a runtime value in an interface or
// union position. An explicit ResolveType on the abstract type wins; otherwise the default
// resolver scans the schema's possible types for the first whose IsTypeOf accepts the value. For
// unions the value is first mapped through ResolveValue so IsTypeOf predicates see the payload.
func resolveAbstractType(
	ctx *graphql.ResolveFieldContext,
	abstract graphql.Type,
	value interface{}) (*graphql.Object, error) {

	switch t := abstract.(type) {
	case *graphql.Interface:
		if t.ResolveType != nil {
			if object := t.ResolveType(value); object != nil {
				return object, nil
			}
			return nil, unresolvedAbstractError(ctx, "interface", t.Name, value)
		}
		return defaultResolveType(ctx, abstract, "interface", t.Name, value)

	case *graphql.Union:
		if t.ResolveType != nil {
			if object := t.ResolveType(value); object != nil {
				return object, nil
			}
			return nil, unresolvedAbstractError(ctx, "union", t.Name, value)
		}
		if t.ResolveValue != nil {
			value = t.ResolveValue(value)
		}
		return defaultResolveType(ctx, abstract, "union", t.Name, value)
	}

	return nil, graphql.NewInternalError(`type %s is not an abstract type`, abstract)
}

func defaultResolveType(
	ctx *graphql.ResolveFieldContext,
	abstract graphql.Type,
	kindWord, name string,
	value interface{}) (*graphql.Object, error) {

	// First matching possible type wins; more than one match is a schema bug.
	for _, object := range ctx.Schema.PossibleTypes(abstract) {
		if object.IsTypeOf != nil && object.IsTypeOf(value) {
			return object, nil
		}
	}
	return nil, unresolvedAbstractError(ctx, kindWord, name, value)
}

func unresolvedAbstractError(
	ctx *graphql.ResolveFieldContext,
	kindWord, name string,
	value interface{}) error {

	return graphql.NewError(
		`%s "%s" could not be resolved to an Object type for field "%s" with value of type %T`,
		kindWord, name, ctx.Info.Identifier, value)
}
