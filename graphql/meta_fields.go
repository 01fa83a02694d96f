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

// TypeNameMetaFieldName is the name of the __typename meta field, queryable on any selection
// (including abstract positions, where it reports the resolved concrete type).
const TypeNameMetaFieldName = "__typename"

var typeNameMetaField = &FieldDef{
	Name:        TypeNameMetaFieldName,
	Description: "The name of the current Object type at runtime.",
	Type:        String(),
	Resolve: ResolveFunc(func(ctx *ResolveFieldContext, _ interface{}) (interface{}, error) {
		return ctx.ParentType.Name, nil
	}),
}

// TypeNameMetaFieldDef returns the shared definition of the __typename meta field. It lives
// outside every object's field list; planners map it to a leaf plan node. Its Execute slot is left
// empty and compiled transiently by the executor.
func TypeNameMetaFieldDef() *FieldDef {
	return typeNameMetaField
}
