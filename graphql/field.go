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
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenelab/selene/asyncval"
)

// Resolver supplies a field's value from its parent value. The variants are ResolveFunc
// (synchronous), AsyncResolveFunc (asynchronous) and nil (no resolver; executing such a field is a
// programmer error).
type Resolver interface {
	resolver()
}

// ResolveFunc is a synchronous resolver.
type ResolveFunc func(ctx *ResolveFieldContext, source interface{}) (interface{}, error)

func (ResolveFunc) resolver() {}

// AsyncResolveFunc is an asynchronous resolver. The returned Value is awaited before completion.
type AsyncResolveFunc func(ctx *ResolveFieldContext, source interface{}) asyncval.Value

func (AsyncResolveFunc) resolver() {}

// FieldExecuteFunc is the compiled form of a field: it combines the resolver and the type-directed
// completion into a single lazy computation. The schema compile pass fills FieldDef.Execute slots
// with values of this type before any request runs.
type FieldExecuteFunc func(ctx *ResolveFieldContext, source interface{}) asyncval.Value

// InputCoerceFunc coerces a literal document value against an input type. Variable references are
// looked up in the request's already-coerced variable map. A nil result with a nil error means the
// literal coerced to null.
type InputCoerceFunc func(vars VariableValues, value *ast.Value) (interface{}, error)

// FieldDef describes one output field of an Object (or Interface).
type FieldDef struct {
	Name        string
	Description string

	// Type is the field's output type.
	Type Type

	// Args in declaration order
	Args []*InputFieldDef

	// Resolve produces the field value; see Resolver for the variants.
	Resolve Resolver

	// Execute is a mutable slot filled by the schema compile pass. After the pass the schema is
	// frozen and the slot is read-only.
	Execute FieldExecuteFunc

	Deprecation *Deprecation
}

// ArgumentDef returns the argument definition with the given name, or nil.
func (f *FieldDef) ArgumentDef(name string) *InputFieldDef {
	for _, arg := range f.Args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// InputFieldDef describes one input position: a field argument, or a field of an InputObject.
type InputFieldDef struct {
	Name        string
	Description string

	// Type is the input type.
	Type Type

	// HasDefault distinguishes "no default" from "default of nil".
	HasDefault bool

	// Default is the host-value default applied when no value (or a null value) is supplied.
	Default interface{}

	// ExecuteInput is a mutable slot filled by the schema compile pass.
	ExecuteInput InputCoerceFunc
}

// VariableValues is a request's coerced variable map.
type VariableValues map[string]interface{}

// Lookup returns the variable value and whether the variable was provided.
func (v VariableValues) Lookup(name string) (interface{}, bool) {
	value, ok := v[name]
	return value, ok
}

// Get returns the variable value, or nil when absent.
func (v VariableValues) Get(name string) interface{} {
	return v[name]
}

// NoVariableValues is the empty variable map.
func NoVariableValues() VariableValues {
	return VariableValues{}
}

// ArgumentValues is a field's coerced argument map, keyed by argument name. Arguments that were
// absent and had no default carry no key.
type ArgumentValues map[string]interface{}

// Lookup returns the argument value and whether the argument has an entry.
func (v ArgumentValues) Lookup(name string) (interface{}, bool) {
	value, ok := v[name]
	return value, ok
}

// Get returns the argument value, or nil when absent.
func (v ArgumentValues) Get(name string) interface{} {
	return v[name]
}
