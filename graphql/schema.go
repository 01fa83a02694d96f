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
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// SchemaConfig is the input to NewSchema.
type SchemaConfig struct {
	// Query is the root query type; required.
	Query *Object

	// Mutation is the root mutation type; optional.
	Mutation *Object

	// Subscription is the root subscription type; optional.
	Subscription *Object

	// Types force-registers types that are not reachable from the roots (e.g. interface
	// implementers only ever returned through the interface).
	Types []Type
}

// Schema is the immutable type graph a request executes against. It is built once, compiled once
// by the executor's schema compile pass (which fills the Execute and ExecuteInput slots), and then
// shared freely between requests.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object

	typeMap map[string]Type

	// possibleTypes caches the concrete object types per abstract type name.
	possibleTypes map[string][]*Object
}

// NewSchema builds a Schema from the given roots by walking every reachable type. Two distinct
// types with the same name are rejected. The built-in scalars are registered as well, so variable
// declarations can name them even when no field uses them; a schema type already registered under
// a built-in scalar's name is kept.
func NewSchema(config SchemaConfig) (*Schema, error) {
	if config.Query == nil {
		return nil, NewError("schema must provide a Query root type")
	}

	schema := &Schema{
		query:         config.Query,
		mutation:      config.Mutation,
		subscription:  config.Subscription,
		typeMap:       map[string]Type{},
		possibleTypes: map[string][]*Object{},
	}

	roots := []Type{config.Query}
	if config.Mutation != nil {
		roots = append(roots, config.Mutation)
	}
	if config.Subscription != nil {
		roots = append(roots, config.Subscription)
	}
	roots = append(roots, config.Types...)

	for _, root := range roots {
		if err := schema.addType(root); err != nil {
			return nil, err
		}
	}

	for _, scalar := range []*Scalar{Int(), Float(), String(), Boolean(), ID()} {
		if _, exists := schema.typeMap[scalar.Name]; !exists {
			schema.typeMap[scalar.Name] = scalar
		}
	}

	schema.buildPossibleTypes()

	return schema, nil
}

// MustNewSchema is like NewSchema but panics on error.
func MustNewSchema(config SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

func (schema *Schema) addType(t Type) error {
	switch t := t.(type) {
	case *List:
		return schema.addType(t.OfType)
	case *Nullable:
		return schema.addType(t.OfType)
	}

	name := TypeNameOf(t)
	if name == "" {
		return NewError("cannot register unnamed type %v in schema", t)
	}

	if existing, ok := schema.typeMap[name]; ok {
		if existing != t {
			return NewError(`schema must contain unique named types but contains multiple types named "%s"`, name)
		}
		return nil
	}
	schema.typeMap[name] = t

	switch t := t.(type) {
	case *Object:
		for _, iface := range t.Interfaces {
			if err := schema.addType(iface); err != nil {
				return err
			}
		}
		for _, field := range t.Fields {
			if err := schema.addFieldTypes(field); err != nil {
				return err
			}
		}

	case *Interface:
		for _, field := range t.Fields {
			if err := schema.addFieldTypes(field); err != nil {
				return err
			}
		}

	case *Union:
		for _, member := range t.PossibleTypes {
			if err := schema.addType(member); err != nil {
				return err
			}
		}

	case *InputObject:
		for _, field := range t.Fields {
			if err := schema.addType(field.Type); err != nil {
				return err
			}
		}
	}

	return nil
}

func (schema *Schema) addFieldTypes(field *FieldDef) error {
	if err := schema.addType(field.Type); err != nil {
		return err
	}
	for _, arg := range field.Args {
		if err := schema.addType(arg.Type); err != nil {
			return err
		}
	}
	return nil
}

func (schema *Schema) buildPossibleTypes() {
	for _, t := range schema.typeMap {
		switch t := t.(type) {
		case *Object:
			for _, iface := range t.Interfaces {
				schema.possibleTypes[iface.Name] = append(schema.possibleTypes[iface.Name], t)
			}
		case *Union:
			schema.possibleTypes[t.Name] = append([]*Object{}, t.PossibleTypes...)
		}
	}
}

// Query returns the root query type.
func (schema *Schema) Query() *Object { return schema.query }

// Mutation returns the root mutation type, or nil.
func (schema *Schema) Mutation() *Object { return schema.mutation }

// Subscription returns the root subscription type, or nil.
func (schema *Schema) Subscription() *Object { return schema.subscription }

// TypeMap returns the name→type map of every registered type. Callers must not mutate it.
func (schema *Schema) TypeMap() map[string]Type { return schema.typeMap }

// LookupType returns the registered type with the given name, or nil.
func (schema *Schema) LookupType(name string) Type { return schema.typeMap[name] }

// PossibleTypes returns the concrete Object types an abstract type can resolve to. The list is
// computed once at schema construction.
func (schema *Schema) PossibleTypes(t Type) []*Object {
	return schema.possibleTypes[TypeNameOf(t)]
}

// RootType returns the root object type for the given operation kind, or nil when the schema does
// not support it.
func (schema *Schema) RootType(operation ast.Operation) *Object {
	switch operation {
	case ast.Query:
		return schema.query
	case ast.Mutation:
		return schema.mutation
	case ast.Subscription:
		return schema.subscription
	}
	return nil
}

// TypeFromAST resolves a document type reference (including list and non-null wrappers) against
// the schema, using the Nullable-by-wrapping convention: an AST type without the non-null marker
// resolves to a Nullable wrapper.
func (schema *Schema) TypeFromAST(t *ast.Type) (Type, error) {
	if t == nil {
		return nil, NewError("missing type reference")
	}

	var resolved Type
	if t.NamedType != "" {
		resolved = schema.typeMap[t.NamedType]
		if resolved == nil {
			return nil, NewError(`unknown type "%s"`, t.NamedType)
		}
	} else {
		elem, err := schema.TypeFromAST(t.Elem)
		if err != nil {
			return nil, err
		}
		resolved = NewList(elem)
	}

	if !t.NonNull {
		resolved = NewNullable(resolved)
	}
	return resolved, nil
}

// Inspect returns a developer-facing rendition of a host value for diagnostics.
func Inspect(value interface{}) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}
