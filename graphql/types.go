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
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// Type is the closed set of GraphQL type definitions. The variants are *Scalar, *Enum, *Object,
// *Interface, *Union, *InputObject, *List and *Nullable; execution performs exhaustive type
// switches over them.
//
// Unlike the wrapping convention used by the GraphQL IDL, a bare type here is non-null; a type
// position is nullable only when wrapped in Nullable. String renders the IDL notation, so
// *Scalar{Int} prints "Int!" and *Nullable{Int} prints "Int".
type Type interface {
	fmt.Stringer

	// typeDef is a special mark to make the variant set closed.
	typeDef()
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar describes a leaf type together with its three coercion rules.
//
// Reference: https://spec.graphql.org/June2018/#sec-Scalars
type Scalar struct {
	Name        string
	Description string

	// CoerceResult coerces a resolver output into the scalar's serialized form.
	CoerceResult func(value interface{}) (interface{}, error)

	// CoerceVariable coerces a value found in the request variables (e.g. decoded from JSON).
	CoerceVariable func(value interface{}) (interface{}, error)

	// CoerceLiteral coerces a literal value in the document.
	CoerceLiteral func(value *ast.Value) (interface{}, error)
}

func (*Scalar) typeDef() {}

func (t *Scalar) String() string { return t.Name + "!" }

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumValue is one member of an Enum.
type EnumValue struct {
	// Name of the enum value as it appears in documents and results
	Name string

	Description string

	// Value is the internal value handed to (and expected from) resolvers. When nil, the name
	// itself is the internal value.
	Value interface{}

	Deprecation *Deprecation
}

// InternalValue returns the value exchanged with resolvers.
func (v *EnumValue) InternalValue() interface{} {
	if v.Value == nil {
		return v.Name
	}
	return v.Value
}

// Enum describes a leaf type with a finite set of named values.
//
// Reference: https://spec.graphql.org/June2018/#sec-Enums
type Enum struct {
	Name        string
	Description string

	// Values in declaration order
	Values []*EnumValue
}

func (*Enum) typeDef() {}

func (t *Enum) String() string { return t.Name + "!" }

// ValueForName returns the enum value with the given name, or nil.
func (t *Enum) ValueForName(name string) *EnumValue {
	for _, value := range t.Values {
		if value.Name == name {
			return value
		}
	}
	return nil
}

// NameForValue returns the name whose internal value equals the given value, or "".
func (t *Enum) NameForValue(value interface{}) string {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return ""
	}
	for _, v := range t.Values {
		if v.InternalValue() == value {
			return v.Name
		}
	}
	return ""
}

//===----------------------------------------------------------------------------------------====//
// Object, Interface and Union
//===----------------------------------------------------------------------------------------====//

// Object describes a composite output type with an ordered field list.
//
// Reference: https://spec.graphql.org/June2018/#sec-Objects
type Object struct {
	Name        string
	Description string

	// Fields in declaration order; the order is observable in results.
	Fields []*FieldDef

	// Interfaces implemented by this object
	Interfaces []*Interface

	// IsTypeOf reports whether a runtime value belongs to this object type. It is consulted by the
	// default abstract-type resolver.
	IsTypeOf func(value interface{}) bool
}

func (*Object) typeDef() {}

func (t *Object) String() string { return t.Name + "!" }

// Field returns the field definition with the given name, or nil.
func (t *Object) Field(name string) *FieldDef {
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// Interface describes an abstract output type whose concrete Object is resolved per value.
//
// Reference: https://spec.graphql.org/June2018/#sec-Interfaces
type Interface struct {
	Name        string
	Description string

	// Fields shared by every implementer
	Fields []*FieldDef

	// ResolveType maps a runtime value to its concrete Object type. When nil, the default resolver
	// scans the possible types' IsTypeOf predicates.
	ResolveType func(value interface{}) *Object
}

func (*Interface) typeDef() {}

func (t *Interface) String() string { return t.Name + "!" }

// Union describes an abstract output type over an explicit list of Object members.
//
// Reference: https://spec.graphql.org/June2018/#sec-Unions
type Union struct {
	Name        string
	Description string

	// PossibleTypes lists the member Object types.
	PossibleTypes []*Object

	// ResolveType maps a runtime value to the member Object type. When nil, the default resolver
	// scans the members' IsTypeOf predicates.
	ResolveType func(value interface{}) *Object

	// ResolveValue unwraps a tagged host value into the payload handed to the member's field
	// resolvers. When nil the value is used as is.
	ResolveValue func(value interface{}) interface{}
}

func (*Union) typeDef() {}

func (t *Union) String() string { return t.Name + "!" }

//===----------------------------------------------------------------------------------------====//
// InputObject
//===----------------------------------------------------------------------------------------====//

// InputObject describes a composite input type.
//
// Reference: https://spec.graphql.org/June2018/#sec-Input-Objects
type InputObject struct {
	Name        string
	Description string

	Fields []*InputFieldDef
}

func (*InputObject) typeDef() {}

func (t *InputObject) String() string { return t.Name + "!" }

// Field returns the input field definition with the given name, or nil.
func (t *InputObject) Field(name string) *InputFieldDef {
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// List and Nullable
//===----------------------------------------------------------------------------------------====//

// List wraps an inner type into a sequence.
type List struct {
	OfType Type
}

func (*List) typeDef() {}

func (t *List) String() string { return "[" + t.OfType.String() + "]!" }

// NewList creates a List of the given element type.
func NewList(ofType Type) *List { return &List{OfType: ofType} }

// Nullable marks a type position as accepting null. The two hooks let a schema teach the executor
// about host-language optional wrappers without any reflection; both default to plain nil tests
// (plus the Optional interface).
type Nullable struct {
	OfType Type

	// IsNull reports whether a runtime value represents the absent case.
	IsNull func(value interface{}) bool

	// Unwrap extracts the payload from an optional-wrapped value.
	Unwrap func(value interface{}) interface{}
}

func (*Nullable) typeDef() {}

func (t *Nullable) String() string {
	inner := t.OfType.String()
	if len(inner) > 0 && inner[len(inner)-1] == '!' {
		return inner[:len(inner)-1]
	}
	return inner
}

// NewNullable creates a Nullable wrapper around the given type.
func NewNullable(ofType Type) *Nullable { return &Nullable{OfType: ofType} }

//===----------------------------------------------------------------------------------------====//
// Predicates
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf unwraps List and Nullable wrappers down to the named type.
func NamedTypeOf(t Type) Type {
	for {
		switch wrapper := t.(type) {
		case *List:
			t = wrapper.OfType
		case *Nullable:
			t = wrapper.OfType
		default:
			return t
		}
	}
}

// TypeNameOf returns the name of the underlying named type, or "" for a nil type.
func TypeNameOf(t Type) string {
	switch t := NamedTypeOf(t).(type) {
	case *Scalar:
		return t.Name
	case *Enum:
		return t.Name
	case *Object:
		return t.Name
	case *Interface:
		return t.Name
	case *Union:
		return t.Name
	case *InputObject:
		return t.Name
	}
	return ""
}

// IsInputType returns true if t can be used in an input position (variables, arguments).
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType returns true if t can be used as a field return type.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsAbstractType returns true for Interface and Union types.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	}
	return false
}

// IsLeafType returns true for Scalar and Enum types.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	}
	return false
}

// Deprecation describes deprecation of a field or an enum value.
type Deprecation struct {
	Reason string
}
