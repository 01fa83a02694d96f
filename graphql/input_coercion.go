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
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// CompileByType builds the literal coercer for an input type. The schema compile pass stores the
// result into ExecuteInput slots; errPrefix locates the slot in error messages (e.g. "Object 'X':
// field 'f': argument 'a': ").
//
// The returned coercer resolves variable references against the request's already-coerced
// variable map, accepts null only under a Nullable wrapper, applies the list singleton rule, and
// recurses into input objects through their own compiled slots (which keeps cyclic input types
// from recursing at compile time).
func CompileByType(errPrefix string, t Type) InputCoerceFunc {
	nullableType, isNullable := t.(*Nullable)
	inner := t
	if isNullable {
		inner = nullableType.OfType
	}
	coerce := compileLiteralCoercer(errPrefix, inner)

	return func(vars VariableValues, value *ast.Value) (interface{}, error) {
		if value == nil || value.Kind == ast.NullValue {
			if isNullable {
				return nil, nil
			}
			return nil, NewCoercionError("%sexpected a value of type %s, found null", errPrefix, t)
		}
		if value.Kind == ast.Variable {
			// Variables were coerced before any field executed; no further checking here.
			coerced, _ := vars.Lookup(value.Raw)
			return coerced, nil
		}
		return coerce(vars, value)
	}
}

func compileLiteralCoercer(errPrefix string, t Type) InputCoerceFunc {
	switch t := t.(type) {
	case *Nullable:
		return CompileByType(errPrefix, t)

	case *Scalar:
		return func(vars VariableValues, value *ast.Value) (interface{}, error) {
			coerced, err := t.CoerceLiteral(value)
			if err != nil {
				return nil, NewCoercionError("%s%s", errPrefix, err.Error())
			}
			return coerced, nil
		}

	case *Enum:
		return func(vars VariableValues, value *ast.Value) (interface{}, error) {
			if value.Kind != ast.EnumValue {
				return nil, NewCoercionError("%senum %s cannot represent non-enum value %s",
					errPrefix, t.Name, value.String())
			}
			enumValue := t.ValueForName(value.Raw)
			if enumValue == nil {
				return nil, NewCoercionError(`%svalue "%s" does not exist in enum "%s"`,
					errPrefix, value.Raw, t.Name)
			}
			return enumValue.InternalValue(), nil
		}

	case *List:
		elem := CompileByType(errPrefix, t.OfType)
		return func(vars VariableValues, value *ast.Value) (interface{}, error) {
			if value.Kind != ast.ListValue {
				// A non-list value is coerced as a list of size one.
				single, err := elem(vars, value)
				if err != nil {
					return nil, err
				}
				return []interface{}{single}, nil
			}

			result := make([]interface{}, 0, len(value.Children))
			for _, child := range value.Children {
				coerced, err := elem(vars, child.Value)
				if err != nil {
					return nil, err
				}
				result = append(result, coerced)
			}
			return result, nil
		}

	case *InputObject:
		return func(vars VariableValues, value *ast.Value) (interface{}, error) {
			if value.Kind != ast.ObjectValue {
				return nil, NewCoercionError(`%sexpected an input object literal for "%s", got %s`,
					errPrefix, t.Name, value.String())
			}

			result := map[string]interface{}{}
			for _, field := range t.Fields {
				child := value.Children.ForName(field.Name)
				if child == nil {
					if field.HasDefault {
						result[field.Name] = field.Default
					}
					continue
				}

				if field.ExecuteInput == nil {
					return nil, NewInternalError(
						`%sinput field "%s" of "%s" has no compiled coercer; run the schema compile pass first`,
						errPrefix, field.Name, t.Name)
				}
				coerced, err := field.ExecuteInput(vars, child)
				if err != nil {
					return nil, err
				}
				if coerced == nil && field.HasDefault {
					coerced = field.Default
				}
				result[field.Name] = coerced
			}
			return result, nil
		}
	}

	return func(VariableValues, *ast.Value) (interface{}, error) {
		return nil, NewCoercionError(`%stype "%s" cannot be used as an input type`, errPrefix, t)
	}
}

// CoerceVariableValue coerces a host value supplied in the request variables (typically decoded
// from JSON) against an input type.
func CoerceVariableValue(t Type, value interface{}) (interface{}, error) {
	if nullableType, ok := t.(*Nullable); ok {
		if IsNullish(value) {
			return nil, nil
		}
		if optional, ok := value.(Optional); ok {
			payload, present := optional.OptionalValue()
			if !present {
				return nil, nil
			}
			value = payload
		}
		return CoerceVariableValue(nullableType.OfType, value)
	}

	if IsNullish(value) {
		return nil, NewCoercionError(`expected a value of type %s, found null`, t)
	}

	switch t := t.(type) {
	case *Scalar:
		return t.CoerceVariable(value)

	case *Enum:
		name, ok := value.(string)
		if !ok {
			return nil, NewCoercionError(`enum "%s" cannot represent non-string value %s`, t.Name, Inspect(value))
		}
		enumValue := t.ValueForName(name)
		if enumValue == nil {
			return nil, NewCoercionError(`value "%s" does not exist in enum "%s"`, name, t.Name)
		}
		return enumValue.InternalValue(), nil

	case *List:
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			// Singleton rule applies to variables as well.
			single, err := CoerceVariableValue(t.OfType, value)
			if err != nil {
				return nil, err
			}
			return []interface{}{single}, nil
		}

		result := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			coerced, err := CoerceVariableValue(t.OfType, v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = coerced
		}
		return result, nil

	case *InputObject:
		fields, ok := value.(map[string]interface{})
		if !ok {
			return nil, NewCoercionError(`input object "%s" cannot represent %s`, t.Name, Inspect(value))
		}

		result := map[string]interface{}{}
		for _, field := range t.Fields {
			raw, has := fields[field.Name]
			if !has {
				if field.HasDefault {
					result[field.Name] = field.Default
				} else if _, nullable := field.Type.(*Nullable); !nullable {
					return nil, NewCoercionError(`field "%s" of required type %s was not provided in input object "%s"`,
						field.Name, field.Type, t.Name)
				}
				continue
			}

			coerced, err := CoerceVariableValue(field.Type, raw)
			if err != nil {
				return nil, err
			}
			if coerced == nil && field.HasDefault {
				coerced = field.Default
			}
			result[field.Name] = coerced
		}
		return result, nil
	}

	return nil, NewCoercionError(`type "%s" cannot be used as an input type`, t)
}
