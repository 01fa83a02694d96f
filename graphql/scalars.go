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
	"math"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// The internal value type for each built-in scalar:
//
//	+--------------+---------+
//	| GraphQL Type | Go Type |
//	+--------------+---------+
//	| Int          | int     |
//	| Float        | float64 |
//	| String       | string  |
//	| Boolean      | bool    |
//	| ID           | string  |
//	+--------------+---------+
//
// Input coercion (variables and literals) is strict per spec; result coercion is lenient where the
// spec allows it (e.g. Int accepts a lossless float).

const (
	coercionErrorNonInteger      = "not an integer"
	coercionErrorIntegerTooLarge = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric      = "not a numeric value"
	coercionErrorNonBoolean      = "not a boolean value"
	coercionErrorNonString       = "not a string value"
)

func scalarError(typeName string, value interface{}, reason string) error {
	if s, ok := value.(string); ok {
		value = strconv.Quote(s)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, reason)
}

func intInRange(typeName string, value int64) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, scalarError(typeName, value, coercionErrorIntegerTooLarge)
	}
	if value < int64(math.MinInt32) {
		return nil, scalarError(typeName, value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

func coerceIntResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return intInRange("Int", int64(v))
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return intInRange("Int", v)
	case uint:
		return intInRange("Int", int64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return intInRange("Int", int64(v))
	case uint64:
		if v > uint64(math.MaxInt32) {
			return nil, scalarError("Int", v, coercionErrorIntegerTooLarge)
		}
		return int(v), nil
	case float32:
		return coerceIntResult(float64(v))
	case float64:
		intValue := int32(v)
		if float64(intValue) != v {
			return nil, scalarError("Int", v, coercionErrorNonInteger)
		}
		return int(intValue), nil
	case string:
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, scalarError("Int", v, coercionErrorNonInteger)
		}
		return int(parsed), nil
	}
	return nil, scalarError("Int", value, coercionErrorNonInteger)
}

func coerceIntVariable(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return intInRange("Int", int64(v))
	case int32:
		return int(v), nil
	case int64:
		return intInRange("Int", v)
	case float64:
		// JSON numbers arrive as float64; accept only integral ones.
		intValue := int32(v)
		if float64(intValue) != v {
			return nil, scalarError("Int", v, coercionErrorNonInteger)
		}
		return int(intValue), nil
	}
	return nil, scalarError("Int", value, coercionErrorNonInteger)
}

func coerceFloatResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, scalarError("Float", v, coercionErrorNonNumeric)
		}
		return parsed, nil
	}
	return nil, scalarError("Float", value, coercionErrorNonNumeric)
}

func coerceFloatVariable(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return nil, scalarError("Float", value, coercionErrorNonNumeric)
}

var (
	intType = &Scalar{
		Name:           "Int",
		Description:    "The `Int` scalar type represents a signed 32-bit numeric non-fractional value.",
		CoerceResult:   coerceIntResult,
		CoerceVariable: coerceIntVariable,
		CoerceLiteral: func(value *ast.Value) (interface{}, error) {
			if value.Kind != ast.IntValue {
				return nil, scalarError("Int", value.Raw, coercionErrorNonInteger)
			}
			parsed, err := strconv.ParseInt(value.Raw, 10, 32)
			if err != nil {
				return nil, scalarError("Int", value.Raw, coercionErrorNonInteger)
			}
			return int(parsed), nil
		},
	}

	floatType = &Scalar{
		Name:           "Float",
		Description:    "The `Float` scalar type represents signed double-precision fractional values.",
		CoerceResult:   coerceFloatResult,
		CoerceVariable: coerceFloatVariable,
		CoerceLiteral: func(value *ast.Value) (interface{}, error) {
			if value.Kind != ast.IntValue && value.Kind != ast.FloatValue {
				return nil, scalarError("Float", value.Raw, coercionErrorNonNumeric)
			}
			parsed, err := strconv.ParseFloat(value.Raw, 64)
			if err != nil {
				return nil, scalarError("Float", value.Raw, coercionErrorNonNumeric)
			}
			return parsed, nil
		},
	}

	stringType = &Scalar{
		Name:        "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
		CoerceResult: func(value interface{}) (interface{}, error) {
			if s, ok := CoerceStringValue(value); ok {
				return s, nil
			}
			return nil, scalarError("String", value, coercionErrorNonString)
		},
		CoerceVariable: func(value interface{}) (interface{}, error) {
			if s, ok := value.(string); ok {
				return s, nil
			}
			return nil, scalarError("String", value, coercionErrorNonString)
		},
		CoerceLiteral: func(value *ast.Value) (interface{}, error) {
			if value.Kind != ast.StringValue && value.Kind != ast.BlockValue {
				return nil, scalarError("String", value.Raw, coercionErrorNonString)
			}
			return value.Raw, nil
		},
	}

	booleanType = &Scalar{
		Name:        "Boolean",
		Description: "The `Boolean` scalar type represents `true` or `false`.",
		CoerceResult: func(value interface{}) (interface{}, error) {
			switch v := value.(type) {
			case bool:
				return v, nil
			case int:
				return v != 0, nil
			case int64:
				return v != 0, nil
			}
			return nil, scalarError("Boolean", value, coercionErrorNonBoolean)
		},
		CoerceVariable: func(value interface{}) (interface{}, error) {
			if b, ok := value.(bool); ok {
				return b, nil
			}
			return nil, scalarError("Boolean", value, coercionErrorNonBoolean)
		},
		CoerceLiteral: func(value *ast.Value) (interface{}, error) {
			if b, ok := CoerceBoolLiteral(value); ok {
				return b, nil
			}
			return nil, scalarError("Boolean", value.Raw, coercionErrorNonBoolean)
		},
	}

	idType = &Scalar{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier. It is serialized in the " +
			"same way as a String but accepts both numeric and string input values.",
		CoerceResult: func(value interface{}) (interface{}, error) {
			if s, ok := CoerceStringValue(value); ok {
				return s, nil
			}
			return nil, scalarError("ID", value, coercionErrorNonString)
		},
		CoerceVariable: func(value interface{}) (interface{}, error) {
			switch v := value.(type) {
			case string:
				return v, nil
			case int:
				return strconv.Itoa(v), nil
			case int64:
				return strconv.FormatInt(v, 10), nil
			case float64:
				intValue := int64(v)
				if float64(intValue) != v {
					return nil, scalarError("ID", v, coercionErrorNonInteger)
				}
				return strconv.FormatInt(intValue, 10), nil
			}
			return nil, scalarError("ID", value, coercionErrorNonString)
		},
		CoerceLiteral: func(value *ast.Value) (interface{}, error) {
			if value.Kind != ast.StringValue && value.Kind != ast.IntValue {
				return nil, scalarError("ID", value.Raw, coercionErrorNonString)
			}
			return value.Raw, nil
		},
	}
)

// Int returns the built-in Int scalar.
func Int() *Scalar { return intType }

// Float returns the built-in Float scalar.
func Float() *Scalar { return floatType }

// String returns the built-in String scalar.
func String() *Scalar { return stringType }

// Boolean returns the built-in Boolean scalar.
func Boolean() *Scalar { return booleanType }

// ID returns the built-in ID scalar.
func ID() *Scalar { return idType }
