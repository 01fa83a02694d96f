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
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// Optional is a host-language optional wrapper. The Nullable completion branch unwraps values
// implementing it; schemas with their own optional representation can instead install IsNull and
// Unwrap hooks on the Nullable type.
type Optional interface {
	// OptionalValue returns the payload and whether it is present.
	OptionalValue() (interface{}, bool)
}

// Some wraps a value into an Optional that is present.
type Some struct {
	Value interface{}
}

// OptionalValue implements Optional.
func (s Some) OptionalValue() (interface{}, bool) {
	return s.Value, true
}

// None is an Optional that is absent.
type None struct{}

// OptionalValue implements Optional.
func (None) OptionalValue() (interface{}, bool) {
	return nil, false
}

// IsNullish returns true for nil and for typed nil pointers, maps, slices and interfaces hiding
// behind a non-nil interface value.
func IsNullish(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// CoerceStringValue coerces a host value into its string representation. It accepts strings,
// fmt.Stringer implementations, byte slices, booleans and numeric values.
func CoerceStringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}

// CoerceBoolLiteral reads a boolean literal from a document value.
func CoerceBoolLiteral(value *ast.Value) (bool, bool) {
	if value == nil || value.Kind != ast.BooleanValue {
		return false, false
	}
	b, err := strconv.ParseBool(value.Raw)
	if err != nil {
		return false, false
	}
	return b, true
}
