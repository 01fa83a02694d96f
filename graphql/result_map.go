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
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ResultPair is one key/value entry of a ResultMap.
type ResultPair struct {
	Key   string
	Value interface{}
}

// ResultMap is the ordered, fixed-shape key→value container representing a GraphQL object result.
// Its key set is fixed at construction: entries can be read and updated but never added, removed
// or cleared. Keys iterate in insertion order, which is the plan order of the owning selection.
type ResultMap struct {
	keys   []string
	values []interface{}
	index  map[string]int
}

// ErrUnsupportedOperation is returned by the shape-changing operations of a ResultMap.
var ErrUnsupportedOperation = NewError("operation is not supported by a fixed-shape result map")

func keyNotFoundError(key string) error {
	return NewError(`key "%s" not found in result map`, key)
}

// NewResultMap builds a ResultMap from key/value pairs. When a key occurs more than once, the
// first occurrence wins.
func NewResultMap(pairs []ResultPair) *ResultMap {
	m := &ResultMap{
		keys:   make([]string, 0, len(pairs)),
		values: make([]interface{}, 0, len(pairs)),
		index:  make(map[string]int, len(pairs)),
	}
	for _, pair := range pairs {
		if _, exists := m.index[pair.Key]; exists {
			continue
		}
		m.index[pair.Key] = len(m.keys)
		m.keys = append(m.keys, pair.Key)
		m.values = append(m.values, pair.Value)
	}
	return m
}

// NewResultMapOfKeys builds a ResultMap with the given key set and every value initialized to
// null. Duplicate keys collapse to their first occurrence.
func NewResultMapOfKeys(keys []string) *ResultMap {
	pairs := make([]ResultPair, len(keys))
	for i, key := range keys {
		pairs[i] = ResultPair{Key: key}
	}
	return NewResultMap(pairs)
}

// Count returns the number of entries.
func (m *ResultMap) Count() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. Callers must not mutate the returned slice.
func (m *ResultMap) Keys() []string {
	return m.keys
}

// Get returns the value stored under key.
func (m *ResultMap) Get(key string) (interface{}, error) {
	i, ok := m.index[key]
	if !ok {
		return nil, keyNotFoundError(key)
	}
	return m.values[i], nil
}

// Update replaces the value stored under an existing key. It is the only mutation a ResultMap
// supports.
func (m *ResultMap) Update(key string, value interface{}) error {
	i, ok := m.index[key]
	if !ok {
		return keyNotFoundError(key)
	}
	m.values[i] = value
	return nil
}

// Add always fails: the key set is fixed at construction.
func (m *ResultMap) Add(string, interface{}) error {
	return ErrUnsupportedOperation
}

// Remove always fails: the key set is fixed at construction.
func (m *ResultMap) Remove(string) error {
	return ErrUnsupportedOperation
}

// Clear always fails: the key set is fixed at construction.
func (m *ResultMap) Clear() error {
	return ErrUnsupportedOperation
}

// Range iterates the entries in insertion order until f returns false.
func (m *ResultMap) Range(f func(key string, value interface{}) bool) {
	for i, key := range m.keys {
		if !f(key, m.values[i]) {
			return
		}
	}
}

// Equal reports structural equality: same keys in the same order, with nested result maps
// compared recursively, sequences compared pair-wise by element equality and scalars by value
// equality.
func (m *ResultMap) Equal(other *ResultMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		if !resultValueEqual(m.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

func resultValueEqual(a, b interface{}) bool {
	if am, ok := a.(*ResultMap); ok {
		bm, ok := b.(*ResultMap)
		return ok && am.Equal(bm)
	}
	if as, ok := a.([]interface{}); ok {
		bs, ok := b.([]interface{})
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !resultValueEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a 64-bit hash consistent with Equal, computed over the canonical string form.
func (m *ResultMap) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.String()))
	return h.Sum64()
}

// String renders the deterministic diagnostic form: maps as "{ k: v, ... }", sequences as
// "[ e, ... ]", strings double-quoted and nulls as "null". It is not a wire format.
func (m *ResultMap) String() string {
	var b strings.Builder
	m.writeTo(&b)
	return b.String()
}

func (m *ResultMap) writeTo(b *strings.Builder) {
	if len(m.keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, key := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		writeResultValue(b, m.values[i])
	}
	b.WriteString(" }")
}

func writeResultValue(b *strings.Builder, value interface{}) {
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case *ResultMap:
		v.writeTo(b)
	case []interface{}:
		if len(v) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[ ")
		for i, elem := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeResultValue(b, elem)
		}
		b.WriteString(" ]")
	case string:
		b.WriteString(strconv.Quote(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	default:
		b.WriteString(Inspect(v))
	}
}

//===----------------------------------------------------------------------------------------====//
// JSON encoding
//===----------------------------------------------------------------------------------------====//

// WriteJSONTo streams the JSON encoding of the map, preserving entry order.
func (m *ResultMap) WriteJSONTo(stream *jsoniter.Stream) {
	stream.WriteObjectStart()
	for i, key := range m.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		writeJSONValue(stream, m.values[i])
	}
	stream.WriteObjectEnd()
}

func writeJSONValue(stream *jsoniter.Stream, value interface{}) {
	switch v := value.(type) {
	case nil:
		stream.WriteNil()
	case *ResultMap:
		v.WriteJSONTo(stream)
	case []interface{}:
		stream.WriteArrayStart()
		for i, elem := range v {
			if i > 0 {
				stream.WriteMore()
			}
			writeJSONValue(stream, elem)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteVal(v)
	}
}

// MarshalJSON implements json.Marshaler on top of the jsoniter stream encoder.
func (m *ResultMap) MarshalJSON() ([]byte, error) {
	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	m.WriteJSONTo(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
