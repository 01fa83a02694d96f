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
	"errors"
	"fmt"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// ErrKind classifies an Error.
type ErrKind uint8

// Enumeration of ErrKind
const (
	// Unclassified error
	ErrKindOther ErrKind = iota

	// Failed to coerce an input or result value for the desired GraphQL type
	ErrKindCoercion

	// An error raised by a resolver or while completing a field value; these are reported in the
	// response and never abort sibling fields.
	ErrKindExecution

	// A programmer error such as a plan/executor mismatch or an uncompiled schema slot; these abort
	// the enclosing computation and are never rescued into the response.
	ErrKindInternal
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindExecution:
		return "execution error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// Error is the domain error value surfaced by query execution.
type Error struct {
	// Kind of the error
	Kind ErrKind

	// Message describing the error
	Message string

	// Err is the underlying error that triggered this one, if any.
	Err error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of ErrKindExecution.
func NewError(format string, a ...interface{}) *Error {
	return &Error{
		Kind:    ErrKindExecution,
		Message: fmt.Sprintf(format, a...),
	}
}

// NewCoercionError creates an Error of ErrKindCoercion.
func NewCoercionError(format string, a ...interface{}) *Error {
	return &Error{
		Kind:    ErrKindCoercion,
		Message: fmt.Sprintf(format, a...),
	}
}

// NewInternalError creates an Error of ErrKindInternal.
func NewInternalError(format string, a ...interface{}) *Error {
	return &Error{
		Kind:    ErrKindInternal,
		Message: fmt.Sprintf(format, a...),
	}
}

// WrapError attaches a domain Error of the given kind to an underlying error.
func WrapError(kind ErrKind, err error, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Err:     err,
	}
}

// IsInternal reports whether err (or any error it wraps) is an ErrKindInternal Error. Internal
// errors indicate programmer errors and must propagate instead of being rescued into a null field
// value.
func IsInternal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrKindInternal
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// MultiError
//===----------------------------------------------------------------------------------------====//

// MultiError aggregates several independent errors raised by one computation. The executor
// flattens it so that every cause becomes its own entry in the request error sink.
type MultiError []error

var _ error = (MultiError)(nil)

// Error implements the error interface.
func (e MultiError) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d errors occurred:", len(e)))
	for _, err := range e {
		b.WriteString("\n\t* ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Causes returns the individual errors. Only one level of nesting is unpacked.
func (e MultiError) Causes() []error {
	return e
}

//===----------------------------------------------------------------------------------------====//
// ErrorList
//===----------------------------------------------------------------------------------------====//

// ErrorList is the per-request error sink. It is append-only and safe for concurrent use; field
// executions running on different goroutines append to the same list.
type ErrorList struct {
	mu   sync.Mutex
	errs []*Error
}

// NewErrorList creates an empty ErrorList.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Append adds an error to the list. A non-*Error value is wrapped into an ErrKindExecution Error
// carrying its message.
func (l *ErrorList) Append(err error) {
	if err == nil {
		return
	}

	e, ok := err.(*Error)
	if !ok {
		e = &Error{
			Kind:    ErrKindExecution,
			Message: err.Error(),
			Err:     err,
		}
	}

	l.mu.Lock()
	l.errs = append(l.errs, e)
	l.mu.Unlock()
}

// Count returns the number of collected errors.
func (l *ErrorList) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errs)
}

// HaveOccurred returns true if the list contains any error.
func (l *ErrorList) HaveOccurred() bool {
	return l.Count() > 0
}

// Errors returns a snapshot of the collected errors in append order.
func (l *ErrorList) Errors() []*Error {
	l.mu.Lock()
	defer l.mu.Unlock()
	errs := make([]*Error, len(l.errs))
	copy(errs, l.errs)
	return errs
}

// MarshalJSON encodes the list in response form: an array of objects with a "message" entry.
func (l *ErrorList) MarshalJSON() ([]byte, error) {
	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	stream.WriteArrayStart()
	for i, err := range l.Errors() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		stream.WriteObjectField("message")
		stream.WriteString(err.Message)
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
