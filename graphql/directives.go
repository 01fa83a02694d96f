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
)

// Names of the two execution directives
const (
	SkipDirectiveName    = "skip"
	IncludeDirectiveName = "include"
)

// ShouldInclude decides whether a selection carrying the given directives is included. A selection
// is included iff no directive excludes it: @skip excludes when its "if" argument is true,
// @include excludes when its "if" argument is false, any other directive has no effect here.
//
// The result is a pure function of the coerced variables, which lets planners pre-bind it into
// ExecutionInfo.Include.
//
// Reference: https://spec.graphql.org/June2018/#sec--include
func ShouldInclude(directives ast.DirectiveList, vars VariableValues) (bool, error) {
	for _, directive := range directives {
		switch directive.Name {
		case SkipDirectiveName:
			condition, err := directiveCondition(directive, vars)
			if err != nil {
				return false, err
			}
			if condition {
				return false, nil
			}

		case IncludeDirectiveName:
			condition, err := directiveCondition(directive, vars)
			if err != nil {
				return false, err
			}
			if !condition {
				return false, nil
			}
		}
	}
	return true, nil
}

// directiveCondition evaluates the boolean "if" argument of a @skip or @include directive. A
// variable reference must name a coerced boolean variable; any other value is coerced as a boolean
// literal.
func directiveCondition(directive *ast.Directive, vars VariableValues) (bool, error) {
	arg := directive.Arguments.ForName("if")
	if arg == nil {
		return false, NewError(`directive "@%s" is missing its required argument "if"`, directive.Name)
	}

	value := arg.Value
	if value.Kind == ast.Variable {
		raw, ok := vars.Lookup(value.Raw)
		if ok {
			if condition, isBool := raw.(bool); isBool {
				return condition, nil
			}
		}
		return false, NewError(
			`argument "if" of directive "@%s" expects a boolean value but variable "$%s" holds %s`,
			directive.Name, value.Raw, Inspect(vars.Get(value.Raw)))
	}

	if condition, ok := CoerceBoolLiteral(value); ok {
		return condition, nil
	}
	return false, NewError(
		`argument "if" of directive "@%s" expects a boolean value, got %s`, directive.Name, value.String())
}
