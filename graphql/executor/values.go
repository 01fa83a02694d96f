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

package executor

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenelab/selene/graphql"
)

// CoerceVariables prepares the coerced variable map for a request.
//
// When the request supplies no variables at all, only the declared variables carrying a default
// value are coerced (against an empty variable map); otherwise every declared variable is coerced
// against the supplied values. Coercion failures surface here, before any field executes.
//
// A nil operation (hand-built plans) declares no variables; the supplied values pass through
// untouched.
func CoerceVariables(
	schema *graphql.Schema,
	operation *ast.OperationDefinition,
	values map[string]interface{}) (graphql.VariableValues, error) {

	if operation == nil {
		return graphql.VariableValues(values), nil
	}

	coerced := graphql.VariableValues{}

	for _, varDef := range operation.VariableDefinitions {
		varName := varDef.Variable

		varType, err := schema.TypeFromAST(varDef.Type)
		if err != nil {
			return nil, graphql.WrapError(graphql.ErrKindCoercion, err, `Variable "$%s": %s`, varName, err.Error())
		}
		if !graphql.IsInputType(varType) {
			return nil, graphql.NewCoercionError(
				`Variable "$%s" expected a value of type %s which cannot be used as an input type`, varName, varType)
		}

		if values == nil {
			if varDef.DefaultValue == nil {
				continue
			}
			value, err := coerceVariableDefault(varName, varType, varDef.DefaultValue)
			if err != nil {
				return nil, err
			}
			coerced[varName] = value
			continue
		}

		value, has := values[varName]
		switch {
		case !has && varDef.DefaultValue != nil:
			coercedValue, err := coerceVariableDefault(varName, varType, varDef.DefaultValue)
			if err != nil {
				return nil, err
			}
			coerced[varName] = coercedValue

		case !has:
			if _, nullable := varType.(*graphql.Nullable); !nullable {
				return nil, graphql.NewCoercionError(
					`Variable "$%s" of required type %s was not provided`, varName, varType)
			}

		default:
			coercedValue, err := graphql.CoerceVariableValue(varType, value)
			if err != nil {
				return nil, graphql.WrapError(graphql.ErrKindCoercion, err,
					`Variable "$%s" got invalid value %s; %s`, varName, graphql.Inspect(value), err.Error())
			}
			coerced[varName] = coercedValue
		}
	}

	return coerced, nil
}

func coerceVariableDefault(varName string, varType graphql.Type, defaultValue *ast.Value) (interface{}, error) {
	coercer := graphql.CompileByType(fmt.Sprintf(`Variable "$%s": `, varName), varType)
	return coercer(graphql.NoVariableValues(), defaultValue)
}

// ArgumentValues prepares the coerced argument map for one field selection.
//
// Per argument definition: an AST argument with a matching name is coerced through the
// definition's compiled ExecuteInput slot; a nil result falls back to the definition's default; an
// absent AST argument uses the default when there is one; absent with no default omits the key.
func ArgumentValues(
	def *graphql.FieldDef,
	field *ast.Field,
	vars graphql.VariableValues) (graphql.ArgumentValues, error) {

	args := graphql.ArgumentValues{}
	if len(def.Args) == 0 {
		return args, nil
	}

	var astArgs ast.ArgumentList
	if field != nil {
		astArgs = field.Arguments
	}

	for _, argDef := range def.Args {
		astArg := astArgs.ForName(argDef.Name)
		if astArg == nil {
			if argDef.HasDefault {
				args[argDef.Name] = argDef.Default
			}
			continue
		}

		if argDef.ExecuteInput == nil {
			return nil, graphql.NewInternalError(
				`argument "%s" of field "%s" has no compiled coercer; run the schema compile pass first`,
				argDef.Name, def.Name)
		}

		value, err := argDef.ExecuteInput(vars, astArg.Value)
		if err != nil {
			return nil, err
		}
		if value == nil {
			if argDef.HasDefault {
				args[argDef.Name] = argDef.Default
			} else {
				args[argDef.Name] = nil
			}
			continue
		}
		args[argDef.Name] = value
	}

	return args, nil
}
