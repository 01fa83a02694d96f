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
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/selenelab/selene/asyncval"
	"github.com/selenelab/selene/graphql"
)

// EvaluateParams bundles the inputs of one request evaluation.
type EvaluateParams struct {
	// Ctx is the request context; defaults to context.Background().
	Ctx context.Context

	// Schema must have gone through CompileSchema.
	Schema *graphql.Schema

	// Plan to execute
	Plan *graphql.ExecutionPlan

	// Variables are the raw (uncoerced) request variables.
	Variables map[string]interface{}

	// Root is the parent value of the top-level fields.
	Root interface{}

	// Errors is the caller's append-only error collector; defaults to a fresh list reachable from
	// the execution context.
	Errors *graphql.ErrorList

	// Tracer, when non-nil, records a span for the request and one per resolved field.
	Tracer trace.Tracer
}

// Evaluate executes a plan and blocks until the result tree is assembled. Field errors are
// reported through the error collector with the offending fields nulled; the returned error is
// non-nil only for request-level failures (variable coercion) and structural errors.
func Evaluate(params EvaluateParams) (*graphql.ResultMap, error) {
	ctx := params.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := EvaluateAsync(params).Await(ctx)
	if err != nil {
		return nil, err
	}
	return result.(*graphql.ResultMap), nil
}

// EvaluateAsync is the asynchronous form of Evaluate. The returned value resolves to a
// *graphql.ResultMap.
func EvaluateAsync(params EvaluateParams) asyncval.Value {
	if params.Schema == nil {
		return asyncval.Err(graphql.NewInternalError("evaluate requires a schema"))
	}
	if params.Plan == nil {
		return asyncval.Err(graphql.NewInternalError("evaluate requires an execution plan"))
	}

	ctx := params.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	errs := params.Errors
	if errs == nil {
		errs = graphql.NewErrorList()
	}

	vars, err := CoerceVariables(params.Schema, params.Plan.Operation, params.Variables)
	if err != nil {
		return asyncval.Err(err)
	}

	exec := &graphql.ExecutionContext{
		Ctx:       ctx,
		Schema:    params.Schema,
		Plan:      params.Plan,
		RootValue: params.Root,
		Variables: vars,
		Errors:    errs,
		Tracer:    params.Tracer,
	}

	rootType := params.Schema.Query()
	if op := params.Plan.Operation; op != nil {
		rootType = params.Schema.RootType(op.Operation)
		if rootType == nil {
			return asyncval.Err(graphql.NewError(
				"schema is not configured for %s operations", op.Operation))
		}
	}

	value := traceRequest(exec, executePlan(exec, params.Plan, rootType, params.Root))

	// The final wrap keeps the public invariant that evaluation yields a ResultMap; it is a no-op
	// on the regular path.
	return asyncval.Map(value, func(result interface{}) (interface{}, error) {
		if m, ok := result.(*graphql.ResultMap); ok {
			return m, nil
		}
		return nil, graphql.NewInternalError("plan execution produced a non-map result %T", result)
	})
}

// executePlan runs the top-level fields of a plan against the operation root type. It is
// executeFields with the collection discipline chosen by the plan's strategy: Parallel schedules
// every included field concurrently, Sequential starts a field only after the previous one's
// whole subtree completed.
func executePlan(
	exec *graphql.ExecutionContext,
	plan *graphql.ExecutionPlan,
	rootType *graphql.Object,
	root interface{}) asyncval.Value {

	keys, values, err := buildFieldValues(exec, rootType, root, plan.Fields)
	if err != nil {
		return asyncval.Err(err)
	}

	var collected asyncval.Value
	if plan.Strategy == graphql.StrategySequential {
		collected = asyncval.CollectSequential(values)
	} else {
		collected = asyncval.CollectParallel(values)
	}
	return asyncval.Map(collected, assembleResultMap(keys))
}

// executeFields resolves a selection of fields against an object value and assembles the ordered
// result map. Sibling fields run concurrently; a field whose execution fails with a non-internal
// error is rescued into a null entry with the error appended to the sink, leaving its siblings
// untouched.
func executeFields(
	exec *graphql.ExecutionContext,
	objectType *graphql.Object,
	source interface{},
	infos []*graphql.ExecutionInfo) asyncval.Value {

	keys, values, err := buildFieldValues(exec, objectType, source, infos)
	if err != nil {
		return asyncval.Err(err)
	}
	return asyncval.Map(asyncval.CollectParallel(values), assembleResultMap(keys))
}

func assembleResultMap(keys []string) func(interface{}) (interface{}, error) {
	return func(collected interface{}) (interface{}, error) {
		results := collected.([]interface{})
		pairs := make([]graphql.ResultPair, len(keys))
		for i, key := range keys {
			pairs[i] = graphql.ResultPair{Key: key, Value: results[i]}
		}
		return graphql.NewResultMap(pairs), nil
	}
}

// buildFieldValues filters a selection by its inclusion predicates and prepares one cold value per
// included field, paired with its response key. Inclusion predicate failures are structural and
// abort the whole selection.
func buildFieldValues(
	exec *graphql.ExecutionContext,
	objectType *graphql.Object,
	source interface{},
	infos []*graphql.ExecutionInfo) ([]string, []asyncval.Value, error) {

	keys := make([]string, 0, len(infos))
	values := make([]asyncval.Value, 0, len(infos))

	for _, info := range infos {
		if info.Include != nil {
			included, err := info.Include(exec.Variables)
			if err != nil {
				// Mark the failure internal so an enclosing field does not rescue it into a null.
				if !graphql.IsInternal(err) {
					err = graphql.WrapError(graphql.ErrKindInternal, err, "%s", err.Error())
				}
				return nil, nil, err
			}
			if !included {
				continue
			}
		}

		fieldCtx := &graphql.ResolveFieldContext{
			Info:       info,
			Execution:  exec,
			ReturnType: info.Definition.Type,
			ParentType: objectType,
			Schema:     exec.Schema,
			Variables:  exec.Variables,
		}

		var value asyncval.Value
		args, err := ArgumentValues(info.Definition, info.Ast, exec.Variables)
		switch {
		case err != nil && graphql.IsInternal(err):
			return nil, nil, err

		case err != nil:
			// Argument coercion failure is a field error: the entry is null and siblings proceed.
			exec.Errors.Append(err)
			value = asyncval.Ready(nil)

		default:
			fieldCtx.Args = args

			execute := info.Definition.Execute
			if execute == nil {
				// Planner-synthesized definitions (the __typename meta field) are not visited by the
				// schema compile pass; compile them transiently.
				execute = compileField(objectType, info.Definition)
			}

			value = traceField(exec, fieldCtx, execute(fieldCtx, source))
			value = asyncval.Rescue(value, rescueFieldError(fieldCtx))
		}

		keys = append(keys, info.Identifier)
		values = append(values, value)
	}

	return keys, values, nil
}

// rescueFieldError is the per-field isolation boundary: field errors become a null entry plus sink
// entries, internal errors propagate and abort the enclosing computation.
func rescueFieldError(ctx *graphql.ResolveFieldContext) func(error) asyncval.Value {
	return func(err error) asyncval.Value {
		if graphql.IsInternal(err) {
			return asyncval.Err(err)
		}
		appendFieldErrors(ctx, err)
		return asyncval.Ready(nil)
	}
}
