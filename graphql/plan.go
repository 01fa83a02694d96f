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

// ExecutionStrategy selects the collection discipline for a plan's top-level fields.
type ExecutionStrategy int

// Enumeration of ExecutionStrategy
const (
	// StrategyParallel schedules all included top-level fields concurrently. Queries and
	// subscriptions plan with it.
	StrategyParallel ExecutionStrategy = iota

	// StrategySequential executes top-level fields in document order; a field starts only after the
	// previous one has fully completed, including its whole subtree. Mutations plan with it.
	StrategySequential
)

func (s ExecutionStrategy) String() string {
	if s == StrategySequential {
		return "Sequential"
	}
	return "Parallel"
}

// ExecutionPlan is the pre-computed, validated description of which fields to execute and how. It
// is produced by a planner and consumed by the executor; fragments have already been pruned and
// every ExecutionInfo is typed.
type ExecutionPlan struct {
	// Operation is the planned operation definition in the document.
	Operation *ast.OperationDefinition

	// Fields are the top-level selections in document order.
	Fields []*ExecutionInfo

	// Strategy for the top-level fields
	Strategy ExecutionStrategy
}

// IncludeFunc decides whether a selection is included for a request, from the coerced variables.
// It is a pure function pre-bound from the selection's @skip/@include directives at plan time.
type IncludeFunc func(vars VariableValues) (bool, error)

// IncludeAlways includes the selection unconditionally.
func IncludeAlways(VariableValues) (bool, error) {
	return true, nil
}

// ExecutionInfo is one node of an ExecutionPlan, corresponding to one response key.
type ExecutionInfo struct {
	// Identifier is the response key (field alias, or field name).
	Identifier string

	// Definition of the planned field in the schema
	Definition *FieldDef

	// ParentType is the Object the field was selected on. For fields below an abstract position it
	// is the concrete type owning the per-type selection.
	ParentType *Object

	// Ast is the field selection in the document; it carries arguments and directives.
	Ast *ast.Field

	// Include is the pre-bound inclusion predicate; nil means always included.
	Include IncludeFunc

	// Kind describes how the field's value is shaped; see PlanKind.
	Kind PlanKind
}

// ReturnType returns the planned field's output type.
func (info *ExecutionInfo) ReturnType() Type {
	return info.Definition.Type
}

// PlanKind is the closed set of plan node shapes: SelectFields (object sub-selection),
// ResolveCollection (list element plan), ResolveAbstraction (per-concrete-type sub-selections) and
// ResolveValue (leaf).
type PlanKind interface {
	planKind()

	// KindName is used in plan-mismatch diagnostics.
	KindName() string
}

// SelectFields is the plan shape for an object position.
type SelectFields struct {
	Fields []*ExecutionInfo
}

func (*SelectFields) planKind() {}

// KindName implements PlanKind.
func (*SelectFields) KindName() string { return "SelectFields" }

// ResolveCollection is the plan shape for a list position; Element plans each element.
type ResolveCollection struct {
	Element *ExecutionInfo
}

func (*ResolveCollection) planKind() {}

// KindName implements PlanKind.
func (*ResolveCollection) KindName() string { return "ResolveCollection" }

// ResolveAbstraction is the plan shape for an interface or union position: the collected
// sub-selection for every possible concrete type, keyed by object type name.
type ResolveAbstraction struct {
	TypeFields map[string][]*ExecutionInfo
}

func (*ResolveAbstraction) planKind() {}

// KindName implements PlanKind.
func (*ResolveAbstraction) KindName() string { return "ResolveAbstraction" }

// ResolveValue is the plan shape for a leaf (scalar or enum) position.
type ResolveValue struct{}

func (*ResolveValue) planKind() {}

// KindName implements PlanKind.
func (*ResolveValue) KindName() string { return "ResolveValue" }
