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

// Package planner turns a parsed (and externally validated) document into an execution plan: a
// typed tree of ExecutionInfo nodes with fragments pruned, response keys grouped, inclusion
// predicates pre-bound from @skip/@include, and a plan kind derived for every field position.
package planner

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenelab/selene/graphql"
)

// Plan builds the execution plan for one operation of a parsed document. When operationName is
// empty, the document must contain exactly one operation. Mutations plan with the Sequential
// strategy; queries and subscriptions with Parallel.
func Plan(
	schema *graphql.Schema,
	doc *ast.QueryDocument,
	operationName string) (*graphql.ExecutionPlan, error) {

	operation := doc.Operations.ForName(operationName)
	if operation == nil {
		if operationName == "" {
			return nil, graphql.NewError("document does not contain exactly one anonymous operation")
		}
		return nil, graphql.NewError(`operation "%s" not found in document`, operationName)
	}

	rootType := schema.RootType(operation.Operation)
	if rootType == nil {
		return nil, graphql.NewError("schema is not configured for %s operations", operation.Operation)
	}

	strategy := graphql.StrategyParallel
	if operation.Operation == ast.Mutation {
		strategy = graphql.StrategySequential
	}

	p := &planContext{schema: schema, doc: doc}
	fields, err := p.collectFields(rootType, operation.SelectionSet, nil)
	if err != nil {
		return nil, err
	}

	return &graphql.ExecutionPlan{
		Operation: operation,
		Fields:    fields,
		Strategy:  strategy,
	}, nil
}

type planContext struct {
	schema *graphql.Schema
	doc    *ast.QueryDocument
}

// groupedField accumulates the selections contributing to one response key. When a key is
// selected more than once, the first selection provides the field, arguments and directives while
// the sub-selections of every occurrence are merged.
type groupedField struct {
	field      *ast.Field
	selections ast.SelectionSet
	includes   []graphql.IncludeFunc
}

// collectFields flattens a selection set against a concrete parent type: fragments are pruned by
// type condition, named fragments apply at most once per selection set, and fields group by
// response key in depth-first document order.
func (p *planContext) collectFields(
	parentType *graphql.Object,
	selectionSet ast.SelectionSet,
	inherited []graphql.IncludeFunc) ([]*graphql.ExecutionInfo, error) {

	var order []string
	groups := map[string]*groupedField{}
	visitedFragments := map[string]bool{}

	p.gather(parentType, selectionSet, inherited, visitedFragments, &order, groups)

	infos := make([]*graphql.ExecutionInfo, 0, len(order))
	for _, key := range order {
		info, err := p.buildInfo(parentType, groups[key])
		if err != nil {
			return nil, err
		}
		if info != nil {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func (p *planContext) gather(
	parentType *graphql.Object,
	selectionSet ast.SelectionSet,
	inherited []graphql.IncludeFunc,
	visitedFragments map[string]bool,
	order *[]string,
	groups map[string]*groupedField) {

	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			key := responseKey(selection)
			if group, exists := groups[key]; exists {
				group.selections = append(group.selections, selection.SelectionSet...)
				continue
			}
			groups[key] = &groupedField{
				field:      selection,
				selections: append(ast.SelectionSet{}, selection.SelectionSet...),
				includes:   appendInclude(inherited, selection.Directives),
			}
			*order = append(*order, key)

		case *ast.InlineFragment:
			if selection.TypeCondition != "" && !p.satisfiesTypeCondition(selection.TypeCondition, parentType) {
				continue
			}
			p.gather(parentType, selection.SelectionSet,
				appendInclude(inherited, selection.Directives), visitedFragments, order, groups)

		case *ast.FragmentSpread:
			if visitedFragments[selection.Name] {
				continue
			}
			visitedFragments[selection.Name] = true

			fragment := p.doc.Fragments.ForName(selection.Name)
			if fragment == nil {
				continue
			}
			if !p.satisfiesTypeCondition(fragment.TypeCondition, parentType) {
				continue
			}
			p.gather(parentType, fragment.SelectionSet,
				appendInclude(inherited, selection.Directives), visitedFragments, order, groups)
		}
	}
}

// satisfiesTypeCondition reports whether a fragment with the given type condition applies to the
// concrete parent type.
func (p *planContext) satisfiesTypeCondition(condition string, parentType *graphql.Object) bool {
	if condition == parentType.Name {
		return true
	}
	conditionType := p.schema.LookupType(condition)
	if conditionType == nil || !graphql.IsAbstractType(conditionType) {
		return false
	}
	for _, possible := range p.schema.PossibleTypes(conditionType) {
		if possible == parentType {
			return true
		}
	}
	return false
}

func (p *planContext) buildInfo(
	parentType *graphql.Object,
	group *groupedField) (*graphql.ExecutionInfo, error) {

	var def *graphql.FieldDef
	if group.field.Name == graphql.TypeNameMetaFieldName {
		def = graphql.TypeNameMetaFieldDef()
	} else {
		def = parentType.Field(group.field.Name)
		if def == nil {
			// Unknown fields are skipped without error, as per ExecuteSelectionSet.
			return nil, nil
		}
	}

	kind, err := p.kindFor(parentType, def, group)
	if err != nil {
		return nil, err
	}

	return &graphql.ExecutionInfo{
		Identifier: responseKey(group.field),
		Definition: def,
		ParentType: parentType,
		Ast:        group.field,
		Include:    combineIncludes(group.includes),
		Kind:       kind,
	}, nil
}

// kindFor derives the plan shape from a field's return type: leaves resolve values, objects carry
// their collected sub-selection, lists carry an element plan and abstract positions carry one
// collected sub-selection per possible concrete type.
func (p *planContext) kindFor(
	parentType *graphql.Object,
	def *graphql.FieldDef,
	group *groupedField) (graphql.PlanKind, error) {

	return p.kindForType(def.Type, parentType, def, group)
}

func (p *planContext) kindForType(
	t graphql.Type,
	parentType *graphql.Object,
	def *graphql.FieldDef,
	group *groupedField) (graphql.PlanKind, error) {

	switch t := t.(type) {
	case *graphql.Nullable:
		return p.kindForType(t.OfType, parentType, def, group)

	case *graphql.List:
		elementKind, err := p.kindForType(t.OfType, parentType, def, group)
		if err != nil {
			return nil, err
		}
		return &graphql.ResolveCollection{
			Element: &graphql.ExecutionInfo{
				Identifier: responseKey(group.field),
				Definition: def,
				ParentType: parentType,
				Ast:        group.field,
				Kind:       elementKind,
			},
		}, nil

	case *graphql.Scalar, *graphql.Enum:
		return &graphql.ResolveValue{}, nil

	case *graphql.Object:
		fields, err := p.collectFields(t, group.selections, nil)
		if err != nil {
			return nil, err
		}
		return &graphql.SelectFields{Fields: fields}, nil

	case *graphql.Interface, *graphql.Union:
		typeFields := map[string][]*graphql.ExecutionInfo{}
		for _, object := range p.schema.PossibleTypes(t) {
			fields, err := p.collectFields(object, group.selections, nil)
			if err != nil {
				return nil, err
			}
			typeFields[object.Name] = fields
		}
		return &graphql.ResolveAbstraction{TypeFields: typeFields}, nil
	}

	return nil, graphql.NewError(`field "%s" has non-output type %s`, def.Name, t)
}

func responseKey(field *ast.Field) string {
	if field.Alias != "" {
		return field.Alias
	}
	return field.Name
}

// appendInclude adds an inclusion predicate for the selection's directives, when it carries any of
// the two execution directives.
func appendInclude(includes []graphql.IncludeFunc, directives ast.DirectiveList) []graphql.IncludeFunc {
	if directives.ForName(graphql.SkipDirectiveName) == nil &&
		directives.ForName(graphql.IncludeDirectiveName) == nil {
		return includes
	}

	include := func(vars graphql.VariableValues) (bool, error) {
		return graphql.ShouldInclude(directives, vars)
	}
	combined := make([]graphql.IncludeFunc, 0, len(includes)+1)
	combined = append(combined, includes...)
	return append(combined, include)
}

// combineIncludes conjoins the predicates collected along a field's path (enclosing fragments
// first). A field with no conditional directives anywhere on its path gets a nil predicate, which
// the executor treats as always included.
func combineIncludes(includes []graphql.IncludeFunc) graphql.IncludeFunc {
	switch len(includes) {
	case 0:
		return nil
	case 1:
		return includes[0]
	}

	return func(vars graphql.VariableValues) (bool, error) {
		for _, include := range includes {
			included, err := include(vars)
			if err != nil || !included {
				return false, err
			}
		}
		return true, nil
	}
}
