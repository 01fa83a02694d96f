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

package planner_test

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/selenelab/selene/graphql"
	"github.com/selenelab/selene/graphql/planner"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseDocument(query string) *ast.QueryDocument {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	Expect(err).ShouldNot(HaveOccurred())
	return doc
}

func newPlannerSchema() *graphql.Schema {
	nodeInterface := &graphql.Interface{Name: "Node"}

	userType := &graphql.Object{
		Name:       "User",
		Interfaces: []*graphql.Interface{nodeInterface},
		Fields: []*graphql.FieldDef{
			{Name: "name", Type: graphql.NewNullable(graphql.String())},
			{Name: "friends", Type: graphql.NewNullable(graphql.NewList(nodeInterface))},
		},
	}

	postType := &graphql.Object{
		Name:       "Post",
		Interfaces: []*graphql.Interface{nodeInterface},
		Fields: []*graphql.FieldDef{
			{Name: "title", Type: graphql.NewNullable(graphql.String())},
		},
	}

	return graphql.MustNewSchema(graphql.SchemaConfig{
		Query: &graphql.Object{
			Name: "Query",
			Fields: []*graphql.FieldDef{
				{Name: "me", Type: graphql.NewNullable(userType)},
				{Name: "node", Type: graphql.NewNullable(nodeInterface)},
				{Name: "names", Type: graphql.NewNullable(graphql.NewList(graphql.String()))},
			},
		},
		Mutation: &graphql.Object{
			Name: "Mutation",
			Fields: []*graphql.FieldDef{
				{Name: "rename", Type: graphql.NewNullable(graphql.String())},
			},
		},
		Types: []graphql.Type{userType, postType},
	})
}

var _ = Describe("Plan", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = newPlannerSchema()
	})

	plan := func(query, operationName string) *graphql.ExecutionPlan {
		p, err := planner.Plan(schema, parseDocument(query), operationName)
		Expect(err).ShouldNot(HaveOccurred())
		return p
	}

	Describe("operation selection", func() {
		It("picks the unique anonymous operation", func() {
			p := plan(`{ me { name } }`, "")
			Expect(p.Operation).ShouldNot(BeNil())
			Expect(p.Strategy).Should(Equal(graphql.StrategyParallel))
		})

		It("picks a named operation", func() {
			p := plan(`query A { me { name } } query B { names }`, "B")
			Expect(p.Fields).Should(HaveLen(1))
			Expect(p.Fields[0].Identifier).Should(Equal("names"))
		})

		It("fails on an unknown operation name", func() {
			_, err := planner.Plan(schema, parseDocument(`query A { names }`), "C")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("strategies", func() {
		It("plans queries as Parallel and mutations as Sequential", func() {
			Expect(plan(`{ names }`, "").Strategy).Should(Equal(graphql.StrategyParallel))
			Expect(plan(`mutation { rename }`, "").Strategy).Should(Equal(graphql.StrategySequential))
		})
	})

	Describe("field collection", func() {
		It("keeps document order and groups duplicate response keys first-wins", func() {
			p := plan(`{ names me { name } names x: names }`, "")

			identifiers := make([]string, len(p.Fields))
			for i, info := range p.Fields {
				identifiers[i] = info.Identifier
			}
			Expect(identifiers).Should(Equal([]string{"names", "me", "x"}))
		})

		It("skips unknown fields without error", func() {
			p := plan(`{ names bogus }`, "")
			Expect(p.Fields).Should(HaveLen(1))
		})

		It("applies a named fragment at most once per selection set", func() {
			p := plan(`
				{ me { ...names ...names } }
				fragment names on User { name }
			`, "")

			selection := p.Fields[0].Kind.(*graphql.SelectFields)
			Expect(selection.Fields).Should(HaveLen(1))
			Expect(selection.Fields[0].Identifier).Should(Equal("name"))
		})
	})

	Describe("plan kinds", func() {
		It("derives ResolveValue for leaves", func() {
			p := plan(`{ me { name } }`, "")
			selection := p.Fields[0].Kind.(*graphql.SelectFields)
			Expect(selection.Fields[0].Kind).Should(BeAssignableToTypeOf(&graphql.ResolveValue{}))
		})

		It("derives SelectFields for objects", func() {
			p := plan(`{ me { name } }`, "")
			Expect(p.Fields[0].Kind).Should(BeAssignableToTypeOf(&graphql.SelectFields{}))
		})

		It("derives ResolveCollection with an element plan for lists", func() {
			p := plan(`{ names }`, "")

			collection, ok := p.Fields[0].Kind.(*graphql.ResolveCollection)
			Expect(ok).Should(BeTrue())
			Expect(collection.Element.Kind).Should(BeAssignableToTypeOf(&graphql.ResolveValue{}))
		})

		It("derives ResolveAbstraction with one selection per possible type", func() {
			p := plan(`{
				node {
					... on User { name }
					... on Post { title }
					__typename
				}
			}`, "")

			abstraction, ok := p.Fields[0].Kind.(*graphql.ResolveAbstraction)
			Expect(ok).Should(BeTrue())
			Expect(abstraction.TypeFields).Should(HaveKey("User"))
			Expect(abstraction.TypeFields).Should(HaveKey("Post"))

			userKeys := make([]string, 0)
			for _, info := range abstraction.TypeFields["User"] {
				userKeys = append(userKeys, info.Identifier)
			}
			Expect(userKeys).Should(Equal([]string{"name", "__typename"}))

			postKeys := make([]string, 0)
			for _, info := range abstraction.TypeFields["Post"] {
				postKeys = append(postKeys, info.Identifier)
			}
			Expect(postKeys).Should(Equal([]string{"title", "__typename"}))
		})

		It("plans list positions of abstract element type", func() {
			p := plan(`{ me { friends { ... on User { name } } } }`, "")

			selection := p.Fields[0].Kind.(*graphql.SelectFields)
			collection, ok := selection.Fields[0].Kind.(*graphql.ResolveCollection)
			Expect(ok).Should(BeTrue())
			Expect(collection.Element.Kind).Should(BeAssignableToTypeOf(&graphql.ResolveAbstraction{}))
		})

		It("maps __typename to a leaf with the shared meta field definition", func() {
			p := plan(`{ __typename }`, "")

			Expect(p.Fields[0].Definition).Should(Equal(graphql.TypeNameMetaFieldDef()))
			Expect(p.Fields[0].Kind).Should(BeAssignableToTypeOf(&graphql.ResolveValue{}))
		})
	})

	Describe("inclusion predicates", func() {
		It("binds a predicate only for selections with conditional directives", func() {
			p := plan(`query ($s: Boolean!) { names @skip(if: $s) me { name } }`, "")

			Expect(p.Fields[0].Include).ShouldNot(BeNil())
			Expect(p.Fields[1].Include).Should(BeNil())

			included, err := p.Fields[0].Include(graphql.VariableValues{"s": true})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(included).Should(BeFalse())

			included, err = p.Fields[0].Include(graphql.VariableValues{"s": false})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(included).Should(BeTrue())
		})

		It("conjoins fragment directives with field directives", func() {
			p := plan(`
				query ($a: Boolean!, $b: Boolean!) {
					... @include(if: $a) { names @skip(if: $b) }
				}
			`, "")

			Expect(p.Fields).Should(HaveLen(1))
			include := p.Fields[0].Include
			Expect(include).ShouldNot(BeNil())

			check := func(a, b, expected bool) {
				included, err := include(graphql.VariableValues{"a": a, "b": b})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(included).Should(Equal(expected))
			}
			check(true, false, true)
			check(true, true, false)
			check(false, false, false)
		})
	})
})
