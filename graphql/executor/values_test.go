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

package executor_test

import (
	"fmt"

	"github.com/selenelab/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newInputSchema() *graphql.Schema {
	episodeEnum := &graphql.Enum{
		Name: "Episode",
		Values: []*graphql.EnumValue{
			{Name: "NEWHOPE", Value: 4},
			{Name: "EMPIRE", Value: 5},
		},
	}

	filterInput := &graphql.InputObject{
		Name: "Filter",
		Fields: []*graphql.InputFieldDef{
			{Name: "q", Type: graphql.NewNullable(graphql.String())},
			{Name: "limit", Type: graphql.NewNullable(graphql.Int()), HasDefault: true, Default: 10},
		},
	}

	echoArg := func(name string) graphql.ResolveFunc {
		return func(ctx *graphql.ResolveFieldContext, _ interface{}) (interface{}, error) {
			return ctx.Args.Get(name), nil
		}
	}

	return compileSchema(graphql.SchemaConfig{
		Query: &graphql.Object{
			Name: "Query",
			Fields: []*graphql.FieldDef{
				{
					Name: "search",
					Type: graphql.NewNullable(graphql.String()),
					Args: []*graphql.InputFieldDef{
						{Name: "filter", Type: graphql.NewNullable(filterInput)},
					},
					Resolve: graphql.ResolveFunc(func(ctx *graphql.ResolveFieldContext, _ interface{}) (interface{}, error) {
						filter, ok := ctx.Args.Get("filter").(map[string]interface{})
						if !ok {
							return "no filter", nil
						}
						return fmt.Sprintf("q=%v limit=%v", filter["q"], filter["limit"]), nil
					}),
				},
				{
					Name: "count",
					Type: graphql.NewNullable(graphql.Int()),
					Args: []*graphql.InputFieldDef{
						{Name: "n", Type: graphql.Int()},
					},
					Resolve: echoArg("n"),
				},
				{
					Name: "episode",
					Type: graphql.NewNullable(episodeEnum),
					Args: []*graphql.InputFieldDef{
						{Name: "ep", Type: graphql.NewNullable(episodeEnum)},
					},
					Resolve: echoArg("ep"),
				},
				{
					Name: "tags",
					Type: graphql.NewNullable(graphql.NewList(graphql.String())),
					Args: []*graphql.InputFieldDef{
						{Name: "ts", Type: graphql.NewNullable(graphql.NewList(graphql.String()))},
					},
					Resolve: echoArg("ts"),
				},
			},
		},
	})
}

var _ = Describe("Input coercion", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = newInputSchema()
	})

	Describe("input objects", func() {
		It("coerces literal fields and applies field defaults", func() {
			result, errs := execute(schema, `{ search(filter: { q: "needle" }) }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "search": "q=needle limit=10" }`))
			Expect(errs.HaveOccurred()).Should(BeFalse())
		})

		It("reports literal mismatches with the input object error prefix", func() {
			result, errs := execute(schema, `{ search(filter: { q: 3 }) }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "search": null }`))
			Expect(errs.Count()).Should(Equal(1))
			Expect(errs.Errors()[0].Message).Should(
				ContainSubstring("Input object 'Filter': in field 'q': "))
		})

		It("coerces input objects supplied through variables", func() {
			result, errs := execute(schema, `query ($f: Filter) { search(filter: $f) }`,
				map[string]interface{}{"f": map[string]interface{}{"q": "var"}}, nil)

			Expect(result).Should(MatchResultJSON(`{ "search": "q=var limit=10" }`))
			Expect(errs.HaveOccurred()).Should(BeFalse())
		})
	})

	Describe("scalar arguments", func() {
		It("reports literal mismatches with the object field argument prefix", func() {
			result, errs := execute(schema, `{ count(n: "three") }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "count": null }`))
			Expect(errs.Count()).Should(Equal(1))
			Expect(errs.Errors()[0].Message).Should(
				ContainSubstring("Object 'Query': field 'count': argument 'n': "))
		})

		It("leaves siblings untouched by an argument coercion failure", func() {
			result, errs := execute(schema, `{ count(n: "three") search }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "count": null, "search": "no filter" }`))
			Expect(errs.Count()).Should(Equal(1))
		})
	})

	Describe("enums", func() {
		It("coerces an enum literal to its internal value and back to its name", func() {
			result, errs := execute(schema, `{ episode(ep: EMPIRE) }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "episode": "EMPIRE" }`))
			Expect(errs.HaveOccurred()).Should(BeFalse())
		})

		It("rejects names that are not members", func() {
			result, errs := execute(schema, `{ episode(ep: JEDI) }`, nil, nil)

			Expect(result).Should(MatchResultJSON(`{ "episode": null }`))
			Expect(errs.Count()).Should(Equal(1))
			Expect(errs.Errors()[0].Message).Should(ContainSubstring(`"JEDI"`))
		})
	})

	Describe("list inputs", func() {
		It("coerces list literals element-wise", func() {
			result, _ := execute(schema, `{ tags(ts: ["a", "b"]) }`, nil, nil)
			Expect(result).Should(MatchResultJSON(`{ "tags": ["a", "b"] }`))
		})

		It("wraps a single value as a one-element list", func() {
			result, _ := execute(schema, `{ tags(ts: "solo") }`, nil, nil)
			Expect(result).Should(MatchResultJSON(`{ "tags": ["solo"] }`))
		})
	})
})
