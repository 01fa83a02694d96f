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

package graphql_test

import (
	"github.com/selenelab/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResultMap", func() {
	newMap := func() *graphql.ResultMap {
		return graphql.NewResultMap([]graphql.ResultPair{
			{Key: "hello", Value: "world"},
			{Key: "n", Value: 42},
			{Key: "missing", Value: nil},
		})
	}

	It("preserves insertion order", func() {
		m := newMap()
		Expect(m.Count()).Should(Equal(3))
		Expect(m.Keys()).Should(Equal([]string{"hello", "n", "missing"}))

		var keys []string
		m.Range(func(key string, _ interface{}) bool {
			keys = append(keys, key)
			return true
		})
		Expect(keys).Should(Equal([]string{"hello", "n", "missing"}))
	})

	It("keeps the first occurrence of a duplicated key", func() {
		m := graphql.NewResultMap([]graphql.ResultPair{
			{Key: "a", Value: 1},
			{Key: "a", Value: 2},
			{Key: "b", Value: 3},
		})
		Expect(m.Count()).Should(Equal(2))

		value, err := m.Get("a")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(1))
	})

	It("initializes key-only maps to null values", func() {
		m := graphql.NewResultMapOfKeys([]string{"a", "b"})
		value, err := m.Get("a")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(BeNil())
	})

	Describe("Get and Update", func() {
		It("reads existing entries and fails on absent keys", func() {
			m := newMap()

			value, err := m.Get("hello")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal("world"))

			_, err = m.Get("nope")
			Expect(err).Should(HaveOccurred())
		})

		It("updates existing entries only", func() {
			m := newMap()
			Expect(m.Update("n", 43)).Should(Succeed())

			value, err := m.Get("n")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(43))

			Expect(m.Update("nope", 1)).ShouldNot(Succeed())
		})
	})

	It("rejects shape-changing operations", func() {
		m := newMap()
		Expect(m.Add("x", 1)).Should(MatchError(graphql.ErrUnsupportedOperation))
		Expect(m.Remove("hello")).Should(MatchError(graphql.ErrUnsupportedOperation))
		Expect(m.Clear()).Should(MatchError(graphql.ErrUnsupportedOperation))
		Expect(m.Count()).Should(Equal(3))
	})

	Describe("Equal", func() {
		It("compares structurally, recursing into nested maps and sequences", func() {
			build := func() *graphql.ResultMap {
				return graphql.NewResultMap([]graphql.ResultPair{
					{Key: "user", Value: graphql.NewResultMap([]graphql.ResultPair{
						{Key: "name", Value: "Ada"},
					})},
					{Key: "xs", Value: []interface{}{1, 2, 3}},
					{Key: "none", Value: nil},
				})
			}
			Expect(build().Equal(build())).Should(BeTrue())
			Expect(build().Hash()).Should(Equal(build().Hash()))
		})

		It("remains equal after a value mutation that re-establishes the same shape", func() {
			a := newMap()
			b := newMap()
			Expect(a.Update("n", 99)).Should(Succeed())
			Expect(a.Equal(b)).Should(BeFalse())
			Expect(a.Update("n", 42)).Should(Succeed())
			Expect(a.Equal(b)).Should(BeTrue())
		})

		It("distinguishes key order", func() {
			a := graphql.NewResultMap([]graphql.ResultPair{{Key: "a", Value: 1}, {Key: "b", Value: 2}})
			b := graphql.NewResultMap([]graphql.ResultPair{{Key: "b", Value: 2}, {Key: "a", Value: 1}})
			Expect(a.Equal(b)).Should(BeFalse())
		})

		It("compares sequences pair-wise", func() {
			a := graphql.NewResultMap([]graphql.ResultPair{{Key: "xs", Value: []interface{}{1, 2}}})
			b := graphql.NewResultMap([]graphql.ResultPair{{Key: "xs", Value: []interface{}{2, 1}}})
			Expect(a.Equal(b)).Should(BeFalse())
		})
	})

	Describe("String", func() {
		It("renders the deterministic diagnostic form", func() {
			m := graphql.NewResultMap([]graphql.ResultPair{
				{Key: "hello", Value: "world"},
				{Key: "xs", Value: []interface{}{1, 2}},
				{Key: "user", Value: graphql.NewResultMap([]graphql.ResultPair{{Key: "name", Value: nil}})},
			})
			Expect(m.String()).Should(Equal(`{ hello: "world", xs: [ 1, 2 ], user: { name: null } }`))
		})
	})

	Describe("MarshalJSON", func() {
		It("encodes entries in insertion order", func() {
			m := graphql.NewResultMap([]graphql.ResultPair{
				{Key: "b", Value: 2},
				{Key: "a", Value: graphql.NewResultMap([]graphql.ResultPair{{Key: "xs", Value: []interface{}{nil, "s"}}})},
			})
			encoded, err := m.MarshalJSON()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(encoded)).Should(Equal(`{"b":2,"a":{"xs":[null,"s"]}}`))
		})
	})
})
