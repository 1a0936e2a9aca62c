package utils_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/drivebind/pkg/utils"
)

var _ = Describe("utils", func() {
	It("defaults optional arguments", func() {
		Expect(utils.OptionalDefaulted("def")).To(Equal("def"))
		Expect(utils.OptionalDefaulted("def", "", "a", "b")).To(Equal("a"))
	})

	It("detects cycles", func() {
		Expect(utils.Cycle("c", "a", "b")).To(BeNil())
		Expect(utils.Cycle("b", "a", "b", "c")).To(Equal([]string{"b", "c", "b"}))
	})

	It("orders map keys", func() {
		Expect(utils.OrderedMapKeys(map[string]int{"c": 1, "a": 2, "b": 3})).To(Equal([]string{"a", "b", "c"}))
	})

	It("transforms slices", func() {
		Expect(utils.TransformSlice([]int{1, 2}, strconv.Itoa)).To(Equal([]string{"1", "2"}))
		Expect(utils.TransformSlice([]int(nil), strconv.Itoa)).To(Equal([]string{}))
	})
})
