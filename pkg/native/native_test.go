package native_test

import (
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/native"
)

type handle struct {
	me.Handle
}

var _ = Describe("native", func() {
	It("detects null values", func() {
		var p *int
		var m map[string]any
		var h me.Handle

		Expect(me.IsNull(nil)).To(BeTrue())
		Expect(me.IsNull(p)).To(BeTrue())
		Expect(me.IsNull(m)).To(BeTrue())
		Expect(me.IsNull(h)).To(BeTrue())
		Expect(me.IsNull(me.SliceCollection(nil))).To(BeTrue())
		Expect(me.IsNull([]string(nil))).To(BeTrue())
		Expect(me.IsNull((func())(nil))).To(BeTrue())
		Expect(me.IsNull((chan int)(nil))).To(BeTrue())
		Expect(me.IsNull(me.SliceCollection{})).To(BeFalse())
		Expect(me.IsNull(0)).To(BeFalse())
		Expect(me.IsNull("")).To(BeFalse())
	})

	It("provides slice collections", func() {
		var h me.Handle = (*handle)(nil)
		c := me.SliceCollection{nil, h}
		Expect(c.Len()).To(Equal(2))
		Expect(Must(c.Element(0))).To(BeNil())
		Expect(me.IsNull(Must(c.Element(1)))).To(BeTrue())
		Expect(me.SliceCollection(nil).Len()).To(Equal(0))
	})
})
